package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghfinder/pkg/store"
)

// =============================================================================
// Styles
// =============================================================================

var (
	listSelectedStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// maxReadmeLines bounds the README excerpt on the profile screen.
const maxReadmeLines = 20

// =============================================================================
// browse command
// =============================================================================

// browseCommand creates the interactive browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [query]",
		Short: "Browse users and profiles interactively",
		Long: `Browse GitHub users in an interactive terminal UI.

The search screen takes a query and lists matching users. Selecting a user
opens their profile screen; esc returns to the search.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func (c *CLI) runBrowse(ctx context.Context, query string) error {
	st := c.newStore(0)

	p := tea.NewProgram(newBrowseModel(ctx, st, query), tea.WithAltScreen(), tea.WithContext(ctx))
	unsubscribe := st.Subscribe(func(s store.State) {
		p.Send(stateMsg(s))
	})
	defer unsubscribe()

	_, err := p.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// =============================================================================
// BrowseModel - search and profile screens
// =============================================================================

type screen int

const (
	screenSearch screen = iota
	screenProfile
)

// stateMsg delivers a store snapshot to the model.
type stateMsg store.State

// browseModel is the bubbletea model behind the browse command. It never
// mutates store state itself: key presses return commands that run store
// operations, and the resulting snapshots arrive as stateMsg.
type browseModel struct {
	ctx    context.Context
	store  *store.Store
	screen screen
	state  store.State
	input  textinput.Model
	spin   spinner.Model
	cursor int
	query  string
}

func newBrowseModel(ctx context.Context, st *store.Store, query string) browseModel {
	input := textinput.New()
	input.Placeholder = "Search GitHub users"
	input.Prompt = "› "
	input.CharLimit = 256
	input.Width = 40
	input.SetValue(query)
	input.Focus()

	return browseModel{
		ctx:   ctx,
		store: st,
		state: st.Snapshot(),
		input: input,
		spin:  spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styleIconSpinner)),
		query: strings.TrimSpace(query),
	}
}

func (m browseModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick}
	if m.query != "" {
		cmds = append(cmds, m.search(m.query))
	}
	return tea.Batch(cmds...)
}

// search runs the store's search operation.
func (m browseModel) search(query string) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		st.SearchUsers(ctx, query)
		return stateMsg(st.Snapshot())
	}
}

// openProfile clears the previous profile and loads username.
func (m browseModel) openProfile(username string) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		st.ClearUserProfile()
		st.LoadUserProfile(ctx, username)
		return stateMsg(st.Snapshot())
	}
}

// closeProfile clears the profile when leaving the profile screen.
func (m browseModel) closeProfile() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		st.ClearUserProfile()
		return stateMsg(st.Snapshot())
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = store.State(msg)
		if m.cursor >= len(m.state.Search.Results) {
			m.cursor = 0
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenProfile {
			return m.updateProfile(msg)
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.query = m.input.Value()
		m.cursor = 0
		if strings.TrimSpace(m.query) != "" {
			m.input.Blur()
		}
		return m, m.search(m.query)
	case tea.KeyEsc:
		if m.state.HasSearchResults() {
			m.input.Blur()
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyDown, tea.KeyTab:
		if m.state.HasSearchResults() {
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.state.Search.Results
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/", "i":
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			return m, m.input.Focus()
		}
	case "down", "j":
		if m.cursor < len(results)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(results) {
			m.screen = screenProfile
			return m, m.openProfile(results[m.cursor].Login)
		}
	}
	return m, nil
}

func (m browseModel) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace", "b":
		m.screen = screenSearch
		return m, m.closeProfile()
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.screen == screenProfile {
		return m.profileView()
	}
	return m.searchView()
}

func (m browseModel) searchView() string {
	var b strings.Builder
	s := m.state.Search

	b.WriteString(StyleTitle.Render("GitHub User Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case s.Loading:
		b.WriteString(m.spin.View() + " " + StyleDim.Render("Searching..."))
	case s.Error != "":
		b.WriteString(listErrorStyle.Render(iconError + " " + s.Error))
	case m.state.HasSearchResults():
		for i, u := range s.Results {
			line := fmt.Sprintf("%-39s  %s", u.Login, listDimStyle.Render(u.ProfileURL))
			if i == m.cursor && !m.input.Focused() {
				b.WriteString(listSelectedStyle.Render("> " + line))
			} else {
				b.WriteString(listNormalStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	case s.Query != "":
		b.WriteString(listDimStyle.Render(fmt.Sprintf("No users found for %q", s.Query)))
	}

	b.WriteString("\n\n")
	if m.input.Focused() {
		b.WriteString(listDimStyle.Render("enter: search  down: results  esc: quit"))
	} else {
		b.WriteString(listDimStyle.Render("arrows: navigate  enter: open profile  /: edit query  q: quit"))
	}
	return b.String()
}

func (m browseModel) profileView() string {
	var b strings.Builder
	p := m.state.Profile

	switch {
	case p.Loading:
		b.WriteString(m.spin.View() + " " + StyleDim.Render("Loading profile..."))
	case p.Error != "":
		b.WriteString(listErrorStyle.Render(iconError + " " + p.Error))
	case m.state.HasSelectedUser():
		b.WriteString(renderUserInfo(*p.SelectedUser))
		b.WriteString("\n\n")
		b.WriteString(StyleTitle.Render("Top repositories"))
		b.WriteString("\n")
		b.WriteString(renderRepoTable(m.state.TopRepositories()))
		b.WriteString("\n\n")
		b.WriteString(StyleTitle.Render("README"))
		b.WriteString("\n")
		b.WriteString(renderReadme(excerpt(p.Readme, maxReadmeLines)))
	}

	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render("esc: back  q: quit"))
	return b.String()
}

// excerpt returns at most n lines of readme.
func excerpt(readme *string, n int) *string {
	if readme == nil {
		return nil
	}
	lines := strings.Split(strings.TrimSpace(*readme), "\n")
	if len(lines) <= n {
		return readme
	}
	out := strings.Join(lines[:n], "\n") + "\n…"
	return &out
}
