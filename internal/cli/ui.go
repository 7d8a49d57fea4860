package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ghfinder/pkg/integrations/github"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - stars
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleStars   = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleReadme  = lipgloss.NewStyle().Foreground(colorGray).PaddingLeft(2)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconStar    = "★"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Users
// =============================================================================

// renderUserLine formats one search result.
func renderUserLine(u github.User) string {
	return StyleValue.Render(u.Login) + " " + StyleDim.Render(iconArrow) + " " + StyleLink.Render(u.ProfileURL)
}

// renderUserInfo formats the profile header: display name, login and counters.
func renderUserInfo(u github.User) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(displayName(u)))
	if u.Name != "" {
		b.WriteString(" " + StyleDim.Render("@"+u.Login))
	}
	b.WriteString("\n")
	if u.Bio != "" {
		b.WriteString(StyleValue.Render(u.Bio) + "\n")
	}
	b.WriteString(StyleLink.Render(u.ProfileURL) + "\n\n")
	b.WriteString(styleKey.Render("Repos") + " " + StyleNumber.Render(strconv.Itoa(u.PublicRepoCount)) + "\n")
	b.WriteString(styleKey.Render("Followers") + " " + StyleNumber.Render(strconv.Itoa(u.FollowerCount)) + "\n")
	b.WriteString(styleKey.Render("Following") + " " + StyleNumber.Render(strconv.Itoa(u.FollowingCount)))
	return b.String()
}

func displayName(u github.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// =============================================================================
// Repositories
// =============================================================================

// renderRepoTable formats repositories as a bordered table.
func renderRepoTable(repos []github.Repository) string {
	if len(repos) == 0 {
		return StyleDim.Render("No public repositories")
	}

	rows := make([][]string, 0, len(repos))
	for _, r := range repos {
		rows = append(rows, []string{
			r.Name,
			orDash(r.Language),
			iconStar + " " + strconv.Itoa(r.StarCount),
			truncate(orDash(r.Description), maxDescriptionWidth),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().PaddingRight(1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Repository", "Lang", "Stars", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return cell.Foreground(colorGreen)
			case 2:
				return cell.Inherit(styleStars)
			case 3:
				return cell.Foreground(colorDim)
			}
			return cell
		})

	return t.Render()
}

// maxDescriptionWidth caps the description column so tables fit a terminal.
const maxDescriptionWidth = 60

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// =============================================================================
// README
// =============================================================================

// renderReadme formats the profile README, or a note when there is none.
func renderReadme(readme *string) string {
	if readme == nil {
		return StyleDim.Render("No profile README")
	}
	return styleReadme.Render(strings.TrimSpace(*readme))
}
