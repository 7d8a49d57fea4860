package cli

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// searchOptions holds flags for the search command.
type searchOptions struct {
	perPage int
	json    bool
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search GitHub users",
		Long: `Search GitHub users by login, name or email.

All arguments are joined into one query. GitHub's search qualifiers work as
usual, e.g. "location:berlin language:go".`,
		Example: `  ghfinder search torvalds
  ghfinder search "location:berlin language:go" --per-page 30
  ghfinder search octocat --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.perPage, "per-page", 0, "results per search, 1-100 (default from config)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the search state as JSON")

	return cmd
}

func (c *CLI) runSearch(ctx context.Context, out, status io.Writer, query string, opts searchOptions) error {
	logger := loggerFromContext(ctx)
	st := c.newStore(opts.perPage)

	spin := newSpinner(ctx, status, "Searching users...")
	spin.Start()
	prog := newProgress(logger)
	st.SearchUsers(ctx, query)
	spin.Stop()
	if spin.Cancelled() {
		return ctx.Err()
	}

	view := st.Snapshot().SearchView()
	if opts.json {
		if err := writeJSON(out, view); err != nil {
			return err
		}
		if view.Error != "" {
			return ErrReported
		}
		return nil
	}

	if view.Error != "" {
		printError(out, "%s", view.Error)
		return ErrReported
	}
	prog.done("Search complete")

	if !view.HasSearchResults {
		printInfo(out, "No users found for %q", view.Query)
		return nil
	}

	printSuccess(out, "Found %d users for %q", len(view.Results), view.Query)
	for _, u := range view.Results {
		io.WriteString(out, "  "+renderUserLine(u)+"\n")
	}
	io.WriteString(out, "\n")
	printNextStep(out, "View a profile", appName+" profile "+view.Results[0].Login)
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
