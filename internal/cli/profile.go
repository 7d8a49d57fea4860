package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ghfinder/pkg/errors"
	"github.com/matzehuels/ghfinder/pkg/integrations/github"
)

// profileCommand creates the profile command.
func (c *CLI) profileCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile <username>",
		Short: "Show a GitHub user's profile",
		Long: `Show a GitHub user's profile: their details, their three most-starred
public repositories and the README of their profile repository
(github.com/<username>/<username>), if they have one.`,
		Example: `  ghfinder profile torvalds
  ghfinder profile octocat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProfile(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile state as JSON")

	return cmd
}

func (c *CLI) runProfile(ctx context.Context, out, status io.Writer, username string, asJSON bool) error {
	if err := github.ValidateUsername(username); err != nil {
		printError(out, "%s", errors.UserMessage(err))
		return ErrReported
	}

	logger := loggerFromContext(ctx)
	st := c.newStore(0)

	spin := newSpinner(ctx, status, "Loading "+username+"...")
	spin.Start()
	prog := newProgress(logger)
	st.LoadUserProfile(ctx, username)
	spin.Stop()
	if spin.Cancelled() {
		return ctx.Err()
	}

	view := st.Snapshot().ProfileView()
	if asJSON {
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
	prog.done("Profile loaded")

	io.WriteString(out, renderUserInfo(*view.SelectedUser)+"\n\n")
	io.WriteString(out, StyleTitle.Render("Top repositories")+"\n")
	io.WriteString(out, renderRepoTable(view.TopRepositories)+"\n\n")
	io.WriteString(out, StyleTitle.Render("README")+"\n")
	io.WriteString(out, renderReadme(view.Readme)+"\n")
	return nil
}
