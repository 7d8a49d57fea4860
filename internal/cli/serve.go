package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghfinder/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve search and profile views as JSON",
		Long: `Serve the search and profile views over HTTP as JSON.

Endpoints:
  GET /api/search?q=<query>      search state
  GET /api/users/<username>      profile state
  GET /healthz                   liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = c.config.Listen
			}
			out := cmd.OutOrStdout()
			printKeyValue(out, "Listening", listen)
			printKeyValue(out, "GitHub API", c.config.APIURL)

			srv := server.New(server.Config{Addr: listen, PerPage: c.config.PerPage}, c.newClient(), loggerFromContext(cmd.Context()))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (default from config)")

	return cmd
}
