package cli

import (
	"errors"
	"strings"

	"ghostconfig/internal/apiclient"

	"github.com/spf13/cobra"
)

func newExitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exit",
		Short: "Ask a running server to shut down",
		Long: strings.TrimSpace(`
Ask the server at --server to shut down. This is best effort: a failed request
is reported but does not fail the command.
`),
		Example: "ghostconfig exit --server http://127.0.0.1:9999",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(app.Server) == "" {
				return writeErr(cmd, errServerRequired("exit"))
			}
			ctx := cmdContext(cmd)
			log, err := app.logger(cmd, false, "warn")
			if err != nil {
				return writeErr(cmd, err)
			}
			b, err := app.openBackend(ctx, log)
			if err != nil {
				return writeErr(cmd, err)
			}

			exitErr := ""
			if err := b.client.Exit(ctx); err != nil {
				var ee *apiclient.ExitError
				if !errors.As(err, &ee) {
					return writeErr(cmd, err)
				}
				log.Warn(ctx, "exit request failed", "err", err)
				exitErr = ee.Error()
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"requested": true,
					"server":    b.client.BaseURL,
					"error":     exitErr,
				},
			})
		},
	}
}
