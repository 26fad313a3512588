package cli

import (
	"strings"

	appctl "ghostconfig/internal/app"
	"ghostconfig/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive editor against --server",
		Example: strings.TrimSpace(`
ghostconfig serve &
ghostconfig tui --server http://127.0.0.1:9999
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(app.Server) == "" {
				return writeErr(cmd, errServerRequired("tui"))
			}
			return runTUI(cmd, app)
		},
	}
}

// runTUI starts the editor. The controller is initialized inside the program
// so the loading state shows; only the backend is set up here.
func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmdContext(cmd)
	log, err := app.logger(cmd, true, "info")
	if err != nil {
		return writeErr(cmd, err)
	}

	b, err := app.openBackend(ctx, log)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Warn(ctx, "stop server", "err", err)
		}
	}()

	var prefs appctl.Prefs
	if p, err := app.openPrefs(ctx); err != nil {
		log.Warn(ctx, "preferences unavailable", "err", err)
	} else {
		defer p.Close()
		prefs = p
	}

	ctrl := appctl.New(b.client, prefs, log)
	if err := tui.Run(ctx, ctrl, log); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}
