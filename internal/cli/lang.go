package cli

import (
	"context"
	"strings"

	appctl "ghostconfig/internal/app"
	"ghostconfig/internal/i18n"

	"github.com/spf13/cobra"
)

func newLangCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or set the editor language",
		Long: strings.TrimSpace(`
Show or set the UI language stored in the state directory. The editor reads it
at startup; without a stored value it uses the server's default language.
`),
		Example: strings.TrimSpace(`
ghostconfig lang
ghostconfig lang ja
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			prefs, err := app.openPrefs(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer prefs.Close()

			if len(args) == 1 {
				lang := strings.TrimSpace(args[0])
				if !supportedLang(lang) {
					return writeErr(cmd, unsupportedLanguageError{lang: lang, supported: i18n.Languages()})
				}
				if err := prefs.Set(ctx, appctl.LangPrefKey, lang); err != nil {
					return writeErr(cmd, err)
				}
			}

			out, err := langState(ctx, prefs)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}

func langState(ctx context.Context, prefs appctl.Prefs) (map[string]any, error) {
	stored, ok, err := prefs.Get(ctx, appctl.LangPrefKey)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"lang":      stored,
		"stored":    ok,
		"languages": i18n.Languages(),
	}, nil
}
