package cli

import (
	"strings"

	"ghostconfig/internal/picker"

	"github.com/spf13/cobra"
)

func newFontsCmd(app *App) *cobra.Command {
	var filterText string

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List installed font families",
		Example: strings.TrimSpace(`
ghostconfig fonts
ghostconfig fonts --filter mono
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			log, err := app.logger(cmd, false, "warn")
			if err != nil {
				return writeErr(cmd, err)
			}
			b, err := app.openBackend(ctx, log)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer b.Close()

			fonts, err := b.client.Fonts(ctx)
			if err != nil {
				return writeErr(cmd, &picker.LazyLoadError{Err: err})
			}

			// Same matching as the editor's font filter.
			fp := picker.NewFont("")
			fp.Resolve(fonts, nil)
			fp.SetFilter(filterText)
			visible := append([]string{}, fp.Visible()...)

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"filter": filterText,
					"count":  len(visible),
					"fonts":  visible,
				},
				"_hints": []string{"ghostconfig set font-family <name>"},
			})
		},
	}

	cmd.Flags().StringVar(&filterText, "filter", "", "Case-insensitive substring to match")
	return cmd
}

func newColorsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the color palette offered for color options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			log, err := app.logger(cmd, false, "warn")
			if err != nil {
				return writeErr(cmd, err)
			}
			b, err := app.openBackend(ctx, log)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer b.Close()

			colors, err := b.client.Colors(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data":   map[string]any{"colors": colors},
				"_hints": []string{"ghostconfig set background <name|hex>"},
			})
		},
	}
}
