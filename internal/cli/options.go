package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appctl "ghostconfig/internal/app"
	"ghostconfig/internal/filter"
	"ghostconfig/internal/model"
	"ghostconfig/internal/picker"

	"github.com/spf13/cobra"
)

type optionOut struct {
	Section      string `json:"section"`
	Key          string `json:"key"`
	Type         string `json:"type"`
	Value        string `json:"value"`
	DefaultValue string `json:"defaultValue"`
	CurrentValue string `json:"currentValue"`
	Modified     bool   `json:"modified"`
	Description  string `json:"description,omitempty"`
}

func toOptionOut(section string, o *model.Option, withDescription bool) optionOut {
	out := optionOut{
		Section:      section,
		Key:          o.Key,
		Type:         string(o.Type),
		Value:        o.EffectiveValue(),
		DefaultValue: o.DefaultValue,
		CurrentValue: o.CurrentValue,
		Modified:     o.Modified(),
	}
	if withDescription {
		out.Description = o.Description
	}
	return out
}

// withController runs fn against an initialized controller and releases the
// backend afterwards.
func withController(cmd *cobra.Command, app *App, fn func(ctx context.Context, ctrl *appctl.Controller) error) error {
	ctx := cmdContext(cmd)
	log, err := app.logger(cmd, false, "warn")
	if err != nil {
		return writeErr(cmd, err)
	}
	ctrl, cleanup, err := app.loadController(ctx, log)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer cleanup()
	if err := fn(ctx, ctrl); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func newOptionsCmd(app *App) *cobra.Command {
	var section string
	var search string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List options (filtered by section and search text)",
		Example: strings.TrimSpace(`
ghostconfig options
ghostconfig options --section font
ghostconfig --format text options --search cursor
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, app, func(ctx context.Context, ctrl *appctl.Controller) error {
				ctrl.SetSection(section)
				ctrl.SetSearch(search)

				res := ctrl.Projection()
				items := make([]optionOut, 0, res.Len())
				for _, e := range res.Entries {
					items = append(items, toOptionOut(e.Section, e.Option, false))
				}

				hints := []string{}
				if res.Empty() {
					hints = append(hints, ctrl.T("ui.no_options"))
				} else {
					hints = append(hints, "ghostconfig get "+items[0].Key)
				}
				return writeOut(cmd, app, map[string]any{
					"data": map[string]any{
						"section":  ctrl.Section(),
						"search":   ctrl.Search(),
						"sections": ctrl.Sections(),
						"count":    len(items),
						"options":  items,
					},
					"_hints": hints,
				})
			})
		},
	}

	cmd.Flags().StringVar(&section, "section", filter.All, "Section to list (all|appearance|font|window|input|shell|platform|advanced)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match on key or description")
	return cmd
}

func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Show one option",
		Example: "ghostconfig get font-size",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			return withController(cmd, app, func(ctx context.Context, ctrl *appctl.Controller) error {
				opt, ok := ctrl.Catalog().FindByKey(key)
				if !ok {
					return errUnknownOption(key)
				}
				return writeOut(cmd, app, map[string]any{
					"data":   toOptionOut(opt.Section, opt, true),
					"_hints": []string{"ghostconfig set " + key + " <value>"},
				})
			})
		},
	}
}

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save one option to the Ghostty config file",
		Long: strings.TrimSpace(`
Save one option. The value goes through the same picker as in the editor:

- text options take the value as typed
- color options take a palette name (e.g. "Blue") or a hex code
- font options take an installed family name; "" clears the setting
`),
		Example: strings.TrimSpace(`
ghostconfig set font-size 14
ghostconfig set background Blue
ghostconfig set font-family "JetBrains Mono"
`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			value := args[1]
			return withController(cmd, app, func(ctx context.Context, ctrl *appctl.Controller) error {
				if _, ok := ctrl.Catalog().FindByKey(key); !ok {
					return errUnknownOption(key)
				}
				p, err := ctrl.Open(key)
				if err != nil {
					return err
				}
				if err := applyValue(ctx, ctrl, p, value); err != nil {
					ctrl.Cancel()
					return err
				}

				n, err := ctrl.Commit(ctx)
				if err != nil {
					return err
				}
				opt, _ := ctrl.Catalog().FindByKey(key)
				return writeOut(cmd, app, map[string]any{
					"data": map[string]any{
						"option": toOptionOut(opt.Section, opt, false),
						"status": n.Text,
					},
					"_hints": []string{"ghostconfig get " + key},
				})
			})
		},
	}
}

// applyValue feeds value into the open picker the way the editor would.
func applyValue(ctx context.Context, ctrl *appctl.Controller, p picker.Picker, value string) error {
	switch pk := p.(type) {
	case *picker.Text:
		pk.SetValue(value)
	case *picker.Color:
		if i := paletteIndex(pk.Palette(), value); i >= 0 {
			pk.SelectPalette(i)
		} else {
			pk.SetHex(value)
		}
	case *picker.Font:
		if value == "" {
			return nil
		}
		if pk.State() == picker.FontLoading {
			fonts, err := ctrl.LoadFonts(ctx)
			ctrl.ResolveFonts(ctrl.Editor().Generation(), fonts, err)
		}
		if pk.State() == picker.FontFailed {
			return pk.Err()
		}
		if !pk.Select(value) {
			return fmt.Errorf("font not installed: %s", value)
		}
	default:
		return errors.New("unsupported picker")
	}
	return nil
}

func paletteIndex(palette []model.Color, name string) int {
	name = strings.TrimSpace(name)
	for i, c := range palette {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}
