package cli

import (
	"os"
	"sort"

	"ghostconfig/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagEnv maps each persistent flag to the environment variable that seeds
// its default.
var flagEnv = map[string]string{
	"server":      "GHOSTCONFIG_SERVER",
	"state-dir":   "GHOSTCONFIG_STATE_DIR",
	"config-file": "GHOSTCONFIG_CONFIG_FILE",
	"ghostty":     "GHOSTCONFIG_GHOSTTY",
	"format":      "GHOSTCONFIG_FORMAT",
	"log-level":   "GHOSTCONFIG_LOG_LEVEL",
	"log-file":    "GHOSTCONFIG_LOG_FILE",
}

type settingOut struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
	Env    string `json:"env,omitempty"`
	Usage  string `json:"usage"`
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect ghostconfig's own settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective flag values and where they came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stateDir := app.StateDir
			if stateDir == "" {
				d, err := store.StateDir()
				if err != nil {
					return writeErr(cmd, err)
				}
				stateDir = d
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"settings":   effectiveSettings(cmd.Root().PersistentFlags()),
					"configFile": app.configFilePath(),
					"stateDir":   stateDir,
				},
			})
		},
	})
	return cmd
}

func effectiveSettings(fs *pflag.FlagSet) []settingOut {
	var out []settingOut
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		s := settingOut{
			Name:   f.Name,
			Value:  f.Value.String(),
			Source: "default",
			Env:    flagEnv[f.Name],
			Usage:  f.Usage,
		}
		switch {
		case f.Changed:
			s.Source = "flag"
		case s.Env != "" && os.Getenv(s.Env) != "":
			s.Source = "env"
		}
		out = append(out, s)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
