package cli

import (
        "fmt"
        "io"
        "os"
        "strings"

        "ghostconfig/internal/format"
        "ghostconfig/internal/i18n"
        "ghostconfig/internal/logging"

        "github.com/spf13/cobra"
)

type App struct {
        Server     string
        StateDir   string
        ConfigFile string
        Ghostty    string
        PrettyJSON bool
        Format     string
        LogLevel   string
        LogFile    string

        logFile *os.File
}

func NewRootCmd() *cobra.Command {
        app := &App{}

        cmd := &cobra.Command{
                Use:          "ghostconfig",
                Short:        "Ghostty config editor (TUI + local API)",
                SilenceUsage: true,
                Args:         cobra.NoArgs,
                Example: strings.TrimSpace(`
  # Start the interactive editor (runs its own API server on localhost)
  ghostconfig

  # Serve the API for other clients
  ghostconfig serve --addr 127.0.0.1:9999

  # Scriptable commands
  ghostconfig options --search font
  ghostconfig set font-size 14

  # Shortcut for: ghostconfig set font-size 14
  ghostconfig font-size=14
`),
                RunE: func(cmd *cobra.Command, args []string) error {
                        // No subcommand => interactive TUI.
                        return runTUI(cmd, app)
                },
        }

        cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
                return app.closeLog()
        }

        cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("GHOSTCONFIG_SERVER", ""), "Base URL of a running ghostconfig API (default: start one in-process)")
        cmd.PersistentFlags().StringVar(&app.StateDir, "state-dir", envOr("GHOSTCONFIG_STATE_DIR", ""), "Directory for client state (default: ~/.ghostconfig)")
        cmd.PersistentFlags().StringVar(&app.ConfigFile, "config-file", envOr("GHOSTCONFIG_CONFIG_FILE", ""), "Ghostty config file to edit (default: platform config path)")
        cmd.PersistentFlags().StringVar(&app.Ghostty, "ghostty", envOr("GHOSTCONFIG_GHOSTTY", "ghostty"), "Path to the ghostty binary")
        cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
        cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("GHOSTCONFIG_FORMAT", "json"), "Output format (json|text)")
        cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("GHOSTCONFIG_LOG_LEVEL", ""), "Log level (debug|info|warn|error)")
        cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("GHOSTCONFIG_LOG_FILE", ""), "Append logs to this file (the TUI logs nowhere without it)")

        cmd.AddCommand(newServeCmd(app))
        cmd.AddCommand(newTUICmd(app))
        cmd.AddCommand(newOptionsCmd(app))
        cmd.AddCommand(newGetCmd(app))
        cmd.AddCommand(newSetCmd(app))
        cmd.AddCommand(newFontsCmd(app))
        cmd.AddCommand(newColorsCmd(app))
        cmd.AddCommand(newLangCmd(app))
        cmd.AddCommand(newExitCmd(app))
        cmd.AddCommand(newConfigCmd(app))
        cmd.AddCommand(newDocsCmd(app))

        return cmd
}

// logger builds the process logger. Interactive commands own the terminal, so
// without --log-file they log nowhere. Others log to stderr at defaultLevel
// unless --log-level says otherwise.
func (app *App) logger(cmd *cobra.Command, interactive bool, defaultLevel string) (logging.Logger, error) {
        level := strings.TrimSpace(app.LogLevel)
        if level == "" {
                level = defaultLevel
        }

        var w io.Writer = cmd.ErrOrStderr()
        if path := strings.TrimSpace(app.LogFile); path != "" {
                if app.logFile == nil {
                        f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
                        if err != nil {
                                return nil, err
                        }
                        app.logFile = f
                }
                w = app.logFile
        } else if interactive {
                return logging.Discard(), nil
        }

        l, err := logging.New(w, level)
        if err != nil {
                return nil, err
        }
        return l, nil
}

func (app *App) closeLog() error {
        if app.logFile == nil {
                return nil
        }
        err := app.logFile.Close()
        app.logFile = nil
        return err
}

// lang is the language for CLI messages, taken from the locale environment.
func (app *App) lang() string {
        return i18n.Match(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

func envOr(k, d string) string {
        if v := os.Getenv(k); v != "" {
                return v
        }
        return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
        return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
        fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
        return err
}
