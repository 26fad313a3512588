package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ghostconfig/internal/i18n"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var open bool
	var lang string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the config API server",
		Long: strings.TrimSpace(`
Run the HTTP/JSON API that editors talk to.

The server reads the documented defaults from ` + "`ghostty +show-config --default --docs`" + `,
lists fonts with ` + "`ghostty +list-fonts`" + ` and writes changes to the Ghostty config file.
It stops on SIGINT/SIGTERM or when a client calls POST /api/exit.
`),
		Example: strings.TrimSpace(`
# Serve on the default port
ghostconfig serve

# Edit a specific config file, Japanese server messages
ghostconfig serve --config-file ./ghostty.conf --lang ja

# Point a second terminal at it
ghostconfig tui --server http://127.0.0.1:9999
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr := strings.TrimSpace(addr)
			if listenAddr == "" {
				return writeErr(cmd, errors.New("serve: missing --addr"))
			}
			lang = strings.TrimSpace(lang)
			if lang == "" {
				lang = app.lang()
			}
			if !supportedLang(lang) {
				return writeErr(cmd, unsupportedLanguageError{lang: lang, supported: i18n.Languages()})
			}

			log, err := app.logger(cmd, false, "info")
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := app.newServer(ctx, log, lang)
			if err != nil {
				return writeErr(cmd, err)
			}

			ln, err := net.Listen("tcp", listenAddr)
			if err != nil {
				return writeErr(cmd, err)
			}

			actualAddr := ln.Addr().String()
			url := "http://" + actualAddr

			opened := false
			openErr := ""
			if open {
				if err := openBrowser(url + "/"); err != nil {
					openErr = err.Error()
				} else {
					opened = true
				}
			}

			hints := []string{"ghostconfig tui --server " + url}
			if !opened {
				hints = append(hints, "curl "+url+"/api/options")
			}

			_ = writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"addr":       actualAddr,
					"url":        url,
					"configFile": app.configFilePath(),
					"lang":       lang,
					"opened":     opened,
					"openError":  openErr,
					"startedAt":  time.Now().UTC().Format(time.RFC3339Nano),
				},
				"_hints": hints,
			})

			fmt.Fprintf(cmd.ErrOrStderr(), i18n.T(lang, "server.starting")+"\n", url)
			if openErr != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), i18n.T(lang, "server.browser_failed")+"\n", openErr)
			}

			if err := srv.Serve(ctx, ln); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("GHOSTCONFIG_ADDR", "127.0.0.1:9999"), "Bind address (host:port or :port)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the API index page in your default browser")
	cmd.Flags().StringVar(&lang, "lang", "", "Server language (default: from $LANG)")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func supportedLang(lang string) bool {
	for _, l := range i18n.Languages() {
		if l == lang {
			return true
		}
	}
	return false
}
