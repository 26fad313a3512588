package cli

import (
	"context"
	"fmt"
	"net"
	"strings"

	"ghostconfig/internal/apiclient"
	appctl "ghostconfig/internal/app"
	"ghostconfig/internal/i18n"
	"ghostconfig/internal/logging"
	"ghostconfig/internal/schema"
	"ghostconfig/internal/server"
	"ghostconfig/internal/store"
)

// backend is the API a client-side command talks to: either --server or a
// server started in-process on an ephemeral localhost port.
type backend struct {
	client *apiclient.Client
	stop   func() error
}

func (b *backend) Close() error {
	if b.stop == nil {
		return nil
	}
	return b.stop()
}

func (app *App) configFilePath() string {
	if p := strings.TrimSpace(app.ConfigFile); p != "" {
		return p
	}
	return store.DefaultGhosttyConfigPath()
}

// newServer loads the ghostty schema and the config file behind an API server.
func (app *App) newServer(ctx context.Context, log logging.Logger, lang string) (*server.Server, error) {
	cfgFile, err := store.LoadGhosttyConfig(app.configFilePath())
	if err != nil {
		return nil, fmt.Errorf(i18n.T(lang, "error.load_config"), err)
	}
	srv, err := server.New(ctx, server.Config{
		Schema: schema.Ghostty{Binary: app.Ghostty},
		Config: cfgFile,
		Lang:   lang,
		Log:    log,
	})
	if err != nil {
		return nil, schemaError{lang: lang, err: err}
	}
	return srv, nil
}

func (app *App) openBackend(ctx context.Context, log logging.Logger) (*backend, error) {
	if base := strings.TrimSpace(app.Server); base != "" {
		log.Debug(ctx, "using remote server", "url", base)
		c := apiclient.New(base)
		c.AcceptLanguage = app.lang()
		return &backend{client: c}, nil
	}

	lang := app.lang()
	srv, err := app.newServer(ctx, log, lang)
	if err != nil {
		return nil, err
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	sctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(sctx, ln) }()

	url := "http://" + ln.Addr().String()
	log.Debug(ctx, "started in-process server", "url", url)

	c := apiclient.New(url)
	c.AcceptLanguage = lang
	return &backend{
		client: c,
		stop: func() error {
			cancel()
			return <-done
		},
	}, nil
}

func (app *App) openPrefs(ctx context.Context) (*store.Prefs, error) {
	return store.OpenPrefs(ctx, app.StateDir)
}

// loadController opens a backend and an initialized controller over it.
// Preferences are optional: when the store cannot be opened the controller
// runs without one.
func (app *App) loadController(ctx context.Context, log logging.Logger) (*appctl.Controller, func(), error) {
	b, err := app.openBackend(ctx, log)
	if err != nil {
		return nil, nil, err
	}

	var prefs appctl.Prefs
	p, err := app.openPrefs(ctx)
	if err != nil {
		log.Warn(ctx, "preferences unavailable", "err", err)
	} else {
		prefs = p
	}

	cleanup := func() {
		if p != nil {
			_ = p.Close()
		}
		if err := b.Close(); err != nil {
			log.Warn(ctx, "stop server", "err", err)
		}
	}

	ctrl := appctl.New(b.client, prefs, log)
	if err := ctrl.Init(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return ctrl, cleanup, nil
}
