// Package app owns all client-side state of the editor: the option catalog,
// filter inputs and their projection, the editor session, the status line and
// the language preference.
//
// A Controller is not safe for concurrent use. The TUI drives it from the
// bubbletea Update loop and runs network calls (Fetch, Save, LoadFonts) as
// commands whose results are fed back through the Finish*/Resolve methods.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ghostconfig/internal/catalog"
	"ghostconfig/internal/editor"
	"ghostconfig/internal/filter"
	"ghostconfig/internal/i18n"
	"ghostconfig/internal/logging"
	"ghostconfig/internal/model"
	"ghostconfig/internal/picker"
	"ghostconfig/internal/reconcile"
	"ghostconfig/internal/status"

	"golang.org/x/sync/errgroup"
)

// LangPrefKey is where the chosen UI language is persisted.
const LangPrefKey = "ghostconfig.lang"

// Client is the server boundary the controller needs.
type Client interface {
	Options(ctx context.Context) ([]model.Section, error)
	Colors(ctx context.Context) ([]model.Color, error)
	Fonts(ctx context.Context) ([]string, error)
	I18n(ctx context.Context) (model.I18nBundle, error)
	SaveConfig(ctx context.Context, key, value string) error
	Exit(ctx context.Context) error
}

// Prefs persists small client-local preferences. May be nil.
type Prefs interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type ListState int

const (
	Loading ListState = iota
	Failed
	Empty
	Ready
)

func (s ListState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Empty:
		return "empty"
	default:
		return "ready"
	}
}

type Controller struct {
	client Client
	prefs  Prefs
	log    logging.Logger

	cat     *catalog.Catalog
	palette []model.Color
	fonts   *picker.FontCache
	bundle  *model.I18nBundle
	lang    string

	session editor.Session
	status  status.Line
	rec     *reconcile.Reconciler

	section    string
	search     string
	projection filter.Result
	revision   int

	loaded  bool
	loadErr error
}

func New(client Client, prefs Prefs, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Discard()
	}
	return &Controller{
		client:  client,
		prefs:   prefs,
		log:     log,
		fonts:   picker.NewFontCache(client),
		lang:    i18n.LangEN,
		section: filter.All,
	}
}

// Snapshot is what the startup requests returned.
type Snapshot struct {
	Catalog *catalog.Catalog
	Palette []model.Color
	// Bundle is nil when the server did not provide one.
	Bundle *model.I18nBundle
	// StoredLang is the persisted language preference, "" when unset.
	StoredLang string
}

// Init fetches and installs the startup state in one step.
func (c *Controller) Init(ctx context.Context) error {
	snap, err := c.Fetch(ctx)
	return c.FinishInit(ctx, snap, err)
}

// Fetch requests options and colors (both required) and the i18n bundle
// (optional) concurrently, and reads the stored language. It touches no
// controller state and may run on any goroutine. A required failure is a
// *catalog.LoadError.
func (c *Controller) Fetch(ctx context.Context) (Snapshot, error) {
	var (
		snap    Snapshot
		bundle  model.I18nBundle
		i18nErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Catalog, err = catalog.Load(gctx, c.client)
		return err
	})
	g.Go(func() error {
		colors, err := c.client.Colors(gctx)
		if err != nil {
			return &catalog.LoadError{Resource: "colors", Err: err}
		}
		snap.Palette = colors
		return nil
	})
	g.Go(func() error {
		bundle, i18nErr = c.client.I18n(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	if i18nErr != nil {
		c.log.Warn(ctx, "i18n unavailable, using built-in messages", "err", i18nErr)
	} else {
		snap.Bundle = &bundle
	}
	if c.prefs != nil {
		v, ok, err := c.prefs.Get(ctx, LangPrefKey)
		if err != nil {
			c.log.Warn(ctx, "read language preference", "err", err)
		}
		if ok {
			snap.StoredLang = v
		}
	}
	return snap, nil
}

// FinishInit installs a fetched snapshot, or records fetchErr and leaves the
// list Failed.
func (c *Controller) FinishInit(ctx context.Context, snap Snapshot, fetchErr error) error {
	if fetchErr != nil {
		c.loadErr = fetchErr
		c.log.Error(ctx, "initial load failed", "err", fetchErr)
		return fetchErr
	}
	c.bundle = snap.Bundle
	c.cat = snap.Catalog
	c.palette = snap.Palette
	c.lang = c.initialLang(snap.StoredLang)
	c.rec = reconcile.New(c.client, c.cat, &c.status, c.reproject)
	c.rec.SetMessages(c.messages())
	c.loaded = true
	c.reproject()
	return nil
}

func (c *Controller) initialLang(stored string) string {
	if stored != "" && c.supportsLang(stored) {
		return stored
	}
	if c.bundle != nil && c.supportsLang(c.bundle.DefaultLang) {
		return c.bundle.DefaultLang
	}
	return i18n.LangEN
}

func (c *Controller) supportsLang(lang string) bool {
	if c.bundle != nil {
		return c.bundle.HasLanguage(lang)
	}
	for _, l := range i18n.Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

func (c *Controller) messages() reconcile.Messages {
	return reconcile.Messages{
		Saved: func(key, value string) string {
			return fmt.Sprintf(c.T("status.saved"), key, value)
		},
		SaveFailed: func(err error) string {
			return fmt.Sprintf(c.T("status.save_failed"), err.Error())
		},
	}
}

func (c *Controller) reproject() {
	c.projection = filter.Visible(c.cat, c.section, c.search)
	c.revision++
}

func (c *Controller) Catalog() *catalog.Catalog { return c.cat }
func (c *Controller) Palette() []model.Color    { return c.palette }
func (c *Controller) Section() string           { return c.section }
func (c *Controller) Search() string            { return c.search }
func (c *Controller) LoadErr() error            { return c.loadErr }

// Projection is the last computed visible list.
func (c *Controller) Projection() filter.Result { return c.projection }

// Revision counts projections computed so far.
func (c *Controller) Revision() int { return c.revision }

func (c *Controller) ListState() ListState {
	switch {
	case c.loadErr != nil:
		return Failed
	case !c.loaded:
		return Loading
	case c.projection.Empty():
		return Empty
	default:
		return Ready
	}
}

// Sections lists the selectable section filters: "all" first, then catalog order.
func (c *Controller) Sections() []string {
	return append([]string{filter.All}, c.cat.SectionNames()...)
}

func (c *Controller) SetSection(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = filter.All
	}
	c.section = name
	c.reproject()
}

func (c *Controller) SetSearch(text string) {
	c.search = text
	c.reproject()
}

func (c *Controller) Editor() *editor.Session { return &c.session }

// Open starts an editor session for key. Font pickers resolve immediately
// when the font list is already cached; otherwise they stay Loading until
// ResolveFonts.
func (c *Controller) Open(key string) (picker.Picker, error) {
	opt, ok := c.cat.FindByKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown option: %s", key)
	}
	p, err := c.session.Open(opt, picker.Env{Palette: c.palette, Fonts: c.fonts})
	if err != nil {
		return nil, err
	}
	if fp, ok := p.(*picker.Font); ok {
		if fonts, cached := c.fonts.Cached(); cached {
			fp.Resolve(fonts, nil)
		}
	}
	return p, nil
}

func (c *Controller) Cancel() { c.session.Cancel() }

// LoadFonts fetches (or returns the cached) font list. Safe to call from a
// goroutine.
func (c *Controller) LoadFonts(ctx context.Context) ([]string, error) {
	return c.fonts.Load(ctx)
}

// ResolveFonts hands a font fetch result to the session that asked for it.
// Results for an older generation, or for a non-font session, are dropped.
func (c *Controller) ResolveFonts(gen uint64, fonts []string, err error) bool {
	if c.session.State() != editor.Open || c.session.Generation() != gen {
		return false
	}
	fp, ok := c.session.Picker().(*picker.Font)
	if !ok {
		return false
	}
	fp.Resolve(fonts, err)
	if err != nil {
		c.log.Warn(context.Background(), "font list unavailable", "err", err)
	}
	return true
}

// Commit saves the open session's value and closes the session on success.
// On failure the session stays open and a *reconcile.SaveError is returned.
func (c *Controller) Commit(ctx context.Context) (status.Notice, error) {
	key, value, err := c.BeginCommit()
	if err != nil {
		return status.Notice{}, err
	}
	return c.FinishCommit(key, value, c.Save(ctx, key, value))
}

// BeginCommit captures what to save. The save itself runs elsewhere and its
// result goes to FinishCommit.
func (c *Controller) BeginCommit() (key, value string, err error) {
	if c.session.State() != editor.Open {
		return "", "", editor.ErrNoOption
	}
	return c.session.Option().Key, c.session.Value(), nil
}

// Save performs the network half of a commit. It touches no controller state
// and may run on any goroutine.
func (c *Controller) Save(ctx context.Context, key, value string) error {
	return c.client.SaveConfig(ctx, key, value)
}

// FinishCommit merges an acknowledged save or reports a rejected one.
//
// A success closes whatever session is open, even one opened after the save
// was issued, and a late success still merges into the catalog.
func (c *Controller) FinishCommit(key, value string, saveErr error) (status.Notice, error) {
	if saveErr != nil {
		c.log.Warn(context.Background(), "save failed", "key", key, "err", saveErr)
		return c.rec.Fail(key, saveErr)
	}
	n := c.rec.Apply(key, value)
	c.session.Close()
	return n, nil
}

// Status is the notice currently on the status line.
func (c *Controller) Status() (status.Notice, bool) { return c.status.Current() }

// ExpireStatus clears notice id if it is still showing.
func (c *Controller) ExpireStatus(id uint64) bool { return c.status.Expire(id) }

func (c *Controller) ShowStatus(text string, isError bool) status.Notice {
	return c.status.Show(text, isError)
}

func (c *Controller) Lang() string { return c.lang }

// Languages lists the switchable languages.
func (c *Controller) Languages() []string {
	if c.bundle != nil && len(c.bundle.Languages) > 0 {
		return append([]string(nil), c.bundle.Languages...)
	}
	return i18n.Languages()
}

// T translates key in the current language. Server messages win; the
// built-in tables cover keys the server did not send.
func (c *Controller) T(key string) string {
	if c.bundle != nil {
		if msg := c.bundle.Lookup(c.lang, key); msg != key {
			return msg
		}
	}
	return i18n.T(c.lang, key)
}

// SwitchLanguage changes the UI language and persists it. A persistence
// failure is logged; the switch still applies.
func (c *Controller) SwitchLanguage(ctx context.Context, lang string) error {
	lang = strings.TrimSpace(lang)
	if !c.supportsLang(lang) {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	c.lang = lang
	if c.prefs != nil {
		if err := c.prefs.Set(ctx, LangPrefKey, lang); err != nil {
			c.log.Warn(ctx, "persist language preference", "err", err)
		}
	}
	c.reproject()
	return nil
}

// NextLanguage cycles to the language after the current one.
func (c *Controller) NextLanguage(ctx context.Context) error {
	langs := c.Languages()
	if len(langs) == 0 {
		return errors.New("no languages")
	}
	next := langs[0]
	for i, l := range langs {
		if l == c.lang {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	return c.SwitchLanguage(ctx, next)
}

// RequestExit asks the server to stop. A failure is logged and returned for
// information only; callers proceed as if the exit was requested.
func (c *Controller) RequestExit(ctx context.Context) error {
	if err := c.client.Exit(ctx); err != nil {
		c.log.Warn(ctx, "exit request failed", "err", err)
		return err
	}
	c.log.Info(ctx, "exit requested")
	return nil
}
