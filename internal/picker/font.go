package picker

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ghostconfig/internal/model"
)

type FontSource interface {
	Fonts(ctx context.Context) ([]string, error)
}

// LazyLoadError is a failed font list fetch. It stays inside the font picker.
type LazyLoadError struct {
	Err error
}

func (e *LazyLoadError) Error() string { return fmt.Sprintf("load fonts: %v", e.Err) }
func (e *LazyLoadError) Unwrap() error { return e.Err }

// FontCache fetches the font list once per process. Failures are not cached.
type FontCache struct {
	src FontSource

	mu     sync.Mutex
	fonts  []string
	loaded bool
}

func NewFontCache(src FontSource) *FontCache {
	return &FontCache{src: src}
}

func (c *FontCache) Cached() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fonts, c.loaded
}

func (c *FontCache) Load(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	if c.loaded {
		fonts := c.fonts
		c.mu.Unlock()
		return fonts, nil
	}
	c.mu.Unlock()

	if c.src == nil {
		return nil, &LazyLoadError{Err: fmt.Errorf("no font source")}
	}
	fonts, err := c.src.Fonts(ctx)
	if err != nil {
		return nil, &LazyLoadError{Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		c.fonts = fonts
		c.loaded = true
	}
	return c.fonts, nil
}

type FontState int

const (
	FontLoading FontState = iota
	FontReady
	FontFailed
)

// Font is a filterable single-select list over the cached font names.
//
// The option's existing value is shown as "current" but is not a selection:
// committing without an explicit Select yields "".
type Font struct {
	state    FontState
	err      error
	fonts    []string
	current  string
	filter   string
	selected string
	picked   bool
}

func NewFont(current string) *Font {
	return &Font{state: FontLoading, current: current}
}

func (f *Font) Type() model.OptionType { return model.OptionTypeFont }

func (f *Font) Value() string {
	if !f.picked {
		return ""
	}
	return f.selected
}

func (f *Font) State() FontState { return f.state }
func (f *Font) Err() error       { return f.err }
func (f *Font) Current() string  { return f.current }
func (f *Font) Filter() string   { return f.filter }

// Resolve completes the lazy load. After a failure the picker stays failed.
func (f *Font) Resolve(fonts []string, err error) {
	if f.state != FontLoading {
		return
	}
	if err != nil {
		f.state = FontFailed
		f.err = err
		return
	}
	f.state = FontReady
	f.fonts = fonts
}

func (f *Font) SetFilter(s string) {
	if f.state != FontReady {
		return
	}
	f.filter = s
}

// Visible is the font list narrowed by the current filter.
func (f *Font) Visible() []string {
	if f.state != FontReady {
		return nil
	}
	if f.filter == "" {
		return f.fonts
	}
	q := strings.ToLower(f.filter)
	var out []string
	for _, name := range f.fonts {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

// Select marks name as the chosen font. Names not in the loaded list are ignored.
func (f *Font) Select(name string) bool {
	if f.state != FontReady {
		return false
	}
	for _, n := range f.fonts {
		if n == name {
			f.selected = name
			f.picked = true
			return true
		}
	}
	return false
}

func (f *Font) Selected() (string, bool) {
	return f.selected, f.picked
}
