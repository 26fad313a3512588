package catalog

import (
	"context"
	"fmt"
	"strings"

	"ghostconfig/internal/model"
)

// OptionSource returns the server's section snapshot.
type OptionSource interface {
	Options(ctx context.Context) ([]model.Section, error)
}

// LoadError means a startup fetch failed or returned data the client cannot use.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Catalog mirrors the server's sections and options.
//
// It is written only by the save reconciler (ApplyUpdate) and is not safe for
// concurrent use.
type Catalog struct {
	sections []model.Section
}

func Load(ctx context.Context, src OptionSource) (*Catalog, error) {
	sections, err := src.Options(ctx)
	if err != nil {
		return nil, &LoadError{Resource: "options", Err: err}
	}
	return New(sections)
}

// New validates a snapshot and builds a catalog from it. Option types must be
// one of the known variants; the owning section name is stamped on every option.
func New(sections []model.Section) (*Catalog, error) {
	out := make([]model.Section, 0, len(sections))
	seen := map[string]bool{}
	for _, s := range sections {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, &LoadError{Resource: "options", Err: fmt.Errorf("section without name")}
		}
		if seen[name] {
			return nil, &LoadError{Resource: "options", Err: fmt.Errorf("duplicate section: %s", name)}
		}
		seen[name] = true

		opts := make([]model.Option, 0, len(s.Options))
		for _, o := range s.Options {
			t, err := model.ParseOptionType(string(o.Type))
			if err != nil {
				return nil, &LoadError{Resource: "options", Err: fmt.Errorf("%s: %w", o.Key, err)}
			}
			o.Type = t
			o.Section = name
			opts = append(opts, o)
		}
		out = append(out, model.Section{Name: name, Options: opts})
	}
	return &Catalog{sections: out}, nil
}

func (c *Catalog) Sections() []model.Section {
	if c == nil {
		return nil
	}
	return c.sections
}

func (c *Catalog) SectionNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		names = append(names, s.Name)
	}
	return names
}

// Len is the total option count across all sections.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.sections {
		n += len(s.Options)
	}
	return n
}

// FindByKey scans every section in order and returns the first option with key.
func (c *Catalog) FindByKey(key string) (*model.Option, bool) {
	if c == nil {
		return nil, false
	}
	for si := range c.sections {
		opts := c.sections[si].Options
		for oi := range opts {
			if opts[oi].Key == key {
				return &opts[oi], true
			}
		}
	}
	return nil, false
}

// ApplyUpdate sets the current value of key. A key the catalog does not know
// is ignored: the server is authoritative and a miss only means the local
// mirror is stale.
func (c *Catalog) ApplyUpdate(key, value string) bool {
	opt, ok := c.FindByKey(key)
	if !ok {
		return false
	}
	opt.CurrentValue = value
	return true
}
