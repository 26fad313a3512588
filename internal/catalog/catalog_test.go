package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"ghostconfig/internal/model"
)

type fakeSource struct {
	sections []model.Section
	err      error
}

func (f fakeSource) Options(context.Context) ([]model.Section, error) {
	return f.sections, f.err
}

func sampleSections() []model.Section {
	return []model.Section{
		{Name: "font", Options: []model.Option{
			{Key: "font-family", Type: model.OptionTypeFont},
			{Key: "font-size", Type: model.OptionTypeText, DefaultValue: "13"},
		}},
		{Name: "appearance", Options: []model.Option{
			{Key: "background", Type: model.OptionTypeColor, DefaultValue: "282c34"},
			{Key: "theme", Type: model.OptionTypeText, Description: "pick a font style"},
		}},
	}
}

func TestLoad_StampsSectionNames(t *testing.T) {
	t.Parallel()

	c, err := Load(context.Background(), fakeSource{sections: sampleSections()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := c.Len(), 4; got != want {
		t.Fatalf("len: got %d want %d", got, want)
	}
	if got, want := c.SectionNames(), []string{"font", "appearance"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("section names: got %v want %v", got, want)
	}
	opt, ok := c.FindByKey("theme")
	if !ok {
		t.Fatalf("expected theme to be found")
	}
	if opt.Section != "appearance" {
		t.Fatalf("expected section appearance, got %q", opt.Section)
	}
}

func TestLoad_SourceFailureIsLoadError(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), fakeSource{err: errors.New("boom")})
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if le.Resource != "options" {
		t.Fatalf("expected resource options, got %q", le.Resource)
	}
}

func TestLoad_RejectsUnknownOptionType(t *testing.T) {
	t.Parallel()

	sections := []model.Section{{Name: "general", Options: []model.Option{{Key: "x", Type: "bool"}}}}
	_, err := Load(context.Background(), fakeSource{sections: sections})
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError for unknown type, got %v", err)
	}
}

func TestLoad_RejectsDuplicateSection(t *testing.T) {
	t.Parallel()

	sections := []model.Section{{Name: "a"}, {Name: "a"}}
	if _, err := New(sections); err == nil {
		t.Fatalf("expected duplicate section error")
	}
}

func TestApplyUpdate_ThenFindByKey(t *testing.T) {
	t.Parallel()

	c, err := New(sampleSections())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for _, key := range []string{"font-family", "font-size", "background", "theme"} {
		if !c.ApplyUpdate(key, "v-"+key) {
			t.Fatalf("apply %s: expected hit", key)
		}
		opt, ok := c.FindByKey(key)
		if !ok || opt.CurrentValue != "v-"+key {
			t.Fatalf("find %s after apply: got %+v", key, opt)
		}
	}
}

func TestApplyUpdate_MissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	c, err := New(sampleSections())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	before := deepCopy(c.Sections())

	if c.ApplyUpdate("does-not-exist", "x") {
		t.Fatalf("expected miss")
	}
	if !reflect.DeepEqual(before, c.Sections()) {
		t.Fatalf("catalog changed on missing key")
	}
}

func TestFindByKey_FirstMatchWins(t *testing.T) {
	t.Parallel()

	c, err := New([]model.Section{
		{Name: "a", Options: []model.Option{{Key: "dup", Type: model.OptionTypeText, DefaultValue: "first"}}},
		{Name: "b", Options: []model.Option{{Key: "dup", Type: model.OptionTypeText, DefaultValue: "second"}}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	opt, _ := c.FindByKey("dup")
	if opt.DefaultValue != "first" {
		t.Fatalf("expected first match, got %q", opt.DefaultValue)
	}
	c.ApplyUpdate("dup", "x")
	if c.Sections()[1].Options[0].CurrentValue != "" {
		t.Fatalf("second duplicate should be untouched")
	}
}

func TestNilCatalog_IsEmpty(t *testing.T) {
	t.Parallel()

	var c *Catalog
	if c.Len() != 0 || c.Sections() != nil {
		t.Fatalf("nil catalog should be empty")
	}
	if _, ok := c.FindByKey("x"); ok {
		t.Fatalf("nil catalog should not find keys")
	}
	if c.ApplyUpdate("x", "y") {
		t.Fatalf("nil catalog apply should be a no-op")
	}
}

func deepCopy(in []model.Section) []model.Section {
	out := make([]model.Section, len(in))
	for i, s := range in {
		out[i] = model.Section{Name: s.Name, Options: append([]model.Option(nil), s.Options...)}
	}
	return out
}
