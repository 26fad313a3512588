package editor

import (
	"errors"
	"testing"

	"ghostconfig/internal/model"
	"ghostconfig/internal/picker"
)

func TestInitialValue_Fallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  model.Option
		want string
	}{
		{name: "current wins", opt: model.Option{CurrentValue: "14", DefaultValue: "12"}, want: "14"},
		{name: "default fallback", opt: model.Option{DefaultValue: "12"}, want: "12"},
		{name: "empty", opt: model.Option{}, want: ""},
	}
	for _, tt := range tests {
		if got := InitialValue(tt.opt); got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.name, got, tt.want)
		}
	}
}

func TestSession_OpenCancelReopen(t *testing.T) {
	t.Parallel()

	var s Session
	if s.State() != Closed {
		t.Fatalf("zero session should be closed")
	}

	size := &model.Option{Key: "font-size", Type: model.OptionTypeText, DefaultValue: "12"}
	p, err := s.Open(size, picker.Env{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.State() != Open || !s.IsOpenFor("font-size") {
		t.Fatalf("expected open for font-size")
	}
	if p.Value() != "12" {
		t.Fatalf("seed: got %q", p.Value())
	}
	p.(*picker.Text).SetValue("99")
	gen := s.Generation()

	s.Cancel()
	if s.State() != Closed || s.Picker() != nil || s.Value() != "" {
		t.Fatalf("cancel should drop picker state")
	}

	p2, err := s.Open(size, picker.Env{})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if p2.Value() != "12" {
		t.Fatalf("partial edit leaked across sessions: %q", p2.Value())
	}
	if s.Generation() == gen {
		t.Fatalf("generation should change on reopen")
	}
}

func TestSession_OpenOtherDiscardsPrior(t *testing.T) {
	t.Parallel()

	var s Session
	a := &model.Option{Key: "a", Type: model.OptionTypeText}
	b := &model.Option{Key: "b", Type: model.OptionTypeColor, DefaultValue: "ffffff"}

	pa, _ := s.Open(a, picker.Env{})
	pa.(*picker.Text).SetValue("half typed")

	pb, err := s.Open(b, picker.Env{})
	if err != nil {
		t.Fatalf("open b: %v", err)
	}
	if !s.IsOpenFor("b") || s.IsOpenFor("a") {
		t.Fatalf("expected exclusive session on b")
	}
	if pb.Type() != model.OptionTypeColor {
		t.Fatalf("expected color picker, got %s", pb.Type())
	}
}

func TestSession_OpenErrors(t *testing.T) {
	t.Parallel()

	var s Session
	if _, err := s.Open(nil, picker.Env{}); !errors.Is(err, ErrNoOption) {
		t.Fatalf("expected ErrNoOption, got %v", err)
	}
	if _, err := s.Open(&model.Option{Key: "x", Type: "weird"}, picker.Env{}); err == nil {
		t.Fatalf("expected unknown type error")
	}
	if s.State() != Closed {
		t.Fatalf("failed open must leave session closed")
	}
}
