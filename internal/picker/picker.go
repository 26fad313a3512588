// Package picker holds the per-type value editors. Each variant turns user
// interaction into a normalized string; the hex field, the text buffer and the
// explicit font selection are the only sources a commit reads from.
package picker

import (
	"fmt"

	"ghostconfig/internal/model"
)

type Picker interface {
	Type() model.OptionType
	// Value is what a commit sends to the server.
	Value() string
}

// Env carries the shared catalogs a picker may draw from.
type Env struct {
	Palette []model.Color
	Fonts   *FontCache
}

// New picks the variant for opt and seeds it with initial.
func New(opt model.Option, initial string, env Env) (Picker, error) {
	switch opt.Type {
	case model.OptionTypeText:
		return NewText(initial), nil
	case model.OptionTypeColor:
		return NewColor(env.Palette, initial), nil
	case model.OptionTypeFont:
		return NewFont(initial), nil
	default:
		return nil, fmt.Errorf("picker: unsupported option type %q for %s", opt.Type, opt.Key)
	}
}

type Text struct {
	value string
}

func NewText(initial string) *Text { return &Text{value: initial} }

func (t *Text) Type() model.OptionType { return model.OptionTypeText }
func (t *Text) SetValue(s string)      { t.value = s }
func (t *Text) Value() string          { return t.value }
