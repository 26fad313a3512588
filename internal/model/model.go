package model

import (
	"fmt"
	"strings"
)

type OptionType string

const (
	OptionTypeText  OptionType = "text"
	OptionTypeColor OptionType = "color"
	OptionTypeFont  OptionType = "font"
)

// ParseOptionType maps a wire tag onto a known option type.
// Unknown tags are an error; callers must not default them to text.
func ParseOptionType(s string) (OptionType, error) {
	switch OptionType(strings.TrimSpace(s)) {
	case OptionTypeText:
		return OptionTypeText, nil
	case OptionTypeColor:
		return OptionTypeColor, nil
	case OptionTypeFont:
		return OptionTypeFont, nil
	default:
		return "", fmt.Errorf("unknown option type: %q", s)
	}
}

type Option struct {
	Key          string     `json:"key"`
	Type         OptionType `json:"type"`
	Description  string     `json:"description,omitempty"`
	DefaultValue string     `json:"defaultValue,omitempty"`
	CurrentValue string     `json:"currentValue,omitempty"`

	// Section is the owning section name. The catalog stamps it on load.
	Section string `json:"section,omitempty"`
}

// EffectiveValue is the value the option currently resolves to.
func (o Option) EffectiveValue() string {
	if o.CurrentValue != "" {
		return o.CurrentValue
	}
	return o.DefaultValue
}

// UsingDefault reports whether no explicit value is set.
func (o Option) UsingDefault() bool {
	return o.CurrentValue == ""
}

func (o Option) Modified() bool {
	return o.CurrentValue != "" && o.CurrentValue != o.DefaultValue
}

type Section struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

type Color struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type I18nBundle struct {
	Languages   []string                     `json:"languages"`
	DefaultLang string                       `json:"defaultLang"`
	Messages    map[string]map[string]string `json:"messages"`
}

// Lookup returns the message for key in lang, falling back to the default
// language and finally to the key itself.
func (b *I18nBundle) Lookup(lang, key string) string {
	if b == nil {
		return key
	}
	if msg, ok := b.Messages[lang][key]; ok {
		return msg
	}
	if msg, ok := b.Messages[b.DefaultLang][key]; ok {
		return msg
	}
	return key
}

func (b *I18nBundle) HasLanguage(lang string) bool {
	if b == nil {
		return false
	}
	for _, l := range b.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

type ConfigUpdate struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
