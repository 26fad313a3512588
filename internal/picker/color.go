package picker

import (
	"regexp"
	"strings"

	"ghostconfig/internal/model"
)

var hexColorRe = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

const defaultPreview = "ffffff"

// NormalizeHex strips the first '#' and lower-cases s.
func NormalizeHex(s string) string {
	return strings.ToLower(strings.Replace(strings.TrimSpace(s), "#", "", 1))
}

// ValidHex reports whether s (with or without '#') is a 6-digit hex code.
func ValidHex(s string) bool {
	return hexColorRe.MatchString(strings.Replace(s, "#", "", 1))
}

// Color keeps a palette highlight, a free-form hex field and a preview in sync.
type Color struct {
	palette  []model.Color
	hex      string
	preview  string
	selected int
}

func NewColor(palette []model.Color, initial string) *Color {
	norm := NormalizeHex(initial)
	c := &Color{
		palette:  palette,
		hex:      norm,
		preview:  defaultPreview,
		selected: -1,
	}
	if norm != "" {
		c.preview = norm
	}
	for i, p := range palette {
		if strings.ToLower(p.Value) == norm {
			c.selected = i
			break
		}
	}
	return c
}

func (c *Color) Type() model.OptionType { return model.OptionTypeColor }

// Value reads the hex field as typed.
func (c *Color) Value() string { return c.hex }

func (c *Color) Hex() string              { return c.hex }
func (c *Color) Preview() string          { return c.preview }
func (c *Color) Palette() []model.Color   { return c.palette }
func (c *Color) SelectedIndex() int       { return c.selected }
func (c *Color) IsHighlighted(i int) bool { return i >= 0 && i == c.selected }

// SelectPalette overwrites the hex field and preview with palette entry i.
func (c *Color) SelectPalette(i int) bool {
	if i < 0 || i >= len(c.palette) {
		return false
	}
	v := c.palette[i].Value
	c.selected = i
	c.hex = v
	c.preview = v
	return true
}

// SetHex records keystrokes in the hex field. The preview only follows once the
// field holds a valid code. Any typing clears the palette highlight.
func (c *Color) SetHex(s string) {
	c.hex = s
	c.selected = -1
	if h := strings.Replace(s, "#", "", 1); hexColorRe.MatchString(h) {
		c.preview = h
	}
}

// PickPreview applies a value from a continuous color chooser.
func (c *Color) PickPreview(hex string) {
	h := strings.Replace(hex, "#", "", 1)
	c.hex = h
	c.preview = h
	c.selected = -1
}
