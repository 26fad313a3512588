package schema

import (
	"strings"

	"ghostconfig/internal/model"
)

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func oneOf(s string, set ...string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// SectionFor maps a key onto its semantic section.
func SectionFor(key string) string {
	switch {
	case hasAnyPrefix(key, "font-", "adjust-", "grapheme-", "freetype-") || key == "alpha-blending":
		return SectionFont
	case oneOf(key, "theme", "background", "foreground", "bold-color", "palette",
		"minimum-contrast", "faint-opacity", "split-divider-color") ||
		hasAnyPrefix(key, "background-", "cursor-", "selection-"):
		return SectionAppearance
	case hasAnyPrefix(key, "window-", "title", "quick-terminal-", "resize-", "unfocused-split-") ||
		oneOf(key, "class", "fullscreen", "maximize", "initial-window", "confirm-close-surface"):
		return SectionWindow
	case oneOf(key, "keybind", "input", "copy-on-select", "right-click-action", "focus-follows-mouse") ||
		hasAnyPrefix(key, "mouse-", "clipboard-", "click-"):
		return SectionInput
	case oneOf(key, "command", "initial-command", "working-directory", "env", "term",
		"wait-after-command", "abnormal-command-exit-runtime", "enquiry-response", "scroll-to-bottom") ||
		hasAnyPrefix(key, "command-", "shell-", "scrollback-"):
		return SectionShell
	case hasAnyPrefix(key, "macos-", "linux-", "gtk-", "x11-"):
		return SectionPlatform
	default:
		return SectionAdvanced
	}
}

var colorKeys = map[string]bool{
	"background":                 true,
	"foreground":                 true,
	"bold-color":                 true,
	"cursor-color":               true,
	"cursor-text":                true,
	"selection-background":       true,
	"selection-foreground":       true,
	"split-divider-color":        true,
	"window-padding-color":       true,
	"window-titlebar-background": true,
	"window-titlebar-foreground": true,
	"palette":                    true,
}

// TypeFor picks the editor type for a key.
func TypeFor(key string) model.OptionType {
	if colorKeys[key] {
		return model.OptionTypeColor
	}
	if strings.HasPrefix(key, "font-family") {
		return model.OptionTypeFont
	}
	return model.OptionTypeText
}

// CommonColors is the quick-pick palette served at /api/colors.
var CommonColors = []model.Color{
	{Name: "Black", Value: "000000"},
	{Name: "White", Value: "ffffff"},
	{Name: "Red", Value: "ff0000"},
	{Name: "Green", Value: "00ff00"},
	{Name: "Blue", Value: "0000ff"},
	{Name: "Yellow", Value: "ffff00"},
	{Name: "Cyan", Value: "00ffff"},
	{Name: "Magenta", Value: "ff00ff"},
	{Name: "Orange", Value: "ff8800"},
	{Name: "Purple", Value: "8800ff"},
	{Name: "Gray", Value: "888888"},
	{Name: "Dark Gray", Value: "444444"},
	{Name: "Light Gray", Value: "cccccc"},
}
