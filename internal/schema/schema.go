// Package schema reads Ghostty's documented option list and classifies each
// key into a display section and an editor type.
package schema

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"sort"
	"strings"

	"ghostconfig/internal/model"
)

const (
	SectionAppearance = "appearance"
	SectionFont       = "font"
	SectionWindow     = "window"
	SectionInput      = "input"
	SectionShell      = "shell"
	SectionPlatform   = "platform"
	SectionAdvanced   = "advanced"
)

// SectionOrder is the display order; sections without options are omitted.
var SectionOrder = []string{
	SectionAppearance,
	SectionFont,
	SectionWindow,
	SectionInput,
	SectionShell,
	SectionPlatform,
	SectionAdvanced,
}

// Runner executes a command and returns its stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Ghostty queries the ghostty binary for defaults and fonts.
type Ghostty struct {
	Runner Runner
	Binary string
}

func (g Ghostty) binary() string {
	if strings.TrimSpace(g.Binary) == "" {
		return "ghostty"
	}
	return g.Binary
}

func (g Ghostty) runner() Runner {
	if g.Runner == nil {
		return ExecRunner{}
	}
	return g.Runner
}

// Options runs `ghostty +show-config --default --docs` and parses it.
func (g Ghostty) Options(ctx context.Context) ([]model.Option, error) {
	out, err := g.runner().Output(ctx, g.binary(), "+show-config", "--default", "--docs")
	if err != nil {
		return nil, err
	}
	return ParseDocs(strings.NewReader(string(out)))
}

// Fonts runs `ghostty +list-fonts` and returns family names.
func (g Ghostty) Fonts(ctx context.Context) ([]string, error) {
	out, err := g.runner().Output(ctx, g.binary(), "+list-fonts")
	if err != nil {
		return nil, err
	}
	return ParseFontList(string(out)), nil
}

// ParseDocs reads the documented-defaults format: "# " lines accumulate a
// description, "key = value" lines set the key, and a blank line closes the
// option. Repeated keys inside one block keep the last value.
func ParseDocs(r io.Reader) ([]model.Option, error) {
	var (
		opts  []model.Option
		desc  strings.Builder
		key   string
		value string
	)
	flush := func() {
		if key != "" {
			opts = append(opts, model.Option{
				Key:          key,
				DefaultValue: value,
				Description:  strings.TrimSpace(desc.String()),
			})
		}
		key, value = "", ""
		desc.Reset()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "# "):
			desc.WriteString(strings.TrimPrefix(line, "# "))
			desc.WriteString("\n")
		case line == "#":
			desc.WriteString("\n")
		case line == "":
			if key != "" {
				flush()
			}
		case strings.HasPrefix(line, "#"):
			// Other comment forms carry no documentation.
		default:
			if k, v, ok := strings.Cut(line, " = "); ok {
				key, value = k, v
			} else if strings.HasSuffix(line, " =") {
				key, value = strings.TrimSuffix(line, " ="), ""
			} else if k, v, ok := strings.Cut(line, "="); ok {
				key, value = strings.TrimSpace(k), strings.TrimSpace(v)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return opts, nil
}

// ParseFontList keeps non-indented lines (family names) in first-seen order.
func ParseFontList(out string) []string {
	var fonts []string
	seen := map[string]bool{}
	for _, line := range strings.Split(out, "\n") {
		if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}
		name := strings.TrimSpace(line)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		fonts = append(fonts, name)
	}
	return fonts
}

// Group classifies options into sections in SectionOrder. current supplies
// the user's configured values (may be nil).
func Group(opts []model.Option, current func(key string) string) []model.Section {
	bySection := map[string][]model.Option{}
	for _, o := range opts {
		o.Section = SectionFor(o.Key)
		o.Type = TypeFor(o.Key)
		if current != nil {
			o.CurrentValue = current(o.Key)
		}
		bySection[o.Section] = append(bySection[o.Section], o)
	}
	var out []model.Section
	for _, name := range SectionOrder {
		if list, ok := bySection[name]; ok {
			out = append(out, model.Section{Name: name, Options: list})
		}
	}
	return out
}

// Keys returns the sorted option keys; useful for completions.
func Keys(opts []model.Option) []string {
	keys := make([]string, 0, len(opts))
	for _, o := range opts {
		keys = append(keys, o.Key)
	}
	sort.Strings(keys)
	return keys
}
