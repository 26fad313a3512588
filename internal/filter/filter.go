package filter

import (
	"strings"

	"ghostconfig/internal/catalog"
	"ghostconfig/internal/model"
)

// All is the section filter that matches every section.
const All = "all"

type Entry struct {
	Section string
	Option  *model.Option
}

// Group is a run of entries sharing a section, in render order.
type Group struct {
	Section string
	Entries []Entry
}

type Result struct {
	Entries []Entry
}

func (r Result) Len() int    { return len(r.Entries) }
func (r Result) Empty() bool { return len(r.Entries) == 0 }

func (r Result) Groups() []Group {
	var out []Group
	for _, e := range r.Entries {
		if len(out) == 0 || out[len(out)-1].Section != e.Section {
			out = append(out, Group{Section: e.Section})
		}
		g := &out[len(out)-1]
		g.Entries = append(g.Entries, e)
	}
	return out
}

// IndexOf returns the position of key in the projection, or -1.
func (r Result) IndexOf(key string) int {
	for i, e := range r.Entries {
		if e.Option.Key == key {
			return i
		}
	}
	return -1
}

// Matches reports whether opt (owned by section) passes the filter.
func Matches(section string, opt model.Option, sectionFilter, search string) bool {
	if sectionFilter != All && section != sectionFilter {
		return false
	}
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(opt.Key), q) ||
		strings.Contains(strings.ToLower(opt.Description), q)
}

// Visible projects the catalog through a section filter and a search string.
//
// Entries point into the catalog, so a later ApplyUpdate is observable through
// an existing Result.
func Visible(c *catalog.Catalog, sectionFilter, search string) Result {
	sectionFilter = strings.TrimSpace(sectionFilter)
	if sectionFilter == "" {
		sectionFilter = All
	}

	sections := c.Sections()
	order := []string{}
	bySection := map[string][]Entry{}
	for si := range sections {
		s := &sections[si]
		for oi := range s.Options {
			opt := &s.Options[oi]
			if !Matches(s.Name, *opt, sectionFilter, search) {
				continue
			}
			if _, ok := bySection[s.Name]; !ok {
				order = append(order, s.Name)
			}
			bySection[s.Name] = append(bySection[s.Name], Entry{Section: s.Name, Option: opt})
		}
	}

	var res Result
	for _, name := range order {
		res.Entries = append(res.Entries, bySection[name]...)
	}
	return res
}
