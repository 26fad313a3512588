package filter

import (
	"testing"

	"ghostconfig/internal/catalog"
	"ghostconfig/internal/model"
)

func mustCatalog(t *testing.T, sections []model.Section) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(sections)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func fixture(t *testing.T) *catalog.Catalog {
	return mustCatalog(t, []model.Section{
		{Name: "font", Options: []model.Option{
			{Key: "font-family", Type: model.OptionTypeFont, Description: "Primary font"},
			{Key: "font-size", Type: model.OptionTypeText, DefaultValue: "13"},
		}},
		{Name: "appearance", Options: []model.Option{
			{Key: "theme", Type: model.OptionTypeText, Description: "pick a font style"},
			{Key: "background", Type: model.OptionTypeColor},
		}},
		{Name: "window", Options: []model.Option{
			{Key: "window-padding-x", Type: model.OptionTypeText},
		}},
	})
}

func keys(r Result) []string {
	out := make([]string, 0, r.Len())
	for _, e := range r.Entries {
		out = append(out, e.Option.Key)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVisible_AllEmptySearch_ReturnsEverythingOnceGrouped(t *testing.T) {
	t.Parallel()

	c := fixture(t)
	res := Visible(c, All, "")
	if res.Len() != c.Len() {
		t.Fatalf("expected %d entries, got %d", c.Len(), res.Len())
	}

	seen := map[string]int{}
	for _, e := range res.Entries {
		seen[e.Option.Key]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Fatalf("key %s appeared %d times", k, n)
		}
	}

	var groups []string
	for _, g := range res.Groups() {
		groups = append(groups, g.Section)
	}
	if want := []string{"font", "appearance", "window"}; !equal(groups, want) {
		t.Fatalf("groups: got %v want %v", groups, want)
	}
}

func TestVisible_SearchMatchesKeyOrDescription(t *testing.T) {
	t.Parallel()

	c := fixture(t)
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "key and description", search: "font", want: []string{"font-family", "font-size", "theme"}},
		{name: "case insensitive", search: "FONT-FAM", want: []string{"font-family"}},
		{name: "description only", search: "Primary", want: []string{"font-family"}},
		{name: "no match", search: "zzz", want: []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := keys(Visible(c, All, tt.search))
			if !equal(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestVisible_SearchIsSubsetOfAll(t *testing.T) {
	t.Parallel()

	c := fixture(t)
	all := map[string]bool{}
	for _, k := range keys(Visible(c, All, "")) {
		all[k] = true
	}
	for _, q := range []string{"f", "o", "window", "x", "Style"} {
		for _, k := range keys(Visible(c, All, q)) {
			if !all[k] {
				t.Fatalf("search %q returned %s which is not in the full view", q, k)
			}
		}
	}
}

func TestVisible_SingleSection(t *testing.T) {
	t.Parallel()

	c := fixture(t)
	if got, want := keys(Visible(c, "appearance", "")), []string{"theme", "background"}; !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got, want := keys(Visible(c, "appearance", "font")), []string{"theme"}; !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if !Visible(c, "missing", "").Empty() {
		t.Fatalf("unknown section should project to empty")
	}
}

func TestVisible_EntriesTrackCatalogUpdates(t *testing.T) {
	t.Parallel()

	c := fixture(t)
	res := Visible(c, All, "font-size")
	c.ApplyUpdate("font-size", "14")
	if got := res.Entries[0].Option.CurrentValue; got != "14" {
		t.Fatalf("expected entry to observe update, got %q", got)
	}
	if res.IndexOf("font-size") != 0 || res.IndexOf("nope") != -1 {
		t.Fatalf("IndexOf mismatch")
	}
}

func TestVisible_NilCatalog(t *testing.T) {
	t.Parallel()

	if !Visible(nil, All, "").Empty() {
		t.Fatalf("nil catalog should project to empty")
	}
}
