package i18n

import "testing"

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []string
		want string
	}{
		{in: nil, want: LangEN},
		{in: []string{""}, want: LangEN},
		{in: []string{"C"}, want: LangEN},
		{in: []string{"ja_JP.UTF-8"}, want: LangJA},
		{in: []string{"ja"}, want: LangJA},
		{in: []string{"en-US"}, want: LangEN},
		{in: []string{"fr-FR"}, want: LangEN},
		{in: []string{"ja-JP,ja;q=0.9,en;q=0.8"}, want: LangJA},
	}
	for _, tt := range tests {
		if got := Match(tt.in...); got != tt.want {
			t.Fatalf("Match(%v): got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestT_FallsBack(t *testing.T) {
	t.Parallel()

	if got := T(LangJA, "ui.save"); got != "保存" {
		t.Fatalf("ja: got %q", got)
	}
	if got := T("de", "ui.save"); got != "Save" {
		t.Fatalf("unknown lang should fall back to English, got %q", got)
	}
	if got := T(LangEN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should return key, got %q", got)
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	t.Parallel()

	for k := range messagesEN {
		if _, ok := messagesJA[k]; !ok {
			t.Errorf("ja table missing %s", k)
		}
	}
	for k := range messagesJA {
		if _, ok := messagesEN[k]; !ok {
			t.Errorf("en table missing %s", k)
		}
	}
}

func TestBundle(t *testing.T) {
	t.Parallel()

	b := Bundle("xx")
	if b.DefaultLang != LangEN {
		t.Fatalf("unknown default should become en, got %q", b.DefaultLang)
	}
	if !b.HasLanguage(LangJA) {
		t.Fatalf("bundle should list ja")
	}
	b.Messages[LangEN]["ui.save"] = "mutated"
	if T(LangEN, "ui.save") != "Save" {
		t.Fatalf("bundle must not alias the message tables")
	}
}
