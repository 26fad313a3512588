// Package i18n holds the message tables served to clients and used by the
// server's own console output.
package i18n

import (
	"strings"

	"ghostconfig/internal/model"

	"golang.org/x/text/language"
)

const (
	LangEN = "en"
	LangJA = "ja"
)

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

// Languages lists the languages with a message table, default first.
func Languages() []string { return []string{LangEN, LangJA} }

// Match picks the best supported language for a list of preferences such as
// $LANG values ("ja_JP.UTF-8") or Accept-Language headers. Unknown or empty
// input resolves to English.
func Match(prefs ...string) string {
	cleaned := make([]string, 0, len(prefs))
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		// POSIX locale: strip ".UTF-8" / "@modifier". Headers keep their q-values.
		if !strings.ContainsAny(p, ",;") {
			if i := strings.IndexAny(p, ".@"); i >= 0 {
				p = p[:i]
			}
		}
		p = strings.ReplaceAll(p, "_", "-")
		if p == "" || p == "C" || p == "POSIX" {
			continue
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) == 0 {
		return LangEN
	}
	tag, _ := language.MatchStrings(matcher, cleaned...)
	base, _ := tag.Base()
	if base.String() == LangJA {
		return LangJA
	}
	return LangEN
}

func table(lang string) map[string]string {
	if lang == LangJA {
		return messagesJA
	}
	return messagesEN
}

// T translates key, falling back to English and then to the key itself.
func T(lang, key string) string {
	if msg, ok := table(lang)[key]; ok {
		return msg
	}
	if msg, ok := messagesEN[key]; ok {
		return msg
	}
	return key
}

// Bundle is the payload of GET /api/i18n.
func Bundle(defaultLang string) model.I18nBundle {
	if defaultLang != LangJA {
		defaultLang = LangEN
	}
	return model.I18nBundle{
		Languages:   Languages(),
		DefaultLang: defaultLang,
		Messages: map[string]map[string]string{
			LangEN: copyTable(messagesEN),
			LangJA: copyTable(messagesJA),
		},
	}
}

func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
