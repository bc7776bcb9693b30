// Package i18n localizes UI strings. Lookup is a pure function of
// (locale, key, params); there is no ambient language state.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // first tag is the fallback
	language.Chinese,
}

var matcher = language.NewMatcher(supported)

// Resolve maps an arbitrary locale string (e.g. an Accept-Language value or a
// path segment) to the closest supported locale code.
func Resolve(locale string) string {
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	if base.String() == "zh" {
		return "zh"
	}
	return "en"
}

// Lookup returns the localized string for key, interpolating {name}-style
// placeholders from params. Unknown locales fall back to English; unknown
// keys return the key itself so missing entries are visible, not silent.
func Lookup(locale, key string, params map[string]string) string {
	dict, ok := dictionaries[Resolve(locale)]
	if !ok {
		dict = dictionaries["en"]
	}
	msg, ok := dict[key]
	if !ok {
		if msg, ok = dictionaries["en"][key]; !ok {
			return key
		}
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// Dictionary returns the full table for a locale, for clients that localize
// in the browser.
func Dictionary(locale string) map[string]string {
	return dictionaries[Resolve(locale)]
}
