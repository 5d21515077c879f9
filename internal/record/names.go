package record

import "sort"

// DefaultLocale is used when a caller does not ask for one.
const DefaultLocale = "en"

// BestName picks a display name for locale: the exact locale, then "en", then
// "en-US", then the lowest locale code present. It reports false only when
// the table is empty.
func BestName(names map[string]string, locale string) (string, bool) {
	for _, l := range []string{locale, "en", "en-US"} {
		if name, ok := names[l]; ok {
			return name, true
		}
	}
	if len(names) == 0 {
		return "", false
	}

	locales := make([]string, 0, len(names))
	for l := range names {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return names[locales[0]], true
}
