// Package i18n owns the display-language preference: the supported locale
// table and the long-lived cookie it is stored in.
package i18n

// CookieName is the browser cookie holding the locale preference.
const CookieName = "locale"

// CookieMaxAge keeps the preference for one year.
const CookieMaxAge = 365 * 24 * 60 * 60

// DefaultLocale is used when no (or an unsupported) preference is stored.
const DefaultLocale = "es"

var supported = []string{"es", "en", "fr"}

// Supported returns the locale whitelist in display order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether the locale is in the whitelist.
func IsSupported(locale string) bool {
	for _, l := range supported {
		if l == locale {
			return true
		}
	}
	return false
}

// Normalize maps any input to a supported locale, falling back to the
// default for unknown values.
func Normalize(locale string) string {
	if IsSupported(locale) {
		return locale
	}
	return DefaultLocale
}
