package models

// Locale selects the response language for customer-facing text.
type Locale string

const (
	LocaleTR Locale = "tr"
	LocaleEN Locale = "en"
)

// ParseLocale maps a raw language code to a supported locale.
// Unknown codes fall back to Turkish, the restaurant's primary language.
func ParseLocale(code string) Locale {
	if code == string(LocaleEN) {
		return LocaleEN
	}
	return LocaleTR
}
