package gamedata

import "errors"

// DefaultLang is the language used when a name has no translation.
const DefaultLang = "en"

// ErrInvalidTemplate indicates a template in the embedded data is out of contract.
var ErrInvalidTemplate = errors.New("invalid template")

// Names maps a language code (e.g., "en", "ru") to a display name.
type Names map[string]string

// For returns the name in lang, falling back to DefaultLang.
func (n Names) For(lang string) string {
	if v := n[lang]; v != "" {
		return v
	}
	return n[DefaultLang]
}
