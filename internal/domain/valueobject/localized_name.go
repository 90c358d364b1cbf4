// Package valueobject defines immutable domain value types.
package valueobject

import (
	"encoding/json"
	"sort"
)

// DefaultLanguage is the fallback language for localized names.
const DefaultLanguage = "en"

// LocalizedName is a display name stored in a single text field. The value
// is either a plain legacy string or a JSON object mapping language code to
// string, e.g. `{"en":"Food","vi":"Ăn uống"}`.
type LocalizedName string

// NewLocalizedName encodes a language map into its stored representation.
// An empty map encodes to an empty string.
func NewLocalizedName(values map[string]string) (LocalizedName, error) {
	if len(values) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return LocalizedName(raw), nil
}

// Resolve returns the display name for the requested language. Resolution
// order: requested language, English fallback, first value present (lowest
// language code), empty string. A value that does not parse as a JSON object
// is a legacy plain name and is returned unchanged.
func (n LocalizedName) Resolve(lang string) string {
	if n == "" {
		return ""
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(n), &values); err != nil {
		// Legacy plain name.
		return string(n)
	}

	if v, ok := values[lang]; ok && v != "" {
		return v
	}
	if v, ok := values[DefaultLanguage]; ok && v != "" {
		return v
	}

	keys := make([]string, 0, len(values))
	for k, v := range values {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return values[keys[0]]
}

// Languages returns the language codes present in the encoded map, sorted.
// A legacy plain name reports the default language only.
func (n LocalizedName) Languages() []string {
	if n == "" {
		return nil
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(n), &values); err != nil {
		return []string{DefaultLanguage}
	}

	langs := make([]string, 0, len(values))
	for k := range values {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}
