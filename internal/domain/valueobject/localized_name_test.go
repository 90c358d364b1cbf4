// Package valueobject defines immutable domain value types.
package valueobject

import (
	"reflect"
	"testing"
)

func TestLocalizedNameResolve(t *testing.T) {
	tests := []struct {
		name  string
		value LocalizedName
		lang  string
		want  string
	}{
		{
			name:  "requested language present",
			value: `{"en":"Food","vi":"Ăn uống"}`,
			lang:  "vi",
			want:  "Ăn uống",
		},
		{
			name:  "missing language falls back to english",
			value: `{"en":"Food","vi":"Ăn uống"}`,
			lang:  "fr",
			want:  "Food",
		},
		{
			name:  "no english falls back to first value by key",
			value: `{"vi":"Ăn uống","de":"Essen"}`,
			lang:  "fr",
			want:  "Essen",
		},
		{
			name:  "legacy plain name returned unchanged",
			value: "Groceries",
			lang:  "vi",
			want:  "Groceries",
		},
		{
			name:  "empty value resolves empty",
			value: "",
			lang:  "en",
			want:  "",
		},
		{
			name:  "empty requested value falls through",
			value: `{"vi":"","en":"Food"}`,
			lang:  "vi",
			want:  "Food",
		},
		{
			name:  "object with only empty values resolves empty",
			value: `{"vi":"","en":""}`,
			lang:  "vi",
			want:  "",
		},
		{
			name:  "non-object json is treated as legacy",
			value: `[1,2]`,
			lang:  "en",
			want:  `[1,2]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.lang); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestNewLocalizedNameRoundTrip(t *testing.T) {
	values := map[string]string{"en": "Food", "vi": "Ăn uống"}

	encoded, err := NewLocalizedName(values)
	if err != nil {
		t.Fatalf("NewLocalizedName() error = %v", err)
	}
	for lang, want := range values {
		if got := encoded.Resolve(lang); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", lang, got, want)
		}
	}

	empty, err := NewLocalizedName(nil)
	if err != nil {
		t.Fatalf("NewLocalizedName(nil) error = %v", err)
	}
	if empty != "" {
		t.Errorf("NewLocalizedName(nil) = %q, want empty", empty)
	}
}

func TestLocalizedNameLanguages(t *testing.T) {
	tests := []struct {
		name  string
		value LocalizedName
		want  []string
	}{
		{name: "encoded map", value: `{"vi":"Ăn uống","en":"Food"}`, want: []string{"en", "vi"}},
		{name: "legacy plain name", value: "Groceries", want: []string{"en"}},
		{name: "empty", value: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Languages(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Languages() = %v, want %v", got, tt.want)
			}
		})
	}
}
