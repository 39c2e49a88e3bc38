package dcc

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// LangString is a multilingual value: language code -> localized string.
// Keys are BCP 47 style codes ("id", "en", "en-US"). A LangString with no
// non-blank value is considered empty.
type LangString map[string]string

// NewLangString builds a LangString from code/value pairs.
// Blank language codes are rejected; values are stored as given.
func NewLangString(pairs map[string]string) (LangString, error) {
	ls := make(LangString, len(pairs))
	for code, value := range pairs {
		if strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("langstring: blank language code")
		}
		ls[code] = value
	}
	return ls, nil
}

// Get returns the value for a language code, or "" if absent.
func (ls LangString) Get(code string) string {
	return ls[code]
}

// Set stores a value for a language code. Blank codes are rejected.
func (ls LangString) Set(code, value string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("langstring: blank language code")
	}
	ls[code] = value
	return nil
}

// HasAny reports whether at least one language has a non-blank value.
func (ls LangString) HasAny() bool {
	for _, v := range ls {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Missing returns the subset of langs for which the value is absent or
// blank after trimming. Input order is preserved.
func (ls LangString) Missing(langs []string) []string {
	var missing []string
	for _, code := range langs {
		if strings.TrimSpace(ls[code]) == "" {
			missing = append(missing, code)
		}
	}
	return missing
}

// Languages returns the sorted list of language codes with a value set,
// blank or not. Used for deterministic iteration.
func (ls LangString) Languages() []string {
	codes := make([]string, 0, len(ls))
	for code := range ls {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone returns a copy that shares no storage with the receiver.
func (ls LangString) Clone() LangString {
	if ls == nil {
		return nil
	}
	out := make(LangString, len(ls))
	for k, v := range ls {
		out[k] = v
	}
	return out
}

// ValidLanguageCode reports whether code parses as a BCP 47 language tag.
// Validation of used_languages entries is advisory: unknown codes are
// flagged, not rejected, because the backend renderer owns the final say.
func ValidLanguageCode(code string) bool {
	_, err := language.Parse(code)
	return err == nil
}
