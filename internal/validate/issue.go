package validate

import "fmt"

// Issue codes (V100-V199)
const (
	ErrRequired        = "V101" // required field blank
	ErrNoTranslations  = "V102" // multilingual field has no value at all
	ErrMissingLanguage = "V103" // multilingual field missing a used language
	ErrEmptyList       = "V104" // list requires at least one entry
	ErrBadDate         = "V105" // date does not parse as YYYY-MM-DD
	ErrBadEnum         = "V106" // enum value not recognized
	ErrNoLanguages     = "V107" // no used languages selected
	ErrBadLanguage     = "V108" // language code does not parse as BCP 47
)

// Issue is one validation finding against the draft document.
type Issue struct {
	Code    string `json:"code"`
	Section string `json:"section"`
	// Index is the element position for list sections, -1 otherwise.
	Index int    `json:"index"`
	Field string `json:"field,omitempty"`
	// Language is set for per-language findings (V103, V108).
	Language string `json:"language,omitempty"`
}

// Path renders the document location of the issue, e.g.
// "objects[0].jenis" or "owner.nama_cust".
func (i Issue) Path() string {
	p := i.Section
	if i.Index >= 0 {
		p = fmt.Sprintf("%s[%d]", p, i.Index)
	}
	if i.Field != "" {
		p += "." + i.Field
	}
	return p
}

// Error implements the error interface with an untranslated message.
// CLI output goes through Render instead.
func (i Issue) Error() string {
	if i.Language != "" {
		return fmt.Sprintf("[%s] %s: language %q", i.Code, i.Path(), i.Language)
	}
	return fmt.Sprintf("[%s] %s", i.Code, i.Path())
}
