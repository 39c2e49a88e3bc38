package validate

import (
	"fmt"

	"github.com/wicaksn/sertika/internal/i18n"
)

// Render localizes an issue into a human-readable message. Rendering is
// presentation only; validation logic never depends on it.
func Render(issue Issue, lang string) string {
	tmpl := i18n.T("issue."+issue.Code, lang)
	if issue.Language != "" {
		return fmt.Sprintf(tmpl, issue.Path(), issue.Language)
	}
	return fmt.Sprintf(tmpl, issue.Path())
}

// RenderAll localizes a list of issues, preserving order.
func RenderAll(issues []Issue, lang string) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = Render(issue, lang)
	}
	return out
}
