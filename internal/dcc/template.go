package dcc

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// Template returns a fresh Document initialized from the named template.
// Every call unmarshals anew, so callers can mutate the result freely.
func Template(name string) (*Document, error) {
	raw, err := templateFS.ReadFile("templates/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown template %q (known: %s)", name, strings.Join(TemplateNames(), ", "))
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	// Templates declare roles only; signer flags are derived state.
	doc.ResponsiblePersons.DeriveSignerFlags()
	return &doc, nil
}

// TemplateNames lists the available template names, sorted.
func TemplateNames() []string {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
