package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wicaksn/sertika/internal/dcc"
	"github.com/wicaksn/sertika/internal/wizard"
)

// Section names accepted by `draft set`. Patch sections merge field by
// field; list sections replace the whole list.
var sectionNames = []string{
	"administrative",
	"timeline",
	"objects",
	"persons",
	"owner",
	"methods",
	"equipments",
	"conditions",
	"results",
	"statements",
	"comment",
	"spreadsheet",
}

// LoadSectionFile reads a YAML section file and builds the wizard
// action that applies it.
func LoadSectionFile(section, path string) (wizard.Action, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read section file: %w", err)
	}
	return loadSection(section, raw)
}

func loadSection(section string, raw []byte) (wizard.Action, error) {
	// YAML decodes through an interface tree, then re-marshals as JSON
	// so one set of struct tags serves both formats.
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parse section %s: %w", section, err)
	}
	jsonRaw, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("convert section %s: %w", section, err)
	}

	decode := func(v any) error {
		if err := json.Unmarshal(jsonRaw, v); err != nil {
			return fmt.Errorf("decode section %s: %w", section, err)
		}
		return nil
	}

	switch section {
	case "administrative":
		var patch wizard.AdministrativePatch
		if err := decode(&patch); err != nil {
			return nil, err
		}
		return wizard.SetAdministrative{Patch: patch}, nil
	case "timeline":
		var patch wizard.TimelinePatch
		if err := decode(&patch); err != nil {
			return nil, err
		}
		return wizard.SetTimeline{Patch: patch}, nil
	case "objects":
		var objects []dcc.ObjectDescription
		if err := decode(&objects); err != nil {
			return nil, err
		}
		return wizard.SetObjects{Objects: objects}, nil
	case "persons":
		var patch wizard.PersonsPatch
		if err := decode(&patch); err != nil {
			return nil, err
		}
		return wizard.SetResponsiblePersons{Patch: patch}, nil
	case "owner":
		var owner dcc.Owner
		if err := decode(&owner); err != nil {
			return nil, err
		}
		return wizard.SetOwner{Owner: owner}, nil
	case "methods":
		var methods []dcc.Method
		if err := decode(&methods); err != nil {
			return nil, err
		}
		return wizard.SetMethods{Methods: methods}, nil
	case "equipments":
		var equipment []dcc.Equipment
		if err := decode(&equipment); err != nil {
			return nil, err
		}
		return wizard.SetEquipment{Equipment: equipment}, nil
	case "conditions":
		var conditions []dcc.Condition
		if err := decode(&conditions); err != nil {
			return nil, err
		}
		return wizard.SetConditions{Conditions: conditions}, nil
	case "results":
		var results []dcc.ResultTable
		if err := decode(&results); err != nil {
			return nil, err
		}
		return wizard.SetResults{Results: results}, nil
	case "statements":
		var statements []dcc.Statement
		if err := decode(&statements); err != nil {
			return nil, err
		}
		return wizard.SetStatements{Statements: statements}, nil
	case "comment":
		var comment dcc.Comment
		if err := decode(&comment); err != nil {
			return nil, err
		}
		return wizard.SetComment{Comment: comment}, nil
	case "spreadsheet":
		var sheet wizard.SetSpreadsheet
		if err := decode(&sheet); err != nil {
			return nil, err
		}
		return sheet, nil
	}

	known := append([]string(nil), sectionNames...)
	sort.Strings(known)
	return nil, fmt.Errorf("unknown section %q: must be one of %v", section, known)
}
