package validate

import (
	"strconv"
	"strings"
	"time"

	"github.com/wicaksn/sertika/internal/dcc"
)

// Step identifies one wizard step. Values match the wizard's page
// order.
type Step int

const (
	// StepAdministrative covers administrative data, the timeline,
	// calibrated objects, responsible persons, and the owner address.
	StepAdministrative Step = iota
	// StepMeasurement covers methods, equipment, conditions, the
	// spreadsheet reference, and result tables.
	StepMeasurement
	// StepStatements covers the statement list.
	StepStatements
	// StepComment covers the closing comment.
	StepComment
)

// String returns the step's section label.
func (s Step) String() string {
	switch s {
	case StepAdministrative:
		return "administrative"
	case StepMeasurement:
		return "measurement"
	case StepStatements:
		return "statements"
	case StepComment:
		return "comment"
	}
	return "unknown"
}

const dateLayout = "2006-01-02"

// UsedLanguages returns the language codes completeness is checked
// against: trimmed, non-empty entries of used_languages in declaration
// order, duplicates retained.
func UsedLanguages(doc *dcc.Document) []string {
	return doc.Administrative.LanguagesInUse()
}

// ValidateStep collects every issue for one step. The returned order is
// deterministic for identical input. An empty result means the step may
// be advanced.
func ValidateStep(step Step, doc *dcc.Document) []Issue {
	langs := UsedLanguages(doc)
	switch step {
	case StepAdministrative:
		return validateAdministrative(doc, langs)
	case StepMeasurement:
		return validateMeasurement(doc, langs)
	case StepStatements:
		return validateStatements(doc, langs)
	case StepComment:
		return validateComment(doc, langs)
	}
	return nil
}

func validateAdministrative(doc *dcc.Document, langs []string) []Issue {
	var issues []Issue
	ad := doc.Administrative

	if len(langs) == 0 {
		issues = append(issues, Issue{Code: ErrNoLanguages, Section: "administrative_data", Index: -1, Field: "used_languages"})
	}
	for _, code := range langs {
		if !dcc.ValidLanguageCode(code) {
			issues = append(issues, Issue{Code: ErrBadLanguage, Section: "administrative_data", Index: -1, Field: "used_languages", Language: code})
		}
	}

	issues = checkEnum(issues, "administrative_data", "issuer", string(ad.Issuer), ad.Issuer.Valid())
	issues = checkRequired(issues, "administrative_data", -1, "country_code", ad.CountryCode)
	issues = checkRequired(issues, "administrative_data", -1, "certificate_number", ad.CertificateNumber)
	issues = checkRequired(issues, "administrative_data", -1, "order_number", ad.OrderNumber)
	issues = checkEnum(issues, "administrative_data", "calibration_place", string(ad.Place), ad.Place.Valid())

	issues = checkDate(issues, "measurement_timeline", "measurement_start", doc.Timeline.MeasurementStart)
	issues = checkDate(issues, "measurement_timeline", "measurement_end", doc.Timeline.MeasurementEnd)
	issues = checkDate(issues, "measurement_timeline", "issue_date", doc.Timeline.IssueDate)

	if len(doc.Objects) == 0 {
		issues = append(issues, Issue{Code: ErrEmptyList, Section: "objects", Index: -1})
	} else {
		for i, obj := range doc.Objects {
			issues = checkLangString(issues, "objects", i, "jenis", obj.Jenis, langs)
			issues = checkRequired(issues, "objects", i, "merek", obj.Brand)
			issues = checkRequired(issues, "objects", i, "tipe", obj.Type)
			issues = checkEnumAt(issues, "objects", i, "item_issuer", string(obj.IdentityIssuer), obj.IdentityIssuer.Valid())
			issues = checkRequired(issues, "objects", i, "seri_item", obj.SerialNumber)
			// id_lain is optional; once any language is filled it must
			// cover every used language.
			if obj.OtherID.HasAny() {
				issues = checkLangString(issues, "objects", i, "id_lain", obj.OtherID, langs)
			}
		}
	}

	rp := doc.ResponsiblePersons
	issues = checkPersonList(issues, "responsible_persons.pelaksana", rp.Pelaksana)
	issues = checkPersonList(issues, "responsible_persons.penyelia", rp.Penyelia)
	issues = checkPerson(issues, "responsible_persons.kepala", -1, rp.Kepala)
	issues = checkPerson(issues, "responsible_persons.direktur", -1, rp.Direktur)

	issues = checkRequired(issues, "owner", -1, "nama_cust", doc.Owner.Name)
	issues = checkRequired(issues, "owner", -1, "jalan_cust", doc.Owner.Street)
	issues = checkRequired(issues, "owner", -1, "no_jalan_cust", doc.Owner.Number)
	issues = checkRequired(issues, "owner", -1, "kota_cust", doc.Owner.City)
	issues = checkRequired(issues, "owner", -1, "state_cust", doc.Owner.State)
	issues = checkRequired(issues, "owner", -1, "pos_cust", doc.Owner.PostalCode)
	issues = checkRequired(issues, "owner", -1, "negara_cust", doc.Owner.Country)

	return issues
}

func validateMeasurement(doc *dcc.Document, langs []string) []Issue {
	var issues []Issue

	if len(doc.Methods) == 0 {
		issues = append(issues, Issue{Code: ErrEmptyList, Section: "methods", Index: -1})
	} else {
		for i, m := range doc.Methods {
			issues = checkLangString(issues, "methods", i, "method_name", m.Name, langs)
			issues = checkLangString(issues, "methods", i, "method_desc", m.Description, langs)
			issues = checkRequired(issues, "methods", i, "norm", m.Norm)
			issues = checkFormula(issues, "methods", i, m.HasFormula, m.Formula)
			issues = checkImage(issues, "methods", i, m.HasImage, m.Image)
		}
	}

	if len(doc.Equipment) == 0 {
		issues = append(issues, Issue{Code: ErrEmptyList, Section: "equipments", Index: -1})
	} else {
		for i, e := range doc.Equipment {
			issues = checkLangString(issues, "equipments", i, "nama_alat", e.Name, langs)
			issues = checkLangString(issues, "equipments", i, "manufacturer", e.Manufacturer, langs)
			issues = checkLangString(issues, "equipments", i, "model", e.Model, langs)
			issues = checkRequired(issues, "equipments", i, "seri_measuring", e.SerialNumber)
		}
	}

	if len(doc.Conditions) == 0 {
		issues = append(issues, Issue{Code: ErrEmptyList, Section: "conditions", Index: -1})
	} else {
		for i, c := range doc.Conditions {
			issues = checkRequired(issues, "conditions", i, "jenis_kondisi", c.Kind)
			issues = checkLangString(issues, "conditions", i, "desc", c.Description, langs)
			issues = checkRequired(issues, "conditions", i, "tengah.value", c.Center.Value)
			issues = checkRequired(issues, "conditions", i, "rentang.value", c.Range.Value)
		}
	}

	issues = checkRequired(issues, "excel", -1, "", doc.Excel)
	issues = checkRequired(issues, "sheet_name", -1, "", doc.SheetName)

	if len(doc.Results) == 0 {
		issues = append(issues, Issue{Code: ErrEmptyList, Section: "results", Index: -1})
	} else {
		for i, r := range doc.Results {
			issues = checkLangString(issues, "results", i, "judul", r.Title, langs)
			if len(r.Columns) == 0 {
				issues = append(issues, Issue{Code: ErrEmptyList, Section: "results", Index: i, Field: "columns"})
				continue
			}
			for j, col := range r.Columns {
				label := ""
				if len(col.Kolom) > 0 {
					label = col.Kolom[0]
				}
				if strings.TrimSpace(label) == "" {
					issues = append(issues, Issue{Code: ErrRequired, Section: "results", Index: i, Field: columnField(j)})
				}
			}
		}
	}

	return issues
}

func validateStatements(doc *dcc.Document, langs []string) []Issue {
	var issues []Issue
	if len(doc.Statements) == 0 {
		return append(issues, Issue{Code: ErrEmptyList, Section: "statements", Index: -1})
	}
	for i, s := range doc.Statements {
		issues = checkLangString(issues, "statements", i, "values", s.Text, langs)
		issues = checkFormula(issues, "statements", i, s.HasFormula, s.Formula)
		issues = checkImage(issues, "statements", i, s.HasImage, s.Image)
	}
	return issues
}

func validateComment(doc *dcc.Document, langs []string) []Issue {
	var issues []Issue
	c := doc.Comment
	issues = checkRequired(issues, "comment", -1, "title", c.Title)
	issues = checkLangString(issues, "comment", -1, "desc", c.Description, langs)
	if c.HasFile && len(c.Files) == 0 {
		issues = append(issues, Issue{Code: ErrEmptyList, Section: "comment", Index: -1, Field: "files"})
	}
	return issues
}

func columnField(j int) string {
	return "columns[" + strconv.Itoa(j) + "].kolom"
}

func checkRequired(issues []Issue, section string, index int, field, value string) []Issue {
	if strings.TrimSpace(value) == "" {
		issues = append(issues, Issue{Code: ErrRequired, Section: section, Index: index, Field: field})
	}
	return issues
}

func checkEnum(issues []Issue, section, field, value string, valid bool) []Issue {
	return checkEnumAt(issues, section, -1, field, value, valid)
}

func checkEnumAt(issues []Issue, section string, index int, field, value string, valid bool) []Issue {
	if strings.TrimSpace(value) == "" {
		return append(issues, Issue{Code: ErrRequired, Section: section, Index: index, Field: field})
	}
	if !valid {
		return append(issues, Issue{Code: ErrBadEnum, Section: section, Index: index, Field: field})
	}
	return issues
}

func checkDate(issues []Issue, section, field, value string) []Issue {
	if strings.TrimSpace(value) == "" {
		return append(issues, Issue{Code: ErrRequired, Section: section, Index: -1, Field: field})
	}
	if _, err := time.Parse(dateLayout, strings.TrimSpace(value)); err != nil {
		return append(issues, Issue{Code: ErrBadDate, Section: section, Index: -1, Field: field})
	}
	return issues
}

// checkLangString applies the multilingual completeness rule: a field
// with no value at all yields one generic issue; otherwise one issue
// per missing used language.
func checkLangString(issues []Issue, section string, index int, field string, ls dcc.LangString, langs []string) []Issue {
	if !ls.HasAny() {
		return append(issues, Issue{Code: ErrNoTranslations, Section: section, Index: index, Field: field})
	}
	for _, lang := range ls.Missing(langs) {
		issues = append(issues, Issue{Code: ErrMissingLanguage, Section: section, Index: index, Field: field, Language: lang})
	}
	return issues
}

func checkPersonList(issues []Issue, section string, persons []dcc.Person) []Issue {
	if len(persons) == 0 {
		return append(issues, Issue{Code: ErrEmptyList, Section: section, Index: -1})
	}
	for i, p := range persons {
		issues = checkPerson(issues, section, i, p)
	}
	return issues
}

func checkPerson(issues []Issue, section string, index int, p dcc.Person) []Issue {
	issues = checkRequired(issues, section, index, "nama_resp", p.Name)
	issues = checkRequired(issues, section, index, "nip", p.EmployeeID)
	return issues
}

func checkFormula(issues []Issue, section string, index int, hasFormula bool, f *dcc.Formula) []Issue {
	if !hasFormula {
		return issues
	}
	if f == nil || strings.TrimSpace(f.Latex) == "" {
		issues = append(issues, Issue{Code: ErrRequired, Section: section, Index: index, Field: "formula.latex"})
	}
	return issues
}

func checkImage(issues []Issue, section string, index int, hasImage bool, img *dcc.Image) []Issue {
	if !hasImage {
		return issues
	}
	if img == nil || (!img.IsPending() && strings.TrimSpace(img.FileName) == "") {
		issues = append(issues, Issue{Code: ErrRequired, Section: section, Index: index, Field: "image.fileName"})
	}
	return issues
}
