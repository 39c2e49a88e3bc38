package wizard

import (
	"encoding/json"
	"fmt"

	"github.com/wicaksn/sertika/internal/dcc"
)

// Action is one edit to the draft document. Apply receives the current
// document (nil before Init) and returns the next document. Apply may
// install the action's own fields by reference; Store.Dispatch applies
// a decoded copy of the action, so callers keep ownership of whatever
// they built the action from.
type Action interface {
	Kind() string
	Apply(doc *dcc.Document) (*dcc.Document, error)
}

// Action kinds, as stored in the draft log.
const (
	KindInit                  = "init"
	KindSetAdministrative     = "set_administrative"
	KindSetTimeline           = "set_timeline"
	KindSetObjects            = "set_objects"
	KindSetResponsiblePersons = "set_responsible_persons"
	KindSetOwner              = "set_owner"
	KindSetMethods            = "set_methods"
	KindSetEquipment          = "set_equipments"
	KindSetConditions         = "set_conditions"
	KindSetResults            = "set_results"
	KindSetStatements         = "set_statements"
	KindSetComment            = "set_comment"
	KindSetSpreadsheet        = "set_spreadsheet"
)

// Init replaces the document with a named template. Dispatching Init
// over an existing document discards its edits; callers that care warn
// first (Store.Dirty).
type Init struct {
	Template string `json:"template"`
}

func (a Init) Kind() string { return KindInit }

func (a Init) Apply(_ *dcc.Document) (*dcc.Document, error) {
	doc, err := dcc.Template(a.Template)
	if err != nil {
		return nil, &StateError{Code: ErrCodeTemplate, Message: err.Error(), ActionKind: KindInit}
	}
	return doc, nil
}

// AdministrativePatch is a partial update to the administrative section.
// Nil fields are preserved; set fields replace the old value wholesale.
type AdministrativePatch struct {
	Issuer            *dcc.IssuerRole       `json:"issuer,omitempty"`
	CountryCode       *string               `json:"country_code,omitempty"`
	UsedLanguages     *[]dcc.LanguageRef    `json:"used_languages,omitempty"`
	MandatoryLangs    *[]dcc.LanguageRef    `json:"mandatory_languages,omitempty"`
	CertificateNumber *string               `json:"certificate_number,omitempty"`
	OrderNumber       *string               `json:"order_number,omitempty"`
	Place             *dcc.CalibrationPlace `json:"calibration_place,omitempty"`
}

// SetAdministrative shallow-merges a patch into administrative_data.
type SetAdministrative struct {
	Patch AdministrativePatch `json:"patch"`
}

func (a SetAdministrative) Kind() string { return KindSetAdministrative }

func (a SetAdministrative) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetAdministrative)
	}
	ad := &doc.Administrative
	if a.Patch.Issuer != nil {
		ad.Issuer = *a.Patch.Issuer
	}
	if a.Patch.CountryCode != nil {
		ad.CountryCode = *a.Patch.CountryCode
	}
	if a.Patch.UsedLanguages != nil {
		ad.UsedLanguages = *a.Patch.UsedLanguages
	}
	if a.Patch.MandatoryLangs != nil {
		ad.MandatoryLangs = *a.Patch.MandatoryLangs
	}
	if a.Patch.CertificateNumber != nil {
		ad.CertificateNumber = *a.Patch.CertificateNumber
	}
	if a.Patch.OrderNumber != nil {
		ad.OrderNumber = *a.Patch.OrderNumber
	}
	if a.Patch.Place != nil {
		ad.Place = *a.Patch.Place
	}
	return doc, nil
}

// TimelinePatch is a partial update to the measurement timeline.
type TimelinePatch struct {
	MeasurementStart *string `json:"measurement_start,omitempty"`
	MeasurementEnd   *string `json:"measurement_end,omitempty"`
	IssueDate        *string `json:"issue_date,omitempty"`
}

// SetTimeline shallow-merges a patch into measurement_timeline.
type SetTimeline struct {
	Patch TimelinePatch `json:"patch"`
}

func (a SetTimeline) Kind() string { return KindSetTimeline }

func (a SetTimeline) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetTimeline)
	}
	tl := &doc.Timeline
	if a.Patch.MeasurementStart != nil {
		tl.MeasurementStart = *a.Patch.MeasurementStart
	}
	if a.Patch.MeasurementEnd != nil {
		tl.MeasurementEnd = *a.Patch.MeasurementEnd
	}
	if a.Patch.IssueDate != nil {
		tl.IssueDate = *a.Patch.IssueDate
	}
	return doc, nil
}

// SetObjects wholesale-replaces the calibrated-object list.
type SetObjects struct {
	Objects []dcc.ObjectDescription `json:"objects"`
}

func (a SetObjects) Kind() string { return KindSetObjects }

func (a SetObjects) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetObjects)
	}
	doc.Objects = a.Objects
	return doc, nil
}

// PersonsPatch is a partial update to responsible_persons. List roles
// replace wholesale when present; single roles replace the record.
type PersonsPatch struct {
	Pelaksana *[]dcc.Person `json:"pelaksana,omitempty"`
	Penyelia  *[]dcc.Person `json:"penyelia,omitempty"`
	Kepala    *dcc.Person   `json:"kepala,omitempty"`
	Direktur  *dcc.Person   `json:"direktur,omitempty"`
}

// SetResponsiblePersons shallow-merges a patch into responsible_persons
// and rederives the signer flags from each role label.
type SetResponsiblePersons struct {
	Patch PersonsPatch `json:"patch"`
}

func (a SetResponsiblePersons) Kind() string { return KindSetResponsiblePersons }

func (a SetResponsiblePersons) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetResponsiblePersons)
	}
	rp := &doc.ResponsiblePersons
	if a.Patch.Pelaksana != nil {
		rp.Pelaksana = *a.Patch.Pelaksana
	}
	if a.Patch.Penyelia != nil {
		rp.Penyelia = *a.Patch.Penyelia
	}
	if a.Patch.Kepala != nil {
		rp.Kepala = *a.Patch.Kepala
	}
	if a.Patch.Direktur != nil {
		rp.Direktur = *a.Patch.Direktur
	}
	rp.DeriveSignerFlags()
	return doc, nil
}

// SetOwner replaces the owner address.
type SetOwner struct {
	Owner dcc.Owner `json:"owner"`
}

func (a SetOwner) Kind() string { return KindSetOwner }

func (a SetOwner) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetOwner)
	}
	doc.Owner = a.Owner
	return doc, nil
}

// SetMethods wholesale-replaces the method list.
type SetMethods struct {
	Methods []dcc.Method `json:"methods"`
}

func (a SetMethods) Kind() string { return KindSetMethods }

func (a SetMethods) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetMethods)
	}
	doc.Methods = a.Methods
	return doc, nil
}

// SetEquipment wholesale-replaces the equipment list.
type SetEquipment struct {
	Equipment []dcc.Equipment `json:"equipments"`
}

func (a SetEquipment) Kind() string { return KindSetEquipment }

func (a SetEquipment) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetEquipment)
	}
	doc.Equipment = a.Equipment
	return doc, nil
}

// SetConditions wholesale-replaces the environmental-condition list.
type SetConditions struct {
	Conditions []dcc.Condition `json:"conditions"`
}

func (a SetConditions) Kind() string { return KindSetConditions }

func (a SetConditions) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetConditions)
	}
	doc.Conditions = a.Conditions
	return doc, nil
}

// SetResults wholesale-replaces the result-table list.
type SetResults struct {
	Results []dcc.ResultTable `json:"results"`
}

func (a SetResults) Kind() string { return KindSetResults }

func (a SetResults) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetResults)
	}
	doc.Results = a.Results
	return doc, nil
}

// SetStatements wholesale-replaces the statement list.
type SetStatements struct {
	Statements []dcc.Statement `json:"statements"`
}

func (a SetStatements) Kind() string { return KindSetStatements }

func (a SetStatements) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetStatements)
	}
	doc.Statements = a.Statements
	return doc, nil
}

// SetComment replaces the comment section.
type SetComment struct {
	Comment dcc.Comment `json:"comment"`
}

func (a SetComment) Kind() string { return KindSetComment }

func (a SetComment) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetComment)
	}
	doc.Comment = a.Comment
	return doc, nil
}

// SetSpreadsheet replaces the result-data spreadsheet reference.
type SetSpreadsheet struct {
	Excel     string `json:"excel"`
	SheetName string `json:"sheet_name"`
}

func (a SetSpreadsheet) Kind() string { return KindSetSpreadsheet }

func (a SetSpreadsheet) Apply(doc *dcc.Document) (*dcc.Document, error) {
	if doc == nil {
		return nil, noDocument(KindSetSpreadsheet)
	}
	doc.Excel = a.Excel
	doc.SheetName = a.SheetName
	return doc, nil
}

func noDocument(kind string) *StateError {
	return &StateError{
		Code:       ErrCodeNoDocument,
		Message:    "no document: dispatch init first",
		ActionKind: kind,
	}
}

// EncodeAction serializes an action to its log representation.
func EncodeAction(a Action) (kind string, payload []byte, err error) {
	payload, err = json.Marshal(a)
	if err != nil {
		return "", nil, fmt.Errorf("encode action %s: %w", a.Kind(), err)
	}
	return a.Kind(), payload, nil
}

// DecodeAction rebuilds an action from its log representation.
func DecodeAction(kind string, payload []byte) (Action, error) {
	var a Action
	switch kind {
	case KindInit:
		a = &Init{}
	case KindSetAdministrative:
		a = &SetAdministrative{}
	case KindSetTimeline:
		a = &SetTimeline{}
	case KindSetObjects:
		a = &SetObjects{}
	case KindSetResponsiblePersons:
		a = &SetResponsiblePersons{}
	case KindSetOwner:
		a = &SetOwner{}
	case KindSetMethods:
		a = &SetMethods{}
	case KindSetEquipment:
		a = &SetEquipment{}
	case KindSetConditions:
		a = &SetConditions{}
	case KindSetResults:
		a = &SetResults{}
	case KindSetStatements:
		a = &SetStatements{}
	case KindSetComment:
		a = &SetComment{}
	case KindSetSpreadsheet:
		a = &SetSpreadsheet{}
	default:
		return nil, &StateError{Code: ErrCodeUnknownAction, Message: fmt.Sprintf("unknown action kind %q", kind), ActionKind: kind}
	}
	if err := json.Unmarshal(payload, a); err != nil {
		return nil, &StateError{Code: ErrCodeBadPayload, Message: err.Error(), ActionKind: kind}
	}
	return a, nil
}
