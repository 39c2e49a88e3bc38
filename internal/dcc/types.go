package dcc

import "strings"

// Document is the working state of one certificate draft across all
// wizard steps. Sections map one-to-one to the backend's payload shape;
// JSON tags are the wire names the renderer expects.
type Document struct {
	Software string `json:"software" yaml:"software"`
	Version  string `json:"version" yaml:"version"`

	Administrative AdministrativeData  `json:"administrative_data" yaml:"administrative_data"`
	Timeline       MeasurementTimeline `json:"measurement_timeline" yaml:"measurement_timeline"`

	Objects            []ObjectDescription `json:"objects" yaml:"objects"`
	ResponsiblePersons ResponsiblePersons  `json:"responsible_persons" yaml:"responsible_persons"`
	Owner              Owner               `json:"owner" yaml:"owner"`

	Methods    []Method      `json:"methods" yaml:"methods"`
	Equipment  []Equipment   `json:"equipments" yaml:"equipments"`
	Conditions []Condition   `json:"conditions" yaml:"conditions"`
	Results    []ResultTable `json:"results" yaml:"results"`
	Statements []Statement   `json:"statements" yaml:"statements"`
	Comment    Comment       `json:"comment" yaml:"comment"`

	// Excel references the uploaded spreadsheet holding the numeric
	// result data; opaque to this tool, resolved by the backend.
	Excel     string `json:"excel" yaml:"excel"`
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
}

// AdministrativeData carries the certificate's issuing metadata.
type AdministrativeData struct {
	Issuer            IssuerRole       `json:"issuer" yaml:"issuer"`
	CountryCode       string           `json:"country_code" yaml:"country_code"`
	UsedLanguages     []LanguageRef    `json:"used_languages" yaml:"used_languages"`
	MandatoryLangs    []LanguageRef    `json:"mandatory_languages" yaml:"mandatory_languages"`
	CertificateNumber string           `json:"certificate_number" yaml:"certificate_number"`
	OrderNumber       string           `json:"order_number" yaml:"order_number"`
	Place             CalibrationPlace `json:"calibration_place" yaml:"calibration_place"`
}

// LanguageRef wraps a single language-code entry. The wizard keeps
// languages as a list of these; payload transformation collapses them to
// plain strings, dropping blanks.
type LanguageRef struct {
	Value string `json:"value" yaml:"value"`
}

// LanguagesInUse returns the trimmed, non-empty used-language codes in
// declaration order. Duplicates are retained.
func (a AdministrativeData) LanguagesInUse() []string {
	var langs []string
	for _, ref := range a.UsedLanguages {
		if code := strings.TrimSpace(ref.Value); code != "" {
			langs = append(langs, code)
		}
	}
	return langs
}

// MeasurementTimeline holds the three certificate dates as ISO 8601
// calendar dates (YYYY-MM-DD). No ordering between them is enforced.
type MeasurementTimeline struct {
	MeasurementStart string `json:"measurement_start" yaml:"measurement_start"`
	MeasurementEnd   string `json:"measurement_end" yaml:"measurement_end"`
	IssueDate        string `json:"issue_date" yaml:"issue_date"`
}

// ObjectDescription describes one calibrated object.
type ObjectDescription struct {
	Jenis          LangString     `json:"jenis" yaml:"jenis"`
	Brand          string         `json:"merek" yaml:"merek"`
	Type           string         `json:"tipe" yaml:"tipe"`
	IdentityIssuer IdentityIssuer `json:"item_issuer" yaml:"item_issuer"`
	SerialNumber   string         `json:"seri_item" yaml:"seri_item"`
	OtherID        LangString     `json:"id_lain" yaml:"id_lain"`
}

// ResponsiblePersons is the fixed set of signing roles on a certificate.
// Pelaksana and penyelia are staff lists; kepala and direktur are single
// records.
type ResponsiblePersons struct {
	Pelaksana []Person `json:"pelaksana" yaml:"pelaksana"`
	Penyelia  []Person `json:"penyelia" yaml:"penyelia"`
	Kepala    Person   `json:"kepala" yaml:"kepala"`
	Direktur  Person   `json:"direktur" yaml:"direktur"`
}

// Person is one responsible person entry. The signer flags are derived
// from the role label, never set directly; see DeriveSignerFlags.
type Person struct {
	Name       string `json:"nama_resp" yaml:"nama_resp"`
	EmployeeID string `json:"nip" yaml:"nip"`
	Role       string `json:"peran" yaml:"peran"`
	MainSigner bool   `json:"main_signer" yaml:"main_signer"`
	Signature  bool   `json:"signature" yaml:"signature"`
	Timestamp  bool   `json:"timestamp" yaml:"timestamp"`
}

// DeriveSignerFlags recomputes the signer flags from the role label.
// A role naming the director ("Direktur ...") marks the document's
// primary signer; every other role clears all three flags.
func (p *Person) DeriveSignerFlags() {
	isDirector := strings.HasPrefix(strings.TrimSpace(p.Role), "Direktur")
	p.MainSigner = isDirector
	p.Signature = isDirector
	p.Timestamp = isDirector
}

// DeriveSignerFlags applies Person.DeriveSignerFlags to every entry.
func (r *ResponsiblePersons) DeriveSignerFlags() {
	for i := range r.Pelaksana {
		r.Pelaksana[i].DeriveSignerFlags()
	}
	for i := range r.Penyelia {
		r.Penyelia[i].DeriveSignerFlags()
	}
	r.Kepala.DeriveSignerFlags()
	r.Direktur.DeriveSignerFlags()
}

// Owner is the postal address of the calibrated object's owner.
type Owner struct {
	Name       string `json:"nama_cust" yaml:"nama_cust"`
	Street     string `json:"jalan_cust" yaml:"jalan_cust"`
	Number     string `json:"no_jalan_cust" yaml:"no_jalan_cust"`
	City       string `json:"kota_cust" yaml:"kota_cust"`
	State      string `json:"state_cust" yaml:"state_cust"`
	PostalCode string `json:"pos_cust" yaml:"pos_cust"`
	Country    string `json:"negara_cust" yaml:"negara_cust"`
}

// Method is one calibration method entry.
type Method struct {
	Name        LangString `json:"method_name" yaml:"method_name"`
	Description LangString `json:"method_desc" yaml:"method_desc"`
	Norm        string     `json:"norm" yaml:"norm"`
	RefType     string     `json:"refType" yaml:"refType"`
	HasFormula  bool       `json:"has_formula" yaml:"has_formula"`
	Formula     *Formula   `json:"formula" yaml:"formula"`
	HasImage    bool       `json:"has_image" yaml:"has_image"`
	Image       *Image     `json:"image" yaml:"image"`
}

// Formula carries a formula in both authoring and rendering forms.
type Formula struct {
	Latex  string `json:"latex" yaml:"latex"`
	MathML string `json:"mathml" yaml:"mathml"`
}

// Image is an attached figure. Exactly one of the two attachment states
// holds: Pending points at a local file not yet read (FileName/Base64
// empty), or FileName/Base64 carry the stored payload (Pending nil).
type Image struct {
	Caption  string     `json:"caption" yaml:"caption"`
	MimeType string     `json:"mimeType" yaml:"mimeType"`
	FileName string     `json:"fileName" yaml:"fileName"`
	Base64   string     `json:"base64" yaml:"base64"`
	Pending  *LocalFile `json:"pending,omitempty" yaml:"pending,omitempty"`
}

// IsPending reports whether the image still references an unread local
// file.
func (img *Image) IsPending() bool {
	return img != nil && img.Pending != nil
}

// LocalFile references a file on the local machine that has not been
// read into the document yet.
type LocalFile struct {
	Name string `json:"name" yaml:"name"`
	Size int64  `json:"size" yaml:"size"`
	Path string `json:"path" yaml:"path"`
}

// Equipment is one measurement standard or instrument used.
type Equipment struct {
	Name         LangString `json:"nama_alat" yaml:"nama_alat"`
	Manufacturer LangString `json:"manufacturer" yaml:"manufacturer"`
	Model        LangString `json:"model" yaml:"model"`
	SerialNumber string     `json:"seri_measuring" yaml:"seri_measuring"`
	RefType      string     `json:"refType" yaml:"refType"`
}

// Condition is one environmental condition row: a center value and an
// allowed range, each with its own unit.
type Condition struct {
	Kind        string     `json:"jenis_kondisi" yaml:"jenis_kondisi"`
	Description LangString `json:"desc" yaml:"desc"`
	Center      ValueUnit  `json:"tengah" yaml:"tengah"`
	Range       ValueUnit  `json:"rentang" yaml:"rentang"`
}

// ValueUnit pairs a magnitude with its unit.
type ValueUnit struct {
	Value string `json:"value" yaml:"value"`
	Unit  Unit   `json:"unit" yaml:"unit"`
}

// Unit is a decomposed SI unit. Each part has a machine form and a
// separate human-readable rendering used by the PDF generator.
type Unit struct {
	Prefix      string `json:"prefix" yaml:"prefix"`
	PrefixPDF   string `json:"prefix_pdf" yaml:"prefix_pdf"`
	Symbol      string `json:"symbol" yaml:"symbol"`
	SymbolPDF   string `json:"symbol_pdf" yaml:"symbol_pdf"`
	Exponent    string `json:"eksponen" yaml:"eksponen"`
	ExponentPDF string `json:"eksponen_pdf" yaml:"eksponen_pdf"`
}

// ResultTable describes one table of measurement results. The numeric
// cells themselves come from the referenced spreadsheet; the table here
// only declares structure.
type ResultTable struct {
	Title       LangString  `json:"judul" yaml:"judul"`
	Columns     []Column    `json:"columns" yaml:"columns"`
	Uncertainty Uncertainty `json:"uncertainty" yaml:"uncertainty"`
}

// Column declares one result column. The editor keeps the label as a
// list of one; transformation collapses it to a plain string.
type Column struct {
	Kolom    []string `json:"kolom" yaml:"kolom"`
	RefType  string   `json:"refType" yaml:"refType"`
	RealList string   `json:"real_list" yaml:"real_list"`
}

// Uncertainty is the uncertainty block of a result table.
type Uncertainty struct {
	Factor       string `json:"factor" yaml:"factor"`
	Probability  string `json:"probability" yaml:"probability"`
	Distribution string `json:"distribution" yaml:"distribution"`
	RealList     string `json:"real_list" yaml:"real_list"`
}

// Statement is one statement entry: same shape as Method minus the norm.
type Statement struct {
	Text       LangString `json:"values" yaml:"values"`
	RefType    string     `json:"refType" yaml:"refType"`
	HasFormula bool       `json:"has_formula" yaml:"has_formula"`
	Formula    *Formula   `json:"formula" yaml:"formula"`
	HasImage   bool       `json:"has_image" yaml:"has_image"`
	Image      *Image     `json:"image" yaml:"image"`
}

// Comment is the closing free-text section with optional attachments.
type Comment struct {
	Title       string        `json:"title" yaml:"title"`
	Description LangString    `json:"desc" yaml:"desc"`
	HasFile     bool          `json:"has_file" yaml:"has_file"`
	Files       []CommentFile `json:"files" yaml:"files"`
}

// CommentFile is one base64-encoded comment attachment.
type CommentFile struct {
	FileName string `json:"fileName" yaml:"fileName"`
	MimeType string `json:"mimeType" yaml:"mimeType"`
	Base64   string `json:"base64" yaml:"base64"`
}
