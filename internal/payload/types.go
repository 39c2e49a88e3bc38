package payload

import "github.com/wicaksn/sertika/internal/dcc"

// Payload is the JSON body shared by preview and submission requests.
// Sections that reshape keep their own payload type; sections that ship
// unchanged reuse the document types directly.
type Payload struct {
	Software string `json:"software"`
	Version  string `json:"version"`

	Administrative Administrative          `json:"administrative_data"`
	Timeline       dcc.MeasurementTimeline `json:"measurement_timeline"`

	Objects            []dcc.ObjectDescription `json:"objects"`
	ResponsiblePersons dcc.ResponsiblePersons  `json:"responsible_persons"`
	Owner              dcc.Owner               `json:"owner"`

	Methods    []Method        `json:"methods"`
	Equipment  []dcc.Equipment `json:"equipments"`
	Conditions []dcc.Condition `json:"conditions"`
	Results    []Result        `json:"results"`
	Statements []Statement     `json:"statements"`
	Comment    Comment         `json:"comment"`

	Excel     string `json:"excel"`
	SheetName string `json:"sheet_name"`
}

// Administrative is the administrative section with language lists
// collapsed to plain code slices.
type Administrative struct {
	Issuer            string   `json:"issuer"`
	CountryCode       string   `json:"country_code"`
	UsedLanguages     []string `json:"used_languages"`
	MandatoryLangs    []string `json:"mandatory_languages"`
	CertificateNumber string   `json:"certificate_number"`
	OrderNumber       string   `json:"order_number"`
	Place             string   `json:"calibration_place"`
}

// Method is a method entry with its image flattened to stored form.
type Method struct {
	Name        dcc.LangString `json:"method_name"`
	Description dcc.LangString `json:"method_desc"`
	Norm        string         `json:"norm"`
	RefType     string         `json:"refType"`
	HasFormula  bool           `json:"has_formula"`
	Formula     *dcc.Formula   `json:"formula"`
	HasImage    bool           `json:"has_image"`
	Image       *Image         `json:"image"`
}

// Statement mirrors Method without the norm reference.
type Statement struct {
	Text       dcc.LangString `json:"values"`
	RefType    string         `json:"refType"`
	HasFormula bool           `json:"has_formula"`
	Formula    *dcc.Formula   `json:"formula"`
	HasImage   bool           `json:"has_image"`
	Image      *Image         `json:"image"`
}

// Image is the wire form of an attached figure. For an image whose file
// has not been read, Base64 holds the filename as a placeholder; the
// bytes travel as a multipart part instead.
type Image struct {
	Caption  string `json:"caption"`
	MimeType string `json:"mimeType"`
	FileName string `json:"fileName"`
	Base64   string `json:"base64"`
}

// Result is a result table with collapsed columns and a defaulted
// uncertainty block.
type Result struct {
	Title       dcc.LangString `json:"judul"`
	Columns     []Column       `json:"columns"`
	Uncertainty Uncertainty    `json:"uncertainty"`
}

// Column is the wire form of a result column: label collapsed to a
// single string, sub-column count as a number.
type Column struct {
	Kolom    string `json:"kolom"`
	RefType  string `json:"refType"`
	RealList int    `json:"real_list"`
}

// Uncertainty is the wire form of the uncertainty block.
type Uncertainty struct {
	Factor       string `json:"factor"`
	Probability  string `json:"probability"`
	Distribution string `json:"distribution"`
	RealList     int    `json:"real_list"`
}

// Comment is the closing comment; Files is always a list (empty when
// attachments are disabled), never null.
type Comment struct {
	Title       string            `json:"title"`
	Description dcc.LangString    `json:"desc"`
	HasFile     bool              `json:"has_file"`
	Files       []dcc.CommentFile `json:"files"`
}

// FilePart is one binary attachment accompanying a submission. Field is
// the multipart field prefix, e.g. "methods[0].image"; the client sends
// Field+".gambar" (bytes), Field+".mimeType", and Field+".fileName".
type FilePart struct {
	Field    string
	FileName string
	MimeType string
	// Path locates the local file whose bytes are streamed.
	Path string
}

// Submission pairs the sanitized JSON body with its out-of-band file
// parts.
type Submission struct {
	Payload *Payload
	Files   []FilePart
}
