package payload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wicaksn/sertika/internal/dcc"
)

// Preview derives the JSON-only preview payload. Pending image files
// are represented by filename placeholders; no binary content is
// inlined.
func Preview(doc *dcc.Document) *Payload {
	p := basePayload(doc)
	sanitize(p)
	return p
}

// Submit derives the final submission payload: the same sanitized JSON
// body plus one multipart file part per method/statement image that
// still references a local file.
func Submit(doc *dcc.Document) *Submission {
	p := basePayload(doc)
	sanitize(p)

	var files []FilePart
	for i, m := range doc.Methods {
		if part, ok := pendingPart(fmt.Sprintf("methods[%d].image", i), m.HasImage, m.Image); ok {
			files = append(files, part)
		}
	}
	for i, s := range doc.Statements {
		if part, ok := pendingPart(fmt.Sprintf("statements[%d].image", i), s.HasImage, s.Image); ok {
			files = append(files, part)
		}
	}
	return &Submission{Payload: p, Files: files}
}

func pendingPart(field string, hasImage bool, img *dcc.Image) (FilePart, bool) {
	if !hasImage || !img.IsPending() {
		return FilePart{}, false
	}
	return FilePart{
		Field:    field,
		FileName: img.Pending.Name,
		MimeType: img.MimeType,
		Path:     img.Pending.Path,
	}, true
}

func basePayload(doc *dcc.Document) *Payload {
	p := &Payload{
		Software: doc.Software,
		Version:  doc.Version,
		Administrative: Administrative{
			Issuer:            string(doc.Administrative.Issuer),
			CountryCode:       doc.Administrative.CountryCode,
			UsedLanguages:     collapseLanguages(doc.Administrative.UsedLanguages),
			MandatoryLangs:    collapseLanguages(doc.Administrative.MandatoryLangs),
			CertificateNumber: doc.Administrative.CertificateNumber,
			OrderNumber:       doc.Administrative.OrderNumber,
			Place:             string(doc.Administrative.Place),
		},
		Timeline:           doc.Timeline,
		Objects:            doc.Objects,
		ResponsiblePersons: doc.ResponsiblePersons,
		Owner:              doc.Owner,
		Equipment:          doc.Equipment,
		Conditions:         doc.Conditions,
		Excel:              doc.Excel,
		SheetName:          doc.SheetName,
	}

	p.Methods = make([]Method, len(doc.Methods))
	for i, m := range doc.Methods {
		p.Methods[i] = Method{
			Name:        m.Name,
			Description: m.Description,
			Norm:        m.Norm,
			RefType:     m.RefType,
			HasFormula:  m.HasFormula,
			Formula:     m.Formula,
			HasImage:    m.HasImage,
			Image:       wireImage(m.Image),
		}
	}

	p.Results = make([]Result, len(doc.Results))
	for i, r := range doc.Results {
		cols := make([]Column, len(r.Columns))
		for j, c := range r.Columns {
			cols[j] = Column{
				Kolom:    firstOrEmpty(c.Kolom),
				RefType:  c.RefType,
				RealList: countOrOne(c.RealList),
			}
		}
		p.Results[i] = Result{
			Title:       r.Title,
			Columns:     cols,
			Uncertainty: Uncertainty{
				Factor:       defaultString(r.Uncertainty.Factor, "0"),
				Probability:  defaultString(r.Uncertainty.Probability, "0"),
				Distribution: r.Uncertainty.Distribution,
				RealList:     countOrOne(r.Uncertainty.RealList),
			},
		}
	}

	p.Statements = make([]Statement, len(doc.Statements))
	for i, s := range doc.Statements {
		p.Statements[i] = Statement{
			Text:       s.Text,
			RefType:    s.RefType,
			HasFormula: s.HasFormula,
			Formula:    s.Formula,
			HasImage:   s.HasImage,
			Image:      wireImage(s.Image),
		}
	}

	p.Comment = Comment{
		Title:       doc.Comment.Title,
		Description: doc.Comment.Description,
		HasFile:     doc.Comment.HasFile,
		Files:       doc.Comment.Files,
	}

	return p
}

// wireImage flattens an image to stored form. A pending local file
// becomes a filename placeholder in both fileName and base64; the bytes
// are never inlined here.
func wireImage(img *dcc.Image) *Image {
	if img == nil {
		return nil
	}
	if img.IsPending() {
		return &Image{
			Caption:  img.Caption,
			MimeType: img.MimeType,
			FileName: img.Pending.Name,
			Base64:   img.Pending.Name,
		}
	}
	return &Image{
		Caption:  img.Caption,
		MimeType: img.MimeType,
		FileName: img.FileName,
		Base64:   img.Base64,
	}
}

// collapseLanguages turns the editor's {value} entries into plain
// codes, dropping blanks. Order and duplicates are preserved.
func collapseLanguages(refs []dcc.LanguageRef) []string {
	out := []string{}
	for _, ref := range refs {
		if code := strings.TrimSpace(ref.Value); code != "" {
			out = append(out, code)
		}
	}
	return out
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// countOrOne coerces a count field to a positive integer, defaulting to
// 1 on parse failure.
func countOrOne(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
