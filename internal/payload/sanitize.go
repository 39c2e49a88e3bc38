package payload

import "github.com/wicaksn/sertika/internal/dcc"

// sanitize is the last reshaping pass. It nulls out optional blocks
// whose enabling flag is off, even when stale data sits underneath:
// formulas and images on methods and statements, and comment files.
// Comment files become an empty list, not null.
func sanitize(p *Payload) {
	for i := range p.Methods {
		if !p.Methods[i].HasFormula {
			p.Methods[i].Formula = nil
		}
		if !p.Methods[i].HasImage {
			p.Methods[i].Image = nil
		}
	}
	for i := range p.Statements {
		if !p.Statements[i].HasFormula {
			p.Statements[i].Formula = nil
		}
		if !p.Statements[i].HasImage {
			p.Statements[i].Image = nil
		}
	}
	if !p.Comment.HasFile || p.Comment.Files == nil {
		p.Comment.Files = []dcc.CommentFile{}
	}
}
