// Package schema vets documents against the embedded CUE definition.
//
// This is a shape check, complementary to internal/validate: it catches
// structurally malformed documents (wrong types, unknown enum values)
// when loading templates or user-supplied files, while step validators
// judge completeness.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/wicaksn/sertika/internal/dcc"
)

//go:embed document.cue
var documentCUE string

// One context for both schema and encoded documents: CUE values can
// only unify within the same context.
var (
	mu         sync.Mutex
	cuectx     *cue.Context
	schemaVal  cue.Value
	compileErr error
)

func documentSchema() (cue.Value, error) {
	if cuectx != nil || compileErr != nil {
		return schemaVal, compileErr
	}
	cuectx = cuecontext.New()
	val := cuectx.CompileString(documentCUE)
	if err := val.Err(); err != nil {
		compileErr = fmt.Errorf("compile document schema: %w", err)
		return schemaVal, compileErr
	}
	schemaVal = val.LookupPath(cue.ParsePath("#Document"))
	if err := schemaVal.Err(); err != nil {
		compileErr = fmt.Errorf("lookup #Document: %w", err)
	}
	return schemaVal, compileErr
}

// Vet checks a document's shape against the schema. Returns one error
// per violation, empty when the document conforms.
func Vet(doc *dcc.Document) []error {
	mu.Lock()
	defer mu.Unlock()

	sv, err := documentSchema()
	if err != nil {
		return []error{err}
	}

	docVal := cuectx.Encode(doc)
	if err := docVal.Err(); err != nil {
		return []error{fmt.Errorf("encode document: %w", err)}
	}

	unified := sv.Unify(docVal)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		var errs []error
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, e)
		}
		return errs
	}
	return nil
}
