package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/sertika/internal/dcc"
	"github.com/wicaksn/sertika/internal/testutil"
)

func TestVet_Templates(t *testing.T) {
	for _, name := range dcc.TemplateNames() {
		t.Run(name, func(t *testing.T) {
			doc, err := dcc.Template(name)
			require.NoError(t, err)
			assert.Empty(t, Vet(doc))
		})
	}
}

func TestVet_CompleteDocument(t *testing.T) {
	assert.Empty(t, Vet(testutil.CompleteDocument()))
}

func TestVet_EmptyDocumentIsValidShape(t *testing.T) {
	// Shape checking admits an untouched draft; completeness is the
	// step validators' job.
	assert.Empty(t, Vet(&dcc.Document{}))
}

func TestVet_BadEnum(t *testing.T) {
	doc := testutil.CompleteDocument()
	doc.Administrative.Issuer = "somebody"
	errs := Vet(doc)
	require.NotEmpty(t, errs)
}

func TestVet_PendingImageAllowed(t *testing.T) {
	doc := testutil.CompleteDocument()
	doc.Methods[0].HasImage = true
	doc.Methods[0].Image = &dcc.Image{
		MimeType: "image/png",
		Pending:  &dcc.LocalFile{Name: "x.png", Size: 10, Path: "/tmp/x.png"},
	}
	assert.Empty(t, Vet(doc))
}
