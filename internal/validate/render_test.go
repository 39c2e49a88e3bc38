package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	required := Issue{Code: ErrRequired, Section: "owner", Index: -1, Field: "nama_cust"}
	assert.Equal(t, "owner.nama_cust is required", Render(required, "en"))
	assert.Equal(t, "owner.nama_cust wajib diisi", Render(required, "id"))
	// Unknown languages fall back to English.
	assert.Equal(t, "owner.nama_cust is required", Render(required, "fr"))

	missing := Issue{Code: ErrMissingLanguage, Section: "objects", Index: 0, Field: "jenis", Language: "en"}
	assert.Equal(t, `objects[0].jenis is missing a value for language "en"`, Render(missing, "en"))
	assert.Equal(t, `objects[0].jenis belum diisi untuk bahasa "en"`, Render(missing, "id"))
}

func TestRenderAll_PreservesOrder(t *testing.T) {
	issues := []Issue{
		{Code: ErrRequired, Section: "excel", Index: -1},
		{Code: ErrEmptyList, Section: "methods", Index: -1},
	}
	msgs := RenderAll(issues, "en")
	assert.Equal(t, []string{
		"excel is required",
		"methods requires at least one entry",
	}, msgs)
}

func TestIssue_Path(t *testing.T) {
	assert.Equal(t, "objects[2].jenis", Issue{Section: "objects", Index: 2, Field: "jenis"}.Path())
	assert.Equal(t, "owner.nama_cust", Issue{Section: "owner", Index: -1, Field: "nama_cust"}.Path())
	assert.Equal(t, "excel", Issue{Section: "excel", Index: -1}.Path())
}
