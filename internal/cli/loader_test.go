package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/sertika/internal/wizard"
)

func writeSection(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "section.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSectionFile_AdministrativePatch(t *testing.T) {
	path := writeSection(t, `
certificate_number: SNSU-2026-0042
used_languages:
  - value: id
  - value: en
`)
	action, err := LoadSectionFile("administrative", path)
	require.NoError(t, err)

	set, ok := action.(wizard.SetAdministrative)
	require.True(t, ok)
	require.NotNil(t, set.Patch.CertificateNumber)
	assert.Equal(t, "SNSU-2026-0042", *set.Patch.CertificateNumber)
	require.NotNil(t, set.Patch.UsedLanguages)
	assert.Len(t, *set.Patch.UsedLanguages, 2)
	// Omitted fields stay nil so the merge preserves them.
	assert.Nil(t, set.Patch.Issuer)
	assert.Nil(t, set.Patch.OrderNumber)
}

func TestLoadSectionFile_TimelinePatch(t *testing.T) {
	path := writeSection(t, `issue_date: "2026-08-10"`)
	action, err := LoadSectionFile("timeline", path)
	require.NoError(t, err)

	set, ok := action.(wizard.SetTimeline)
	require.True(t, ok)
	require.NotNil(t, set.Patch.IssueDate)
	assert.Equal(t, "2026-08-10", *set.Patch.IssueDate)
	assert.Nil(t, set.Patch.MeasurementStart)
}

func TestLoadSectionFile_Objects(t *testing.T) {
	path := writeSection(t, `
- jenis:
    id: Termometer
    en: Thermometer
  merek: Fluke
  tipe: "1523"
  item_issuer: manufacturer
  seri_item: SN-1
  id_lain: {}
`)
	action, err := LoadSectionFile("objects", path)
	require.NoError(t, err)

	set, ok := action.(wizard.SetObjects)
	require.True(t, ok)
	require.Len(t, set.Objects, 1)
	assert.Equal(t, "Thermometer", set.Objects[0].Jenis.Get("en"))
	assert.Equal(t, "Fluke", set.Objects[0].Brand)
}

func TestLoadSectionFile_Persons(t *testing.T) {
	path := writeSection(t, `
direktur:
  nama_resp: Agus
  nip: "196501011990031001"
  peran: Direktur SNSU
`)
	action, err := LoadSectionFile("persons", path)
	require.NoError(t, err)

	set, ok := action.(wizard.SetResponsiblePersons)
	require.True(t, ok)
	require.NotNil(t, set.Patch.Direktur)
	assert.Equal(t, "Agus", set.Patch.Direktur.Name)
	assert.Nil(t, set.Patch.Pelaksana)
}

func TestLoadSectionFile_Spreadsheet(t *testing.T) {
	path := writeSection(t, `
excel: uploads/results.xlsx
sheet_name: DCV
`)
	action, err := LoadSectionFile("spreadsheet", path)
	require.NoError(t, err)

	set, ok := action.(wizard.SetSpreadsheet)
	require.True(t, ok)
	assert.Equal(t, "uploads/results.xlsx", set.Excel)
	assert.Equal(t, "DCV", set.SheetName)
}

func TestLoadSectionFile_UnknownSection(t *testing.T) {
	path := writeSection(t, `x: 1`)
	_, err := LoadSectionFile("footer", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestLoadSectionFile_MissingFile(t *testing.T) {
	_, err := LoadSectionFile("owner", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadSectionFile_MalformedYAML(t *testing.T) {
	path := writeSection(t, "{broken: [")
	_, err := LoadSectionFile("owner", path)
	require.Error(t, err)
}
