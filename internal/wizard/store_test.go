package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/sertika/internal/dcc"
)

func strPtr(s string) *string { return &s }

func TestStore_DispatchBeforeInit(t *testing.T) {
	s := NewStore()
	err := s.Dispatch(SetTimeline{Patch: TimelinePatch{IssueDate: strPtr("2026-08-10")}})
	require.Error(t, err)
	assert.True(t, IsNoDocument(err))

	doc, err := s.Document()
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.Equal(t, int64(0), s.Seq())
	assert.False(t, s.Dirty())
}

func TestStore_InitFromTemplate(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))

	doc, err := s.Document()
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "sertika", doc.Software)
	assert.Equal(t, int64(1), s.Seq())
	assert.True(t, s.Dirty())
}

func TestStore_InitUnknownTemplate(t *testing.T) {
	s := NewStore()
	err := s.Dispatch(Init{Template: "nope"})
	require.Error(t, err)

	var se *StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeTemplate, se.Code)
	assert.Equal(t, int64(0), s.Seq())
}

func TestStore_PatchMergesPartially(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))

	// Only certificate_number is set; the template's other fields stay.
	require.NoError(t, s.Dispatch(SetAdministrative{Patch: AdministrativePatch{
		CertificateNumber: strPtr("SNSU-2026-0001"),
	}}))

	doc, err := s.Document()
	require.NoError(t, err)
	assert.Equal(t, "SNSU-2026-0001", doc.Administrative.CertificateNumber)
	assert.Equal(t, dcc.IssuerLaboratory, doc.Administrative.Issuer)
	assert.Equal(t, "ID", doc.Administrative.CountryCode)
}

func TestStore_PatchReplacesLanguageListWholesale(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))

	langs := []dcc.LanguageRef{{Value: "de"}}
	require.NoError(t, s.Dispatch(SetAdministrative{Patch: AdministrativePatch{
		UsedLanguages: &langs,
	}}))

	doc, err := s.Document()
	require.NoError(t, err)
	assert.Equal(t, []string{"de"}, doc.Administrative.LanguagesInUse())
}

func TestStore_ListSectionsReplaceWholesale(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))

	first := []dcc.Method{
		{Name: dcc.LangString{"en": "A"}},
		{Name: dcc.LangString{"en": "B"}},
	}
	require.NoError(t, s.Dispatch(SetMethods{Methods: first}))

	second := []dcc.Method{{Name: dcc.LangString{"en": "C"}}}
	require.NoError(t, s.Dispatch(SetMethods{Methods: second}))

	doc, err := s.Document()
	require.NoError(t, err)
	require.Len(t, doc.Methods, 1)
	assert.Equal(t, "C", doc.Methods[0].Name.Get("en"))
}

func TestStore_SetResponsiblePersonsDerivesFlags(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))

	direktur := dcc.Person{Name: "Agus", EmployeeID: "1", Role: "Direktur SNSU"}
	kepala := dcc.Person{Name: "Rina", EmployeeID: "2", Role: "Kepala Laboratorium", MainSigner: true}
	require.NoError(t, s.Dispatch(SetResponsiblePersons{Patch: PersonsPatch{
		Direktur: &direktur,
		Kepala:   &kepala,
	}}))

	doc, err := s.Document()
	require.NoError(t, err)
	assert.True(t, doc.ResponsiblePersons.Direktur.MainSigner)
	assert.True(t, doc.ResponsiblePersons.Direktur.Signature)
	assert.True(t, doc.ResponsiblePersons.Direktur.Timestamp)
	// The stale flag on kepala is cleared by rederivation.
	assert.False(t, doc.ResponsiblePersons.Kepala.MainSigner)
}

func TestStore_FailedActionLeavesDraftUntouched(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))
	require.NoError(t, s.Dispatch(SetOwner{Owner: dcc.Owner{Name: "PT X"}}))
	before, err := s.Document()
	require.NoError(t, err)

	err = s.Dispatch(Init{Template: "missing"})
	require.Error(t, err)

	after, derr := s.Document()
	require.NoError(t, derr)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(2), s.Seq())
	assert.Len(t, s.Log(), 2)
}

func TestStore_DispatchDoesNotAliasActionSlices(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))

	methods := []dcc.Method{{Name: dcc.LangString{"en": "DC voltage"}}}
	require.NoError(t, s.Dispatch(SetMethods{Methods: methods}))

	// Mutating the slice the action was built from must not leak into
	// the draft.
	methods[0].Name["en"] = "mutated"
	methods[0].Norm = "mutated"

	doc, err := s.Document()
	require.NoError(t, err)
	require.Len(t, doc.Methods, 1)
	assert.Equal(t, "DC voltage", doc.Methods[0].Name.Get("en"))
	assert.Empty(t, doc.Methods[0].Norm)
}

func TestStore_DocumentReturnsClone(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))

	doc, err := s.Document()
	require.NoError(t, err)
	doc.Software = "mutated"

	again, err := s.Document()
	require.NoError(t, err)
	assert.Equal(t, "sertika", again.Software)
}

func TestStore_DirtyAndMarkClean(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Dirty())

	require.NoError(t, s.Dispatch(Init{Template: "blank"}))
	assert.True(t, s.Dirty())

	s.MarkClean()
	assert.False(t, s.Dirty())

	require.NoError(t, s.Dispatch(SetOwner{Owner: dcc.Owner{Name: "PT X"}}))
	assert.True(t, s.Dirty())
}

func TestStore_LogRecordsAppliedActions(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Dispatch(Init{Template: "blank"}))
	require.NoError(t, s.Dispatch(SetSpreadsheet{Excel: "a.xlsx", SheetName: "S1"}))

	log := s.Log()
	require.Len(t, log, 2)
	assert.Equal(t, int64(1), log[0].Seq)
	assert.Equal(t, KindInit, log[0].Kind)
	assert.Equal(t, int64(2), log[1].Seq)
	assert.Equal(t, KindSetSpreadsheet, log[1].Kind)
}

func TestEncodeDecodeAction_Roundtrip(t *testing.T) {
	actions := []Action{
		Init{Template: "blank"},
		SetAdministrative{Patch: AdministrativePatch{OrderNumber: strPtr("ORD-7")}},
		SetTimeline{Patch: TimelinePatch{IssueDate: strPtr("2026-08-10")}},
		SetObjects{Objects: []dcc.ObjectDescription{{Brand: "Fluke"}}},
		SetResponsiblePersons{Patch: PersonsPatch{Kepala: &dcc.Person{Name: "Rina"}}},
		SetOwner{Owner: dcc.Owner{Name: "PT X"}},
		SetMethods{Methods: []dcc.Method{{Norm: "cg-15"}}},
		SetEquipment{Equipment: []dcc.Equipment{{SerialNumber: "SN-1"}}},
		SetConditions{Conditions: []dcc.Condition{{Kind: "Suhu"}}},
		SetResults{Results: []dcc.ResultTable{{Columns: []dcc.Column{{Kolom: []string{"Range"}}}}}},
		SetStatements{Statements: []dcc.Statement{{RefType: "basic_conformity"}}},
		SetComment{Comment: dcc.Comment{Title: "Catatan"}},
		SetSpreadsheet{Excel: "a.xlsx", SheetName: "S1"},
	}

	for _, action := range actions {
		t.Run(action.Kind(), func(t *testing.T) {
			kind, payload, err := EncodeAction(action)
			require.NoError(t, err)
			assert.Equal(t, action.Kind(), kind)

			decoded, err := DecodeAction(kind, payload)
			require.NoError(t, err)
			assert.Equal(t, kind, decoded.Kind())
		})
	}
}

func TestDecodeAction_UnknownKind(t *testing.T) {
	_, err := DecodeAction("set_everything", []byte(`{}`))
	require.Error(t, err)

	var se *StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeUnknownAction, se.Code)
}

func TestDecodeAction_BadPayload(t *testing.T) {
	_, err := DecodeAction(KindSetOwner, []byte(`{broken`))
	require.Error(t, err)

	var se *StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeBadPayload, se.Code)
}
