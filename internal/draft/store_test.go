package draft

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksn/sertika/internal/dcc"
	"github.com/wicaksn/sertika/internal/payload"
	"github.com/wicaksn/sertika/internal/wizard"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func strPtr(s string) *string { return &s }

func TestStore_OpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestSession_DispatchPersistsActions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	session, err := NewSession(ctx, store, id)
	require.NoError(t, err)

	require.NoError(t, session.Dispatch(ctx, wizard.Init{Template: "blank"}))
	require.NoError(t, session.Dispatch(ctx, wizard.SetAdministrative{Patch: wizard.AdministrativePatch{
		CertificateNumber: strPtr("SNSU-2026-0007"),
	}}))

	log, err := store.Actions(ctx, id)
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, wizard.KindInit, log[0].Kind)
	assert.Equal(t, int64(1), log[0].Seq)
	assert.Equal(t, wizard.KindSetAdministrative, log[1].Kind)
	assert.Equal(t, int64(2), log[1].Seq)
	assert.False(t, session.Dirty())
}

func TestSession_FailedActionNotPersisted(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	session, err := NewSession(ctx, store, id)
	require.NoError(t, err)
	require.NoError(t, session.Dispatch(ctx, wizard.Init{Template: "blank"}))

	err = session.Dispatch(ctx, wizard.Init{Template: "no-such"})
	require.Error(t, err)

	log, lerr := store.Actions(ctx, id)
	require.NoError(t, lerr)
	assert.Len(t, log, 1)
}

func TestOpenSession_ResumesDraft(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	session, err := NewSession(ctx, store, id)
	require.NoError(t, err)
	require.NoError(t, session.Dispatch(ctx, wizard.Init{Template: "blank"}))
	require.NoError(t, session.Dispatch(ctx, wizard.SetOwner{Owner: dcc.Owner{Name: "PT X"}}))

	resumed, err := OpenSession(ctx, store, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resumed.Seq())
	assert.False(t, resumed.Dirty())

	doc, err := resumed.Document()
	require.NoError(t, err)
	assert.Equal(t, "PT X", doc.Owner.Name)

	// Edits continue from the persisted clock.
	require.NoError(t, resumed.Dispatch(ctx, wizard.SetSpreadsheet{Excel: "a.xlsx", SheetName: "S1"}))
	log, err := store.Actions(ctx, id)
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, int64(3), log[2].Seq)
}

func TestOpenSession_UnknownDraft(t *testing.T) {
	store := openTestStore(t)
	_, err := OpenSession(context.Background(), store, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no actions")
}

func TestReplay_Deterministic(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	session, err := NewSession(ctx, store, id)
	require.NoError(t, err)
	require.NoError(t, session.Dispatch(ctx, wizard.Init{Template: "multimeter"}))
	require.NoError(t, session.Dispatch(ctx, wizard.SetTimeline{Patch: wizard.TimelinePatch{
		IssueDate: strPtr("2026-08-10"),
	}}))
	require.NoError(t, session.Dispatch(ctx, wizard.SetOwner{Owner: dcc.Owner{Name: "PT X"}}))

	live, err := session.Document()
	require.NoError(t, err)

	first, seq, err := store.Replay(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)

	second, _, err := store.Replay(ctx, id)
	require.NoError(t, err)

	liveHash, err := payload.Hash(payload.Preview(live))
	require.NoError(t, err)
	firstHash, err := payload.Hash(payload.Preview(first))
	require.NoError(t, err)
	secondHash, err := payload.Hash(payload.Preview(second))
	require.NoError(t, err)

	assert.Equal(t, liveHash, firstHash)
	assert.Equal(t, firstHash, secondHash)
}

func TestReplay_EmptyDraft(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateDraft(ctx, "empty"))

	_, _, err := store.Replay(ctx, "empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no actions")
}

func TestAppendAction_DuplicateSeqIgnored(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateDraft(ctx, "d1"))

	la := wizard.LoggedAction{Seq: 1, Kind: wizard.KindInit, Payload: []byte(`{"template":"blank"}`)}
	require.NoError(t, store.AppendAction(ctx, "d1", la))
	require.NoError(t, store.AppendAction(ctx, "d1", la))

	log, err := store.Actions(ctx, "d1")
	require.NoError(t, err)
	assert.Len(t, log, 1)
}

func TestCreateDraft_Idempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateDraft(ctx, "d1"))
	require.NoError(t, store.CreateDraft(ctx, "d1"))

	ids, err := store.Drafts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, ids)
}

func TestDeleteDraft(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	session, err := NewSession(ctx, store, "gone")
	require.NoError(t, err)
	require.NoError(t, session.Dispatch(ctx, wizard.Init{Template: "blank"}))

	require.NoError(t, store.DeleteDraft(ctx, "gone"))

	ids, err := store.Drafts(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	log, err := store.Actions(ctx, "gone")
	require.NoError(t, err)
	assert.Empty(t, log)

	// Deleting a missing draft is a no-op.
	require.NoError(t, store.DeleteDraft(ctx, "never-existed"))
}

func TestDrafts_ListsInCreationOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateDraft(ctx, "b"))
	require.NoError(t, store.CreateDraft(ctx, "a"))

	ids, err := store.Drafts(ctx)
	require.NoError(t, err)
	// Same created_at second sorts by id; either way both are present.
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
