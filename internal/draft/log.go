package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/wicaksn/sertika/internal/wizard"
)

// CreateDraft registers a new draft id. Idempotent: re-creating an
// existing draft is a no-op.
func (s *Store) CreateDraft(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, created_at)
		VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("create draft: %w", err)
	}
	return nil
}

// AppendAction records one applied action. Duplicate (draft, seq) rows
// are silently ignored for idempotency.
func (s *Store) AppendAction(ctx context.Context, draftID string, la wizard.LoggedAction) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO actions (draft_id, seq, kind, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(draft_id, seq) DO NOTHING
	`, draftID, la.Seq, la.Kind, string(la.Payload))
	if err != nil {
		return fmt.Errorf("append action: %w", err)
	}
	return nil
}

// DeleteDraft removes a draft and its action log.
func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM actions WHERE draft_id = ?`, id); err != nil {
		return fmt.Errorf("delete draft actions: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// Actions returns a draft's full action log in seq order.
func (s *Store) Actions(ctx context.Context, draftID string) ([]wizard.LoggedAction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, kind, payload
		FROM actions
		WHERE draft_id = ?
		ORDER BY seq ASC
	`, draftID)
	if err != nil {
		return nil, fmt.Errorf("read actions: %w", err)
	}
	defer rows.Close()

	var log []wizard.LoggedAction
	for rows.Next() {
		var la wizard.LoggedAction
		var payload string
		if err := rows.Scan(&la.Seq, &la.Kind, &payload); err != nil {
			return nil, fmt.Errorf("read actions: %w", err)
		}
		la.Payload = []byte(payload)
		log = append(log, la)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read actions: %w", err)
	}
	return log, nil
}

// Drafts lists known draft ids, oldest first.
func (s *Store) Drafts(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM drafts ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list drafts: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return ids, nil
}
