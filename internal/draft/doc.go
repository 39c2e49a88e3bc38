// Package draft provides sqlite-backed persistence for draft
// certificates as an append-only action log.
//
// A draft is fully described by its ordered action rows: replaying them
// through the wizard reducer rebuilds the exact document. Ordering uses
// the seq column (logical clock), never timestamps, so replay is
// deterministic regardless of wall time.
//
// The submitted certificate itself is never stored here; that record
// belongs to the backend. This store only keeps local work in progress
// so a draft survives process exits.
package draft
