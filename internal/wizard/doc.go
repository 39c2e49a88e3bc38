// Package wizard holds the canonical draft document and applies edits
// to it as explicit, serializable actions.
//
// ARCHITECTURE:
//
// Single-Writer Reducer:
// All edits go through Store.Dispatch, which applies one action at a
// time under a mutex. Each action is stamped with a monotonic seq
// counter and recorded in the store's log, so a draft is fully
// described by its ordered action list and can be rebuilt by replaying
// it (see internal/draft).
//
// Merge Policy (one action type per wizard section):
//   - Administrative, timeline, and responsible-person actions carry a
//     patch with optional fields: fields present replace the section's
//     value wholesale, fields absent are preserved.
//   - List sections (objects, methods, equipments, conditions, results,
//     statements) are replaced wholesale by their action; there is no
//     per-element merge.
//   - Owner, comment, and spreadsheet actions replace their section.
//
// Actions never partially apply: Dispatch applies an action to a clone
// of the current document and swaps it in only on success.
package wizard
