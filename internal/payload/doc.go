// Package payload derives the wire payloads the certificate backend
// accepts from an in-memory document.
//
// Two shapes exist: the preview payload (JSON only, sent repeatedly
// while editing) and the submission payload (JSON body plus one
// multipart file part per attached image). Both go through the same
// reshaping rules (language lists collapse to plain strings, column
// labels collapse from list-of-one to string, uncertainty blocks get
// their defaults) followed by a sanitize pass that nulls out formulas,
// images, and comment files whose enabling flag is off, regardless of
// stale data underneath.
//
// Transformation is a pure function of the document. Pending local
// files are represented in JSON by a filename placeholder; their bytes
// travel only in the submission's multipart parts.
//
// CanonicalMarshal produces byte-stable JSON (sorted keys, NFC, no HTML
// escaping) so identical documents hash identically; the previewer uses
// this to skip resending unchanged payloads, and golden tests pin the
// output.
package payload
