// Package dcc defines the digital calibration certificate document model.
//
// A Document is the canonical in-memory record a draft is built against:
// administrative data, the measurement timeline, calibrated objects,
// responsible persons, methods, equipment, environmental conditions,
// result tables, statements, and a closing comment.
//
// Every user-facing text field is a LangString, a mapping from language
// code to localized value. The set of languages a certificate renders in
// is declared in AdministrativeData.UsedLanguages; completeness of each
// LangString against that set is checked by internal/validate, not here.
//
// File attachments are explicitly tagged: an Image either points at a
// local file that has not been read yet (Pending != nil) or carries a
// stored filename/mime/base64 triple. There is no structural sniffing of
// "file-like" values anywhere in the model.
package dcc
