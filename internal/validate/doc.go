// Package validate implements the per-step completeness checks a draft
// must pass before the wizard advances.
//
// Checks are pure functions of the document: ValidateStep collects
// every issue it finds (no fail-fast) in a fixed traversal order, so
// identical documents always produce identical issue lists. An Issue is
// structured data (section, index, field, language, code) and carries
// no prose; human-readable rendering lives in Render, backed by the
// internal/i18n message table.
//
// Multilingual fields are checked against the languages in use
// (administrative_data.used_languages, trimmed, blanks dropped, order
// and duplicates preserved): a field with no value at all yields one
// generic issue, a field missing some languages yields one issue per
// missing language.
package validate
