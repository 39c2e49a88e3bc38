// Package i18n is a static message table: (key, language) -> localized
// string. Lookup is a pure function with English fallback; unknown keys
// return the key itself so missing entries stay visible instead of
// rendering blank.
package i18n

// FallbackLanguage is used when a key has no entry for the requested
// language.
const FallbackLanguage = "en"

var messages = map[string]map[string]string{
	"issue.V101": {
		"en": "%s is required",
		"id": "%s wajib diisi",
	},
	"issue.V102": {
		"en": "%s has no value in any language",
		"id": "%s belum diisi untuk bahasa apa pun",
	},
	"issue.V103": {
		"en": "%s is missing a value for language %q",
		"id": "%s belum diisi untuk bahasa %q",
	},
	"issue.V104": {
		"en": "%s requires at least one entry",
		"id": "%s membutuhkan minimal satu entri",
	},
	"issue.V105": {
		"en": "%s is not a valid date (YYYY-MM-DD)",
		"id": "%s bukan tanggal yang valid (YYYY-MM-DD)",
	},
	"issue.V106": {
		"en": "%s is not a recognized value",
		"id": "%s bukan pilihan yang dikenal",
	},
	"issue.V107": {
		"en": "%s must select at least one language",
		"id": "%s harus memilih minimal satu bahasa",
	},
	"issue.V108": {
		"en": "%s contains an unrecognized language code %q",
		"id": "%s memuat kode bahasa yang tidak dikenal %q",
	},
	"submit.preparing": {
		"en": "preparing document",
		"id": "menyiapkan dokumen",
	},
	"submit.processing_files": {
		"en": "processing attached files",
		"id": "memproses berkas lampiran",
	},
	"submit.generating": {
		"en": "generating certificate",
		"id": "membuat sertifikat",
	},
	"submit.finalizing": {
		"en": "finalizing",
		"id": "menyelesaikan",
	},
	"submit.done": {
		"en": "done",
		"id": "selesai",
	},
}

// T returns the message for key in the requested language, falling back
// to English, then to the key itself.
func T(key, lang string) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := entry[lang]; ok {
		return msg
	}
	if msg, ok := entry[FallbackLanguage]; ok {
		return msg
	}
	return key
}

// Languages returns the language codes the table can render.
func Languages() []string {
	return []string{"en", "id"}
}
