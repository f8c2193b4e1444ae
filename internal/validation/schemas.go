package validation

// Schemas for the admin API payloads. Types and required keys are enforced
// here; business rules such as slug normal form stay in the record service.

const translationPayloadSource = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["locale"],
	"properties": {
		"locale": {"type": "string", "minLength": 1},
		"title": {"type": "string"},
		"body": {"type": "string"},
		"description": {"type": "string"},
		"meta_title": {"type": "string"},
		"meta_description": {"type": "string"},
		"slug": {"type": "string"},
		"icon": {"type": "string"},
		"featured_image": {"type": "string"},
		"author": {"type": "string"}
	}
}`

const recordCreateSource = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["kind", "locale"],
	"properties": {
		"kind": {"type": "string", "enum": ["post", "copilot_tip"]},
		"locale": {"type": "string", "minLength": 1},
		"title": {"type": "string"},
		"body": {"type": "string"},
		"description": {"type": "string"},
		"meta_title": {"type": "string"},
		"meta_description": {"type": "string"},
		"slug": {"type": "string"},
		"icon": {"type": "string"},
		"featured_image": {"type": "string"},
		"author": {"type": "string"}
	}
}`

const autoTranslateSource = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"target_locale": {"type": "string", "minLength": 1},
		"fields": {
			"type": "array",
			"items": {
				"type": "string",
				"enum": ["title", "body", "description", "meta_title", "meta_description"]
			}
		}
	}
}`

var (
	// TranslationPayload validates PUT record translation bodies.
	TranslationPayload = MustCompile("translation_payload.json", translationPayloadSource)
	// RecordCreate validates POST record bodies.
	RecordCreate = MustCompile("record_create.json", recordCreateSource)
	// AutoTranslate validates POST translate bodies.
	AutoTranslate = MustCompile("auto_translate.json", autoTranslateSource)
)
