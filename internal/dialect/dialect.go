package dialect

import "deckport/internal/cards"

// Field names the logical destinations a column can map to.
type Field string

const (
	FieldCount           Field = "count"
	FieldName            Field = "name"
	FieldSet             Field = "set"
	FieldSetName         Field = "set_name"
	FieldCondition       Field = "condition"
	FieldLanguage        Field = "language"
	FieldFinish          Field = "finish"
	FieldEtched          Field = "etched"
	FieldCollectorNumber Field = "collector_number"
	FieldPrice           Field = "price"
	FieldNotes           Field = "notes"
	FieldExtras          Field = "extras"
	FieldScryfallID      Field = "scryfall_id"
	FieldMultiverseID    Field = "multiverse_id"
	FieldVendorID        Field = "vendor_id"
	FieldFoilCount       Field = "foil_count"
	FieldSigned          Field = "signed"
	FieldAltered         Field = "altered"
	FieldProxy           Field = "proxy"
	FieldIgnored         Field = "ignored"
)

// Column maps one expected header to a logical field. Transform, when set,
// rewrites the raw cell before the field-level normalization runs.
type Column struct {
	Field  Field
	Header string
	// Strong marks a header empirically unique to this dialect; its
	// presence weighs heavily during detection.
	Strong    bool
	Transform func(string) string
}

// Definition describes one export dialect. Definitions are immutable after
// registration.
type Definition struct {
	ID      string
	Name    string
	Columns []Column

	// TrimScryfallID enables cleanup of canonical ids that carry one
	// spurious trailing character beyond the UUID length.
	TrimScryfallID bool

	// SplitTokenFaces enables splitting double-sided token rows into one
	// record per face.
	SplitTokenFaces bool

	// PostProcess, when set, runs after field mapping and may replace the
	// parsed record with one or more records (quantity fan-out and the
	// like). A nil return keeps the original record.
	PostProcess func(rec *cards.ParsedRecord, raw map[Field]string) []cards.ParsedRecord
}

// ExpectedHeaders returns the dialect's header strings in layout order.
// Ignored placeholder columns count: they are part of the export layout
// even though parsing discards them.
func (d *Definition) ExpectedHeaders() []string {
	headers := make([]string, 0, len(d.Columns))
	for _, col := range d.Columns {
		if col.Header == "" {
			continue
		}
		headers = append(headers, col.Header)
	}
	return headers
}

// hasField reports whether the dialect maps the given logical field.
func (d *Definition) hasField(field Field) bool {
	for _, col := range d.Columns {
		if col.Field == field {
			return true
		}
	}
	return false
}
