package dialect

import (
	"strconv"
	"strings"

	"deckport/internal/cards"
)

// fieldAliases maps logical fields to header spellings seen across vendor
// exports. The parser reaches for these when a dialect's expected header is
// absent under its exact name.
var fieldAliases = map[Field][]string{
	FieldCount:           {"count", "qty", "quantity", "amount", "total qty", "reg qty"},
	FieldName:            {"name", "card", "card name", "title"},
	FieldSet:             {"set", "set code", "edition code", "set id", "code"},
	FieldSetName:         {"set name", "edition", "edition name", "expansion"},
	FieldCondition:       {"condition", "cond", "card condition", "grade"},
	FieldLanguage:        {"language", "lang"},
	FieldFinish:          {"foil", "finish", "printing", "is_foil"},
	FieldCollectorNumber: {"collector number", "collector_number", "collector no", "cn", "card number", "number", "collector #", "no"},
	FieldPrice:           {"price", "purchase price", "price bought", "my price", "cost"},
	FieldNotes:           {"notes", "tags", "comment", "comments"},
	FieldScryfallID:      {"scryfall id", "scryfall_id", "scryfall uuid"},
	FieldMultiverseID:    {"multiverse id", "multiverse_id", "multiverseid", "mvid"},
}

type binding struct {
	column Column
	index  int
}

// Parser maps data rows of one file to normalized records. Column indices
// are resolved once from the header row.
type Parser struct {
	def      *Definition
	headers  []string
	bindings []binding
}

// NewParser resolves the dialect's column mapping against the header row.
// Resolution is exact match first, then case-insensitive, then the shared
// alias table.
func NewParser(def *Definition, headers []string) *Parser {
	loweredIdx := make(map[string]int, len(headers))
	exactIdx := make(map[string]int, len(headers))
	for i, header := range headers {
		trimmed := strings.TrimSpace(header)
		if trimmed == "" {
			continue
		}
		if _, seen := exactIdx[trimmed]; !seen {
			exactIdx[trimmed] = i
		}
		lower := strings.ToLower(trimmed)
		if _, seen := loweredIdx[lower]; !seen {
			loweredIdx[lower] = i
		}
	}

	claimed := make(map[int]struct{}, len(headers))
	parser := &Parser{def: def, headers: headers}
	for _, col := range def.Columns {
		if col.Header == "" {
			continue
		}
		idx, ok := resolveHeader(col, exactIdx, loweredIdx, claimed)
		if !ok {
			continue
		}
		claimed[idx] = struct{}{}
		parser.bindings = append(parser.bindings, binding{column: col, index: idx})
	}
	return parser
}

func resolveHeader(col Column, exactIdx, loweredIdx map[string]int, claimed map[int]struct{}) (int, bool) {
	free := func(idx int, ok bool) (int, bool) {
		if !ok {
			return 0, false
		}
		if _, taken := claimed[idx]; taken {
			return 0, false
		}
		return idx, true
	}
	if idx, ok := free(lookupIdx(exactIdx, col.Header)); ok {
		return idx, true
	}
	if idx, ok := free(lookupIdx(loweredIdx, strings.ToLower(col.Header))); ok {
		return idx, true
	}
	for _, alias := range fieldAliases[col.Field] {
		if idx, ok := free(lookupIdx(loweredIdx, alias)); ok {
			return idx, true
		}
	}
	return 0, false
}

func lookupIdx(m map[string]int, key string) (int, bool) {
	idx, ok := m[key]
	return idx, ok
}

// Dialect returns the definition the parser was built for.
func (p *Parser) Dialect() *Definition {
	return p.def
}

// Parse converts one data row into one or more normalized records. Rows
// are never rejected for incompleteness: missing identity is resolved or
// reported downstream.
func (p *Parser) Parse(row []string, sourceRow int) []cards.ParsedRecord {
	rec := cards.ParsedRecord{
		SourceRow: sourceRow,
		Count:     1,
	}
	for i, header := range p.headers {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		rec.Raw = append(rec.Raw, cards.RawField{Key: header, Value: value})
	}

	raw := make(map[Field]string, len(p.bindings))
	for _, b := range p.bindings {
		value := ""
		if b.index < len(row) {
			value = strings.TrimSpace(row[b.index])
		}
		if b.column.Transform != nil {
			value = b.column.Transform(value)
		}
		raw[b.column.Field] = value
		p.assign(&rec, b.column.Field, value)
	}

	p.postProcessRecord(&rec, raw)

	records := []cards.ParsedRecord{rec}
	if p.def.SplitTokenFaces {
		records = splitTokenFaces(records)
	}
	if p.def.PostProcess != nil {
		if replaced := p.def.PostProcess(&records[0], raw); replaced != nil {
			records = replaced
		}
	}
	return records
}

func (p *Parser) assign(rec *cards.ParsedRecord, field Field, value string) {
	switch field {
	case FieldCount:
		rec.Count = ParseCount(value)
	case FieldName:
		rec.Name = value
	case FieldSet:
		rec.Set = strings.ToLower(value)
	case FieldSetName:
		rec.SetName = value
	case FieldCondition:
		rec.Condition = NormalizeCondition(value)
	case FieldLanguage:
		rec.Language = value
	case FieldFinish:
		// An etched marker from another column wins over a plain foil flag.
		if rec.Finish == cards.FinishNonfoil {
			rec.Finish = NormalizeFinish(value)
		}
	case FieldEtched:
		if truthy(value) {
			rec.Finish = cards.FinishEtched
		}
	case FieldCollectorNumber:
		rec.CollectorNumber = value
	case FieldPrice:
		rec.PurchasePrice = NormalizePrice(value)
	case FieldNotes:
		rec.Notes = value
	case FieldExtras:
		applyExtras(rec, value)
	case FieldScryfallID:
		rec.ScryfallID = cleanScryfallID(value, p.def.TrimScryfallID)
	case FieldMultiverseID:
		rec.MultiverseID = cleanMultiverseID(value)
	case FieldVendorID:
		rec.VendorID = value
	case FieldSigned:
		rec.Signed = truthy(value)
	case FieldAltered:
		rec.Altered = truthy(value)
	case FieldProxy:
		rec.Proxy = truthy(value)
	}
}

// postProcessRecord applies the cross-dialect heuristics that depend on
// more than a single cell.
func (p *Parser) postProcessRecord(rec *cards.ParsedRecord, raw map[Field]string) {
	detectNoteHints(rec)
	detectTokenHints(rec)

	if rec.Signed {
		rec.AddWarning("card is marked signed; identity resolution ignores signatures")
	}
	if rec.Altered {
		rec.AddWarning("card is marked altered; identity resolution ignores alterations")
	}
	if rec.Proxy {
		rec.AddWarning("card is marked as a proxy")
	}

	if rec.Name != "" && rec.CollectorNumber != "" && !rec.HasSet() && rec.SetName == "" &&
		rec.ScryfallID == "" && rec.MultiverseID == "" {
		rec.AddWarning("no set information; will attempt a collector number search")
	}
}

func cleanScryfallID(value string, trimTrailing bool) string {
	const uuidLength = 36
	id := strings.ToLower(strings.TrimSpace(value))
	id = strings.Trim(id, "{}\"")
	if trimTrailing && len(id) == uuidLength+1 {
		id = id[:uuidLength]
	}
	return id
}

func cleanMultiverseID(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "0" {
		return ""
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
		return ""
	}
	return trimmed
}
