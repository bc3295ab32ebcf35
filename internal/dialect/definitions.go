package dialect

import (
	"strings"

	"deckport/internal/cards"
)

// builtinDefinitions lists every supported export dialect. Header strings
// reproduce each tool's export verbatim; Strong marks headers that only
// that tool emits.
func builtinDefinitions() []*Definition {
	return []*Definition{
		{
			ID:   "moxfield",
			Name: "Moxfield",
			Columns: []Column{
				{Field: FieldCount, Header: "Count"},
				{Field: FieldIgnored, Header: "Tradelist Count"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSet, Header: "Edition"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldNotes, Header: "Tags"},
				{Field: FieldIgnored, Header: "Last Modified"},
				{Field: FieldCollectorNumber, Header: "Collector Number"},
				{Field: FieldAltered, Header: "Alter"},
				{Field: FieldProxy, Header: "Proxy", Strong: true},
				{Field: FieldPrice, Header: "Purchase Price", Strong: true},
			},
		},
		{
			ID:   "manabox",
			Name: "ManaBox",
			Columns: []Column{
				{Field: FieldName, Header: "Name"},
				{Field: FieldSet, Header: "Set code"},
				{Field: FieldSetName, Header: "Set name"},
				{Field: FieldCollectorNumber, Header: "Collector number"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldIgnored, Header: "Rarity"},
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldVendorID, Header: "ManaBox ID", Strong: true},
				{Field: FieldScryfallID, Header: "Scryfall ID"},
				{Field: FieldPrice, Header: "Purchase price"},
				{Field: FieldIgnored, Header: "Misprint"},
				{Field: FieldAltered, Header: "Altered"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldIgnored, Header: "Purchase price currency"},
			},
		},
		{
			ID:   "deckbox",
			Name: "Deckbox",
			Columns: []Column{
				{Field: FieldCount, Header: "Count"},
				{Field: FieldIgnored, Header: "Tradelist Count"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSetName, Header: "Edition"},
				{Field: FieldCollectorNumber, Header: "Card Number"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldSigned, Header: "Signed"},
				{Field: FieldIgnored, Header: "Artist Proof", Strong: true},
				{Field: FieldAltered, Header: "Altered Art"},
				{Field: FieldIgnored, Header: "Misprint"},
				{Field: FieldIgnored, Header: "Promo"},
				{Field: FieldIgnored, Header: "Textless", Strong: true},
				{Field: FieldPrice, Header: "My Price"},
			},
		},
		{
			ID:   "archidekt",
			Name: "Archidekt",
			Columns: []Column{
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldFinish, Header: "Finish"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldIgnored, Header: "Date Added"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldPrice, Header: "Purchase Price"},
				{Field: FieldNotes, Header: "Tags"},
				{Field: FieldSetName, Header: "Edition Name", Strong: true},
				{Field: FieldSet, Header: "Edition Code", Strong: true},
				{Field: FieldMultiverseID, Header: "Multiverse Id"},
				{Field: FieldScryfallID, Header: "Scryfall ID"},
				{Field: FieldCollectorNumber, Header: "Collector Number"},
			},
		},
		{
			ID:   "tcgplayer",
			Name: "TCGplayer",
			Columns: []Column{
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldIgnored, Header: "Simple Name", Strong: true},
				{Field: FieldSetName, Header: "Set"},
				{Field: FieldCollectorNumber, Header: "Card Number"},
				{Field: FieldSet, Header: "Set Code"},
				{Field: FieldFinish, Header: "Printing"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldIgnored, Header: "Rarity"},
				{Field: FieldVendorID, Header: "Product ID", Strong: true},
				{Field: FieldIgnored, Header: "SKU"},
			},
		},
		{
			ID:   "cardkingdom",
			Name: "Card Kingdom",
			Columns: []Column{
				{Field: FieldName, Header: "title", Strong: true},
				{Field: FieldSetName, Header: "edition"},
				{Field: FieldFinish, Header: "foil"},
				{Field: FieldCount, Header: "quantity"},
			},
		},
		{
			ID:   "dragonshield",
			Name: "Dragon Shield Card Manager",
			Columns: []Column{
				{Field: FieldIgnored, Header: "Folder Name", Strong: true},
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldIgnored, Header: "Trade Quantity"},
				{Field: FieldName, Header: "Card Name"},
				{Field: FieldSet, Header: "Set Code"},
				{Field: FieldSetName, Header: "Set Name"},
				{Field: FieldCollectorNumber, Header: "Card Number"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldFinish, Header: "Printing"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldPrice, Header: "Price Bought", Strong: true},
				{Field: FieldIgnored, Header: "Date Bought"},
			},
		},
		{
			ID:   "delverlens",
			Name: "Delver Lens",
			// Delver Lens appends a stray character to exported Scryfall
			// ids often enough that cleanup is part of the dialect.
			TrimScryfallID:  true,
			SplitTokenFaces: true,
			Columns: []Column{
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSetName, Header: "Edition"},
				{Field: FieldCollectorNumber, Header: "Collector Number"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldScryfallID, Header: "Scryfall ID", Strong: true},
			},
		},
		{
			ID:   "helvault",
			Name: "Helvault",
			Columns: []Column{
				{Field: FieldExtras, Header: "extras", Strong: true},
				{Field: FieldLanguage, Header: "language"},
				{Field: FieldName, Header: "name"},
				{Field: FieldVendorID, Header: "oracle_id", Strong: true},
				{Field: FieldCount, Header: "quantity"},
				{Field: FieldScryfallID, Header: "scryfall_id"},
				{Field: FieldSet, Header: "set_code"},
				{Field: FieldSetName, Header: "set_name"},
			},
		},
		{
			ID:   "mtggoldfish",
			Name: "MTGGoldfish",
			Columns: []Column{
				{Field: FieldName, Header: "Card"},
				{Field: FieldSet, Header: "Set ID", Strong: true},
				{Field: FieldSetName, Header: "Set Name"},
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldCollectorNumber, Header: "Variation", Strong: true},
			},
		},
		{
			ID:   "cardsphere",
			Name: "Cardsphere",
			Columns: []Column{
				{Field: FieldCount, Header: "Count"},
				{Field: FieldIgnored, Header: "Tradelist Count"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSetName, Header: "Edition"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldNotes, Header: "Tags"},
				{Field: FieldVendorID, Header: "Cardsphere ID", Strong: true},
			},
		},
		{
			ID:   "deckstats",
			Name: "Deckstats",
			Columns: []Column{
				{Field: FieldCount, Header: "amount", Strong: true},
				{Field: FieldName, Header: "card_name"},
				{Field: FieldFinish, Header: "is_foil", Strong: true},
				{Field: FieldIgnored, Header: "is_pinned", Strong: true},
				{Field: FieldSetName, Header: "set_name"},
				{Field: FieldCondition, Header: "condition"},
				{Field: FieldLanguage, Header: "language"},
				{Field: FieldNotes, Header: "comment"},
			},
		},
		{
			ID:   "echomtg",
			Name: "EchoMTG",
			Columns: []Column{
				{Field: FieldCount, Header: "Reg Qty", Strong: true},
				{Field: FieldFoilCount, Header: "Foil Qty", Strong: true},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSetName, Header: "Set"},
				{Field: FieldIgnored, Header: "Acquired"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldCondition, Header: "Condition"},
			},
			PostProcess: splitFoilQuantities,
		},
		{
			ID:   "mtgstudio",
			Name: "MTG Studio",
			Columns: []Column{
				{Field: FieldName, Header: "Name"},
				{Field: FieldSetName, Header: "Edition"},
				{Field: FieldCount, Header: "Qty"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldPrice, Header: "Price"},
				{Field: FieldNotes, Header: "Notes"},
			},
		},
		{
			ID:   "tappedout",
			Name: "TappedOut",
			Columns: []Column{
				{Field: FieldCount, Header: "Qty"},
				{Field: FieldName, Header: "Card"},
				{Field: FieldSet, Header: "Set"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldAltered, Header: "Alter"},
				{Field: FieldSigned, Header: "Signed"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
			},
		},
		{
			ID:   "cubecobra",
			Name: "CubeCobra",
			Columns: []Column{
				{Field: FieldName, Header: "name"},
				{Field: FieldIgnored, Header: "CMC"},
				{Field: FieldIgnored, Header: "Type"},
				{Field: FieldIgnored, Header: "Color"},
				{Field: FieldSet, Header: "Set"},
				{Field: FieldCollectorNumber, Header: "Collector Number"},
				{Field: FieldIgnored, Header: "Rarity"},
				{Field: FieldIgnored, Header: "Color Category", Strong: true},
				{Field: FieldIgnored, Header: "status"},
				{Field: FieldFinish, Header: "Finish"},
				{Field: FieldIgnored, Header: "maybeboard", Strong: true},
				{Field: FieldIgnored, Header: "image URL"},
				{Field: FieldIgnored, Header: "image Back URL"},
				{Field: FieldNotes, Header: "tags"},
				{Field: FieldIgnored, Header: "Notes"},
				{Field: FieldVendorID, Header: "MTGO ID", Strong: true},
			},
		},
		{
			ID:              "urzagatherer",
			Name:            "UrzaGatherer",
			SplitTokenFaces: true,
			Columns: []Column{
				{Field: FieldCount, Header: "Card Count", Strong: true},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSetName, Header: "Set Name"},
				{Field: FieldCollectorNumber, Header: "Card Number"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldEtched, Header: "Etched", Strong: true},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
			},
		},
		{
			ID:   "cardcastle",
			Name: "CardCastle",
			Columns: []Column{
				{Field: FieldName, Header: "Card Name"},
				{Field: FieldSetName, Header: "Set"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldVendorID, Header: "Card ID", Strong: true},
				{Field: FieldMultiverseID, Header: "Multiverse ID"},
			},
		},
		{
			ID:   "topdecked",
			Name: "TopDecked",
			Columns: []Column{
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSet, Header: "Set code"},
				{Field: FieldCollectorNumber, Header: "Collector number"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldFinish, Header: "Finish"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldMultiverseID, Header: "Multiverse ID"},
				{Field: FieldVendorID, Header: "TCGplayer ID", Strong: true},
			},
		},
		{
			ID:   GenericID,
			Name: "Generic CSV",
			Columns: []Column{
				{Field: FieldCount, Header: "Quantity"},
				{Field: FieldName, Header: "Name"},
				{Field: FieldSet, Header: "Set"},
				{Field: FieldSetName, Header: "Set Name"},
				{Field: FieldCollectorNumber, Header: "Collector Number"},
				{Field: FieldCondition, Header: "Condition"},
				{Field: FieldLanguage, Header: "Language"},
				{Field: FieldFinish, Header: "Foil"},
				{Field: FieldPrice, Header: "Price"},
				{Field: FieldNotes, Header: "Notes"},
				{Field: FieldScryfallID, Header: "Scryfall ID"},
				{Field: FieldMultiverseID, Header: "Multiverse ID"},
			},
		},
	}
}

// splitFoilQuantities fans an EchoMTG row with both regular and foil
// quantities out into two records sharing every other field.
func splitFoilQuantities(rec *cards.ParsedRecord, raw map[Field]string) []cards.ParsedRecord {
	foilCount := ParseCountAllowZero(raw[FieldFoilCount])
	regCount := ParseCountAllowZero(raw[FieldCount])
	if foilCount <= 0 {
		return nil
	}

	foil := *rec
	foil.Count = foilCount
	foil.Finish = cards.FinishFoil
	foil.Warnings = append([]string(nil), rec.Warnings...)

	if regCount <= 0 {
		return []cards.ParsedRecord{foil}
	}
	regular := *rec
	regular.Count = regCount
	regular.Warnings = append([]string(nil), rec.Warnings...)
	return []cards.ParsedRecord{regular, foil}
}

// ParseCountAllowZero parses a quantity cell where zero is meaningful
// (multi-quantity exports with separate regular and foil columns).
func ParseCountAllowZero(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	return parseCountOrZero(trimmed)
}
