package dialect

import (
	"strings"

	"deckport/internal/cards"
)

// applyExtras interprets a free-form tag column (Helvault's "extras") that
// packs finish and condition-adjacent markers into one comma-separated cell.
func applyExtras(rec *cards.ParsedRecord, value string) {
	for _, tag := range strings.Split(value, ",") {
		switch strings.ToLower(strings.TrimSpace(tag)) {
		case "":
		case "foil":
			if rec.Finish == cards.FinishNonfoil {
				rec.Finish = cards.FinishFoil
			}
		case "etched", "etchedfoil", "etched_foil":
			rec.Finish = cards.FinishEtched
			rec.EtchedFromNotes = true
		case "signed":
			rec.Signed = true
		case "alter", "altered":
			rec.Altered = true
		case "proxy":
			rec.Proxy = true
		case "prerelease":
			rec.PromoType = cards.PromoPrerelease
		case "promopack", "promo pack", "promo_pack":
			rec.PromoType = cards.PromoPack
		case "judge", "judgegift", "judge_gift":
			rec.PromoType = cards.PromoJudge
		}
	}
}

// detectNoteHints scans notes and parenthetical name suffixes for promo and
// finish markers that exports stash outside their structured columns.
func detectNoteHints(rec *cards.ParsedRecord) {
	notes := strings.ToLower(rec.Notes)
	if notes != "" {
		if rec.Finish != cards.FinishEtched && containsWord(notes, "etched") {
			rec.Finish = cards.FinishEtched
			rec.EtchedFromNotes = true
		}
		applyPromoHint(rec, notes)
	}

	if open := strings.LastIndex(rec.Name, "("); open >= 0 && strings.HasSuffix(rec.Name, ")") {
		suffix := strings.ToLower(rec.Name[open+1 : len(rec.Name)-1])
		before := rec.PromoType
		applyPromoHint(rec, suffix)
		if rec.PromoType != before {
			rec.Name = strings.TrimSpace(rec.Name[:open])
		}
	}
}

func applyPromoHint(rec *cards.ParsedRecord, text string) {
	if rec.PromoType != "" {
		return
	}
	switch {
	case strings.Contains(text, "prerelease") || strings.Contains(text, "pre-release"):
		rec.PromoType = cards.PromoPrerelease
	case strings.Contains(text, "promo pack") || strings.Contains(text, "promopack"):
		rec.PromoType = cards.PromoPack
	case containsWord(text, "judge"):
		rec.PromoType = cards.PromoJudge
	}
}

// detectTokenHints flags rows that belong to token or art-series products,
// which need set resolution biased toward the matching ancillary set.
func detectTokenHints(rec *cards.ParsedRecord) {
	setName := strings.ToLower(rec.SetName)
	name := strings.ToLower(rec.Name)

	switch {
	case strings.Contains(setName, "art series"):
		rec.ArtSeriesHint = true
	case strings.HasSuffix(name, " art card"):
		rec.ArtSeriesHint = true
	}
	if rec.ArtSeriesHint {
		return
	}

	switch {
	case containsWord(setName, "tokens") || containsWord(setName, "token"):
		rec.TokenHint = true
	case strings.HasSuffix(name, " token"):
		rec.TokenHint = true
	case strings.Contains(name, " // ") && strings.Contains(rec.CollectorNumber, "//"):
		// Double-sided token exports join both faces in one row.
		rec.TokenHint = true
	}
}

// splitTokenFaces expands double-sided token rows ("Elf // Goblin") into one
// record per face. Collector numbers of the form "15a//15b" split with the
// faces; a shared number is kept on both.
func splitTokenFaces(records []cards.ParsedRecord) []cards.ParsedRecord {
	out := make([]cards.ParsedRecord, 0, len(records))
	for _, rec := range records {
		if !rec.TokenHint || !strings.Contains(rec.Name, " // ") {
			out = append(out, rec)
			continue
		}
		names := strings.SplitN(rec.Name, " // ", 2)
		numbers := splitFaceNumbers(rec.CollectorNumber)
		for i, faceName := range names {
			face := rec
			face.Name = strings.TrimSpace(faceName)
			face.Warnings = append([]string(nil), rec.Warnings...)
			if i < len(numbers) {
				face.CollectorNumber = numbers[i]
			}
			face.AddWarning("split from a double-sided token row")
			out = append(out, face)
		}
	}
	return out
}

// splitFaceNumbers splits a joined collector number like "15a//15b" or
// "15a // 15b". A plain number is shared by both faces.
func splitFaceNumbers(number string) []string {
	if !strings.Contains(number, "//") {
		return nil
	}
	parts := strings.SplitN(number, "//", 2)
	return []string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
}

// containsWord reports whether text carries word as a standalone token.
func containsWord(text, word string) bool {
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	}) {
		if strings.EqualFold(tok, word) {
			return true
		}
	}
	return false
}
