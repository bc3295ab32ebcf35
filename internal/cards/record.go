package cards

import "strings"

// Finish values recognized by the pipeline. The empty string means nonfoil.
const (
	FinishNonfoil = ""
	FinishFoil    = "foil"
	FinishEtched  = "etched"
)

// Promo print subtypes that the batch endpoint cannot express and that are
// therefore resolved through individual search calls.
const (
	PromoJudge      = "judge"
	PromoPrerelease = "prerelease"
	PromoPack       = "promopack"
)

// RawField preserves one original header/value pair in source column order.
type RawField struct {
	Key   string
	Value string
}

// ParsedRecord is the normalized view of one source row. It is mutable
// while the record moves through set resolution and confidence assignment
// and is never shared between rows.
type ParsedRecord struct {
	// SourceRow is the 1-based row number in the input file.
	SourceRow int
	Raw       []RawField

	Count           int
	Name            string
	Set             string
	SetName         string
	Condition       string
	Language        string
	Finish          string
	CollectorNumber string
	PurchasePrice   string
	Notes           string

	// EtchedFromNotes marks an etched finish that was inferred from a
	// free-form tag rather than a dedicated finish column. A finish
	// mismatch against the matched printing is a warning, not an error,
	// for these records.
	EtchedFromNotes bool

	ScryfallID   string
	MultiverseID string
	VendorID     string

	// Hints derived during parsing that bias downstream resolution.
	TokenHint     bool
	ArtSeriesHint bool
	PromoType     string

	Signed  bool
	Altered bool
	Proxy   bool

	Confidence   Confidence
	SetCorrected bool
	Warnings     []string
}

// AddWarning appends a warning unless the identical message is already
// present. Warnings are additive and never change success state.
func (r *ParsedRecord) AddWarning(msg string) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return
	}
	for _, existing := range r.Warnings {
		if existing == msg {
			return
		}
	}
	r.Warnings = append(r.Warnings, msg)
}

// LowerConfidence drops the record one tier. Confidence never rises again.
func (r *ParsedRecord) LowerConfidence() {
	r.Confidence = r.Confidence.Lower()
}

// CapConfidence lowers the record to the given tier when it sits above it.
func (r *ParsedRecord) CapConfidence(ceiling Confidence) {
	r.Confidence = r.Confidence.Min(ceiling)
}

// HasSet reports whether a set code is present on the record.
func (r *ParsedRecord) HasSet() bool {
	return strings.TrimSpace(r.Set) != ""
}

// HasAnyIdentifier reports whether the record carries anything the lookup
// pipeline could use. Records without any identifier short-circuit to
// failure before a single network call.
func (r *ParsedRecord) HasAnyIdentifier() bool {
	return r.ScryfallID != "" ||
		r.MultiverseID != "" ||
		strings.TrimSpace(r.Name) != "" ||
		(r.HasSet() && r.CollectorNumber != "")
}
