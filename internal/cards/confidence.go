package cards

// Confidence is the ordered trust tier attached to a record. It is assigned
// once from the identifiers present on the parsed row and may only be
// lowered afterwards.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
	ConfidenceVeryHigh
)

// String returns the tier label used in logs and exports.
func (c Confidence) String() string {
	switch c {
	case ConfidenceVeryHigh:
		return "very-high"
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// Lower returns the next tier down, clamped at low.
func (c Confidence) Lower() Confidence {
	if c <= ConfidenceLow {
		return ConfidenceLow
	}
	return c - 1
}

// Min returns the lower of the two tiers.
func (c Confidence) Min(other Confidence) Confidence {
	if other < c {
		return other
	}
	return c
}

// Method records which resolution strategy actually produced a match.
type Method string

const (
	MethodDirectID              Method = "direct-id"
	MethodNumericID             Method = "numeric-id"
	MethodSetCollector          Method = "set+collector"
	MethodSetCollectorCorrected Method = "set+collector-corrected"
	MethodNameSet               Method = "name+set"
	MethodNameSetCorrected      Method = "name+set-corrected"
	MethodNameCollectorSearch   Method = "name+collector-search"
	MethodFuzzySet              Method = "fuzzy-set"
	MethodNameOnly              Method = "name-only"
	MethodFailed                Method = "failed"
)
