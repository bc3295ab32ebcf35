package dialect

import (
	"sort"
	"strings"
)

// Detection scoring weights. The floor and margin thresholds live in
// Options because they are empirically tuned, not structural.
const (
	strongHeaderBonus = 0.35
	exactCaseBonus    = 0.05
	canonicalIDBonus  = 0.10
	numericIDBonus    = 0.05
	extraTolerance    = 5
	extraPenalty      = 0.05
)

// Options controls detection acceptance.
type Options struct {
	// MinScore is the absolute floor the best candidate must clear.
	MinScore float64
	// MinMargin is the minimum lead over the runner-up. Together with the
	// floor it rejects both weak matches and ties between structurally
	// similar dialects.
	MinMargin float64
}

// DefaultOptions returns the tuned detection thresholds.
func DefaultOptions() Options {
	return Options{MinScore: 0.6, MinMargin: 0.2}
}

// Candidate is one dialect's detection score.
type Candidate struct {
	Dialect *Definition
	Score   float64
}

// Detection is the outcome of scoring a header row against the registry.
type Detection struct {
	Dialect       *Definition
	Score         float64
	RunnerUp      *Definition
	RunnerUpScore float64
	Candidates    []Candidate
}

// Confident reports whether the best candidate cleared both thresholds.
func (d Detection) Confident(opts Options) bool {
	if d.Dialect == nil {
		return false
	}
	if d.Score < opts.MinScore {
		return false
	}
	return d.Score-d.RunnerUpScore >= opts.MinMargin
}

// Detect scores every registered dialect against the header row. The
// generic fallback dialect never competes: it is what callers fall back to
// when detection declines to choose.
func (r *Registry) Detect(headers []string, opts Options) (Detection, bool) {
	lowered := make(map[string]struct{}, len(headers))
	exact := make(map[string]struct{}, len(headers))
	for _, header := range headers {
		trimmed := strings.TrimSpace(header)
		if trimmed == "" {
			continue
		}
		lowered[strings.ToLower(trimmed)] = struct{}{}
		exact[trimmed] = struct{}{}
	}

	detection := Detection{}
	for _, def := range r.All() {
		if def.ID == GenericID {
			continue
		}
		score := scoreDialect(def, lowered, exact)
		detection.Candidates = append(detection.Candidates, Candidate{Dialect: def, Score: score})
	}
	sort.SliceStable(detection.Candidates, func(i, j int) bool {
		return detection.Candidates[i].Score > detection.Candidates[j].Score
	})

	if len(detection.Candidates) > 0 {
		detection.Dialect = detection.Candidates[0].Dialect
		detection.Score = detection.Candidates[0].Score
	}
	if len(detection.Candidates) > 1 {
		detection.RunnerUp = detection.Candidates[1].Dialect
		detection.RunnerUpScore = detection.Candidates[1].Score
	}

	if !detection.Confident(opts) {
		return detection, false
	}
	return detection, true
}

func scoreDialect(def *Definition, lowered, exact map[string]struct{}) float64 {
	expected := def.ExpectedHeaders()
	if len(expected) == 0 {
		return 0
	}

	matched := 0
	score := 0.0
	for _, col := range def.Columns {
		if col.Header == "" {
			continue
		}
		_, present := lowered[strings.ToLower(col.Header)]
		if !present {
			continue
		}
		matched++
		if col.Strong {
			score += strongHeaderBonus
		}
		if _, ok := exact[col.Header]; ok {
			score += exactCaseBonus
		}
		switch col.Field {
		case FieldScryfallID:
			score += canonicalIDBonus
		case FieldMultiverseID:
			score += numericIDBonus
		}
	}
	score += float64(matched) / float64(len(expected))

	// Headers the dialect does not know about count against it once the
	// input carries more than a handful of them.
	extras := 0
	known := make(map[string]struct{}, len(expected))
	for _, header := range expected {
		known[strings.ToLower(header)] = struct{}{}
	}
	for header := range lowered {
		if _, ok := known[header]; !ok {
			extras++
		}
	}
	if extras > extraTolerance {
		score -= extraPenalty * float64(extras-extraTolerance)
	}
	if score < 0 {
		score = 0
	}
	return score
}
