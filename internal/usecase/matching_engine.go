package usecase

import (
	"sort"
	"strconv"
	"strings"

	"appraisal_desk/internal/domain/entities"
)

// Matching engine: filters the appraiser panel against order requirements and
// ranks the qualified candidates by a composite desirability score.
//
// Panel cells come in raw; blank and malformed numerics are handled per
// check, and the two checks deliberately disagree:
//   - capacity check: malformed workload or capacity skips the check entirely
//     (fail-open), the appraiser stays in
//   - quality check: malformed quality score counts as 0 and disqualifies
//     (fail-closed)

const (
	minQualityScore = 4.0

	defaultCapacity   = 5
	defaultQuality    = 3.0
	defaultTurnaround = 14.0
	defaultFee        = 3000.0
)

// Candidate is one qualified appraiser annotated with its 1-based rank.
type Candidate struct {
	entities.Appraiser
	Rank int `json:"rank"`
}

// MatchCriteria echoes the inputs a match ran with, for observability even
// when nothing qualified.
type MatchCriteria struct {
	PropertyState string   `json:"property_state"`
	PropertyType  string   `json:"property_type"`
	ClientID      string   `json:"client_id,omitempty"`
	ExcludedIDs   []string `json:"excluded_ids"`
}

// filterAppraisers applies the qualification predicate: active, not
// excluded, licensed in the property state, covering the property type,
// under capacity, and at or above the quality floor.
func filterAppraisers(panel []entities.Appraiser, propertyState, propertyType string, excluded []string) []entities.Appraiser {
	exclusions := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		exclusions[id] = true
	}

	var qualified []entities.Appraiser
	for _, a := range panel {
		if !a.IsActive() {
			continue
		}
		if exclusions[a.ID] {
			continue
		}
		if !a.CoversState(propertyState) {
			continue
		}
		if !a.CoversPropertyType(propertyType) {
			continue
		}

		workload, wOK := parseIntCell(a.CurrentWorkload, 0)
		capacity, cOK := parseIntCell(a.Capacity, defaultCapacity)
		if wOK && cOK && workload >= capacity {
			continue
		}

		quality, ok := parseFloatCell(a.QualityScore, 0)
		if !ok {
			quality = 0
		}
		if quality < minQualityScore {
			continue
		}

		qualified = append(qualified, a)
	}
	return qualified
}

// rankAppraisers orders qualified appraisers by composite score, ascending
// (lower is better). The sort is stable so panel order breaks ties.
func rankAppraisers(qualified []entities.Appraiser) []entities.Appraiser {
	ranked := make([]entities.Appraiser, len(qualified))
	copy(ranked, qualified)
	sort.SliceStable(ranked, func(i, j int) bool {
		return matchScore(ranked[i]) < matchScore(ranked[j])
	})
	return ranked
}

// matchScore weights quality most heavily (inverted: higher quality scores
// lower), then turnaround, workload ratio, and normalized average fee.
func matchScore(a entities.Appraiser) float64 {
	quality := floatCellOr(a.QualityScore, defaultQuality)
	turnaround := floatCellOr(a.AvgTurnaroundDays, defaultTurnaround)
	fee := floatCellOr(a.AvgFee, defaultFee)
	workload := floatCellOr(a.CurrentWorkload, 0)
	capacity := floatCellOr(a.Capacity, defaultCapacity)

	workloadScore := 0.0
	if capacity > 0 {
		workloadScore = workload / capacity * 5
	}

	return (5-quality)*10 + turnaround*0.5 + workloadScore + fee/1000
}

// parseIntCell parses a panel cell. Blank means "use the default"; malformed
// reports ok=false so the caller can decide check-by-check.
func parseIntCell(cell string, def int) (int, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloatCell(cell string, def float64) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// floatCellOr is the ranking-side policy: blank and malformed both collapse
// to the default.
func floatCellOr(cell string, def float64) float64 {
	f, ok := parseFloatCell(cell, def)
	if !ok {
		return def
	}
	return f
}
