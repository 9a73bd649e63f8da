package usecase

import (
	"sort"

	"appraisal_desk/internal/domain/entities"
)

// Quote ranking engine: orders submitted quotes by value, weighting fee,
// turnaround, and the quoting appraiser's panel quality score. Also drives
// the auto-engagement pick.

// RankedQuote is one quote annotated with its 1-based rank, the quality
// score used to rank it, and the single-recommendation flag.
type RankedQuote struct {
	entities.Quote
	Rank         int     `json:"rank"`
	Recommended  bool    `json:"recommended"`
	QualityScore float64 `json:"quality_score"`
}

// rankQuotes sorts ascending by composite score (lower is better) and marks
// exactly the first entry recommended. The sort is stable, so submission
// order breaks ties. quality maps appraiser ID to panel quality; absent
// appraisers score the neutral default.
func rankQuotes(quotes []entities.Quote, quality map[string]float64) []RankedQuote {
	ranked := make([]RankedQuote, len(quotes))
	for i, q := range quotes {
		score, ok := quality[q.AppraiserID]
		if !ok {
			score = defaultQuality
		}
		ranked[i] = RankedQuote{Quote: q, QualityScore: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return quoteScore(ranked[i]) < quoteScore(ranked[j])
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Recommended = i == 0
	}
	return ranked
}

func quoteScore(q RankedQuote) float64 {
	return q.Fee/500 + float64(q.TurnaroundDays)*0.5 + (5-q.QualityScore)*3
}

// panelQuality builds the appraiser-ID to quality-score map used by the
// ranking engine. Blank and malformed panel cells collapse to the neutral
// default.
func panelQuality(appraisers []entities.Appraiser) map[string]float64 {
	m := make(map[string]float64, len(appraisers))
	for _, a := range appraisers {
		m[a.ID] = floatCellOr(a.QualityScore, defaultQuality)
	}
	return m
}
