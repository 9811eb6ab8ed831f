// Package recommend ranks keywords by how fast their search interest is growing.
package recommend

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"keymend/pkg/trend"
)

// MinObservations is the number of periods a keyword needs to be ranked
const MinObservations = 3

// Recommend groups rows by keyword and returns the topN keywords ordered by
// growth rate, highest first. Keywords with fewer than MinObservations rows
// are skipped. Equal growth rates keep first-appearance order.
func Recommend(rows []trend.TrendRow, topN int) ([]trend.RecommendationRow, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: got %d", trend.ErrInvalidTopN, topN)
	}

	var order []string
	groups := make(map[string][]trend.TrendRow)
	for _, r := range rows {
		if _, seen := groups[r.Keyword]; !seen {
			order = append(order, r.Keyword)
		}
		groups[r.Keyword] = append(groups[r.Keyword], r)
	}

	recs := make([]trend.RecommendationRow, 0, len(order))
	for _, kw := range order {
		rec, ok := growth(kw, groups[kw])
		if ok {
			recs = append(recs, rec)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].GrowthRatePercent > recs[j].GrowthRatePercent
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs, nil
}

func growth(keyword string, group []trend.TrendRow) (trend.RecommendationRow, bool) {
	if len(group) < MinObservations {
		return trend.RecommendationRow{}, false
	}

	sorted := append([]trend.TrendRow(nil), group...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	n := len(sorted)
	recent := decimal.NewFromFloat(sorted[n-1].Ratio)
	prevAvg := decimal.NewFromFloat(sorted[n-3].Ratio).
		Add(decimal.NewFromFloat(sorted[n-2].Ratio)).
		Div(decimal.NewFromInt(2))

	// A zero baseline reports no growth, even when recent > 0.
	rate := decimal.Zero
	if prevAvg.GreaterThan(decimal.Zero) {
		rate = recent.Sub(prevAvg).Div(prevAvg).Mul(decimal.NewFromInt(100))
	}

	return trend.RecommendationRow{
		Keyword:           keyword,
		LatestRatio:       round2(recent),
		GrowthRatePercent: round2(rate),
	}, true
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
