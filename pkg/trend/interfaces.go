package trend

import "context"

// TrendRow is a single search-interest observation for a keyword
type TrendRow struct {
	Keyword string  `json:"keyword"`
	Date    string  `json:"date"`
	Ratio   float64 `json:"ratio"`
}

// WideTable holds one row per date and one ratio column per keyword.
// Columns[0] is always "date".
type WideTable struct {
	Columns []string
	Rows    []WideRow
}

// WideRow is a single dated row of a WideTable
type WideRow struct {
	Date   string
	Values []float64
}

// RecommendationRow represents a ranked keyword
type RecommendationRow struct {
	Keyword           string  `json:"keyword"`
	LatestRatio       float64 `json:"latest_ratio"`
	GrowthRatePercent float64 `json:"growth_rate_percent"`
}

// Fetcher retrieves a long-format trend series for a set of keywords
type Fetcher interface {
	Fetch(ctx context.Context, keywords []string, startDate, endDate string) ([]TrendRow, error)
}

// WideFetcher retrieves a wide trend table for a region
type WideFetcher interface {
	Fetch(ctx context.Context, keywords []string, startDate, endDate, region string) (*WideTable, error)
}

// Keywords returns the keyword columns of the table, excluding "date"
func (t *WideTable) Keywords() []string {
	if t == nil || len(t.Columns) == 0 {
		return nil
	}
	return t.Columns[1:]
}
