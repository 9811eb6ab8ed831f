package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowsTable(t *testing.T) {
	table := RowsTable([]TrendRow{
		{Keyword: "AI", Date: "2024-01-01", Ratio: 41.5},
		{Keyword: "AI", Date: "2024-02-01", Ratio: 100},
	})

	assert.Equal(t, []string{"keyword", "date", "ratio"}, table.Header)
	assert.Equal(t, [][]string{
		{"AI", "2024-01-01", "41.5"},
		{"AI", "2024-02-01", "100"},
	}, table.Records)
}

func TestGroupSeriesTable(t *testing.T) {
	table := GroupSeriesTable([]TrendRow{{Keyword: "KEYWORDS", Date: "2024-01-01", Ratio: 12.25}}, "naver_ratio")

	assert.Equal(t, []string{"date", "naver_ratio"}, table.Header)
	assert.Equal(t, [][]string{{"2024-01-01", "12.25"}}, table.Records)
}

func TestWideTable_Table(t *testing.T) {
	wide := &WideTable{
		Columns: []string{"date", "AI", "ChatGPT"},
		Rows:    []WideRow{{Date: "2024-01-07", Values: []float64{40, 75}}},
	}

	table := wide.Table()
	assert.Equal(t, []string{"date", "AI", "ChatGPT"}, table.Header)
	assert.Equal(t, [][]string{{"2024-01-07", "40", "75"}}, table.Records)
}

func TestRecommendationsTable(t *testing.T) {
	table := RecommendationsTable([]RecommendationRow{{Keyword: "AI", LatestRatio: 30, GrowthRatePercent: -66.67}})

	assert.Equal(t, []string{"keyword", "latest_ratio", "growth_rate_percent"}, table.Header)
	assert.Equal(t, [][]string{{"AI", "30", "-66.67"}}, table.Records)
}

func TestTable_Head(t *testing.T) {
	table := Table{Header: []string{"a"}, Records: [][]string{{"1"}, {"2"}, {"3"}}}

	assert.Len(t, table.Head(2).Records, 2)
	assert.Len(t, table.Head(10).Records, 3)
	assert.Len(t, table.Head(-1).Records, 3)
}
