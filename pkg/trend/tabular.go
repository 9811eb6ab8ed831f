package trend

import "strconv"

// Table is a header plus string records, ready for CSV or terminal output
type Table struct {
	Header  []string
	Records [][]string
}

// Head returns a copy of the table truncated to the first n records
func (t Table) Head(n int) Table {
	if n < 0 || n > len(t.Records) {
		n = len(t.Records)
	}
	return Table{Header: t.Header, Records: t.Records[:n]}
}

// FormatRatio renders a float the same way on every run
func FormatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RowsTable renders long-format rows as keyword,date,ratio
func RowsTable(rows []TrendRow) Table {
	t := Table{Header: []string{"keyword", "date", "ratio"}, Records: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Records = append(t.Records, []string{r.Keyword, r.Date, FormatRatio(r.Ratio)})
	}
	return t
}

// GroupSeriesTable renders a single aggregated group series as date,<ratioColumn>
func GroupSeriesTable(rows []TrendRow, ratioColumn string) Table {
	t := Table{Header: []string{"date", ratioColumn}, Records: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Records = append(t.Records, []string{r.Date, FormatRatio(r.Ratio)})
	}
	return t
}

// Table renders the wide table with date as the first column
func (w *WideTable) Table() Table {
	t := Table{Header: append([]string(nil), w.Columns...), Records: make([][]string, 0, len(w.Rows))}
	for _, r := range w.Rows {
		record := make([]string, 0, len(r.Values)+1)
		record = append(record, r.Date)
		for _, v := range r.Values {
			record = append(record, FormatRatio(v))
		}
		t.Records = append(t.Records, record)
	}
	return t
}

// RecommendationsTable renders keyword,latest_ratio,growth_rate_percent
func RecommendationsTable(recs []RecommendationRow) Table {
	t := Table{
		Header:  []string{"keyword", "latest_ratio", "growth_rate_percent"},
		Records: make([][]string, 0, len(recs)),
	}
	for _, r := range recs {
		t.Records = append(t.Records, []string{
			r.Keyword,
			FormatRatio(r.LatestRatio),
			FormatRatio(r.GrowthRatePercent),
		})
	}
	return t
}
