package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymend/pkg/trend"
)

var _ trend.WideFetcher = (*Fetcher)(nil)

type fakeQuerier struct {
	points  []Point
	err     error
	queries []Query
}

func (f *fakeQuerier) InterestOverTime(_ context.Context, q Query) ([]Point, error) {
	f.queries = append(f.queries, q)
	return f.points, f.err
}

func day(s string) time.Time {
	t, _ := time.Parse(trend.DateLayout, s)
	return t
}

func TestTimeframe(t *testing.T) {
	assert.Equal(t, "2024-01-01 2024-12-31", Timeframe("2024-01-01", "2024-12-31"))
}

func TestFetcher_BuildsWideTable(t *testing.T) {
	querier := &fakeQuerier{points: []Point{
		{Date: day("2024-01-07"), Values: []float64{40, 75}},
		{Date: day("2024-01-14"), Values: []float64{42, 80}},
		{Date: day("2024-01-21"), Values: []float64{39, 100}, IsPartial: true},
	}}
	fetcher := NewFetcher(querier, Config{})

	table, err := fetcher.Fetch(context.Background(),
		[]string{"Artificial Intelligence", "ChatGPT"}, "2024-01-01", "2024-12-31", "KR")
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "Artificial Intelligence", "ChatGPT"}, table.Columns)
	assert.Equal(t, []string{"Artificial Intelligence", "ChatGPT"}, table.Keywords())
	require.Len(t, table.Rows, 3)
	assert.Equal(t, trend.WideRow{Date: "2024-01-21", Values: []float64{39, 100}}, table.Rows[2])

	require.Len(t, querier.queries, 1)
	q := querier.queries[0]
	assert.Equal(t, "2024-01-01 2024-12-31", q.Timeframe)
	assert.Equal(t, "KR", q.Geo)
	assert.Equal(t, "ko-KR", q.Language)
}

func TestFetcher_UpstreamErrorPropagates(t *testing.T) {
	querier := &fakeQuerier{err: errors.New("429 too many requests")}
	fetcher := NewFetcher(querier, Config{})

	_, err := fetcher.Fetch(context.Background(), []string{"ChatGPT"}, "2024-01-01", "2024-12-31", "KR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestFetcher_ValueCountMismatch(t *testing.T) {
	querier := &fakeQuerier{points: []Point{{Date: day("2024-01-07"), Values: []float64{1}}}}
	fetcher := NewFetcher(querier, Config{})

	_, err := fetcher.Fetch(context.Background(), []string{"a", "b"}, "2024-01-01", "2024-12-31", "KR")
	assert.ErrorIs(t, err, trend.ErrMalformedResponse)
}

func TestFetcher_Validation(t *testing.T) {
	querier := &fakeQuerier{}
	fetcher := NewFetcher(querier, Config{})

	_, err := fetcher.Fetch(context.Background(), []string{"a"}, "2024-12-31", "2024-01-01", "KR")
	assert.ErrorIs(t, err, trend.ErrInvalidDateRange)

	_, err = fetcher.Fetch(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, "2024-01-01", "2024-12-31", "KR")
	assert.ErrorIs(t, err, trend.ErrInvalidKeyword)

	assert.Empty(t, querier.queries)
}
