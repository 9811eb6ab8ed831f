package google

import (
	"context"
	"fmt"

	"keymend/pkg/logger"
	"keymend/pkg/trend"
)

// MaxKeywords is the Google Trends limit on compared keywords
const MaxKeywords = 5

// Config holds trend-query settings
type Config struct {
	Language string
	Category int
}

// Fetcher builds a WideTable from an interest-over-time query
type Fetcher struct {
	querier Querier
	config  Config
	log     *logger.Logger
}

// NewFetcher creates a Google Trends fetcher
func NewFetcher(querier Querier, config Config) *Fetcher {
	if config.Language == "" {
		config.Language = "ko-KR"
	}
	return &Fetcher{
		querier: querier,
		config:  config,
		log:     logger.GetLogger().WithField("component", "google_fetcher"),
	}
}

// Timeframe joins the range in the "<start> <end>" form Google Trends expects
func Timeframe(startDate, endDate string) string {
	return startDate + " " + endDate
}

func (f *Fetcher) Fetch(ctx context.Context, keywords []string, startDate, endDate, region string) (*trend.WideTable, error) {
	if err := trend.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	keywords, err := trend.NormalizeKeywords(keywords)
	if err != nil {
		return nil, err
	}
	if len(keywords) > MaxKeywords {
		return nil, fmt.Errorf("%w: at most %d keywords can be compared, got %d",
			trend.ErrInvalidKeyword, MaxKeywords, len(keywords))
	}

	points, err := f.querier.InterestOverTime(ctx, Query{
		Keywords:  keywords,
		Timeframe: Timeframe(startDate, endDate),
		Geo:       region,
		Language:  f.config.Language,
		Category:  f.config.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("google trends query failed: %w", err)
	}

	table := &trend.WideTable{
		Columns: append([]string{"date"}, keywords...),
		Rows:    make([]trend.WideRow, 0, len(points)),
	}
	partial := 0
	for i, p := range points {
		if len(p.Values) != len(keywords) {
			return nil, fmt.Errorf("%w: point %d has %d values for %d keywords",
				trend.ErrMalformedResponse, i, len(p.Values), len(keywords))
		}
		// The partial flag is not carried into the table.
		if p.IsPartial {
			partial++
		}
		table.Rows = append(table.Rows, trend.WideRow{
			Date:   p.Date.Format(trend.DateLayout),
			Values: append([]float64(nil), p.Values...),
		})
	}

	f.log.WithFields(map[string]interface{}{
		"keywords":     len(keywords),
		"rows":         len(table.Rows),
		"partial_rows": partial,
		"geo":          region,
	}).Info("Google Trends fetch completed")

	return table, nil
}
