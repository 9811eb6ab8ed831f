package google

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/groovili/gogtrends"

	"keymend/pkg/trend"
)

const timeseriesWidgetID = "TIMESERIES"

// Query describes one interest-over-time request
type Query struct {
	Keywords  []string
	Timeframe string
	Geo       string
	Language  string
	Category  int
}

// Point is one dated observation with a value per queried keyword
type Point struct {
	Date      time.Time
	Values    []float64
	IsPartial bool
}

// Querier executes interest-over-time queries against Google Trends
type Querier interface {
	InterestOverTime(ctx context.Context, q Query) ([]Point, error)
}

// GTrendsQuerier is the Querier backed by the gogtrends client
type GTrendsQuerier struct{}

// NewGTrendsQuerier creates a gogtrends-backed querier
func NewGTrendsQuerier() *GTrendsQuerier {
	return &GTrendsQuerier{}
}

func (q *GTrendsQuerier) InterestOverTime(ctx context.Context, query Query) ([]Point, error) {
	items := make([]*gogtrends.ComparisonItem, 0, len(query.Keywords))
	for _, kw := range query.Keywords {
		items = append(items, &gogtrends.ComparisonItem{
			Keyword: kw,
			Geo:     query.Geo,
			Time:    query.Timeframe,
		})
	}

	widgets, err := gogtrends.Explore(ctx, &gogtrends.ExploreRequest{
		ComparisonItems: items,
		Category:        query.Category,
		Property:        "",
	}, query.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: explore: %v", trend.ErrUpstream, err)
	}

	var widget *gogtrends.ExploreWidget
	for _, w := range widgets {
		if w.ID == timeseriesWidgetID {
			widget = w
			break
		}
	}
	if widget == nil {
		return nil, fmt.Errorf("%w: no %s widget in explore response", trend.ErrMalformedResponse, timeseriesWidgetID)
	}

	timeline, err := gogtrends.InterestOverTime(ctx, widget, query.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: interest over time: %v", trend.ErrUpstream, err)
	}

	points := make([]Point, 0, len(timeline))
	for _, tl := range timeline {
		sec, err := strconv.ParseInt(tl.Time, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: timeline time %q: %v", trend.ErrMalformedResponse, tl.Time, err)
		}

		values := make([]float64, len(tl.Value))
		for i, v := range tl.Value {
			values[i] = float64(v)
		}
		points = append(points, Point{
			Date:   time.Unix(sec, 0).UTC(),
			Values: values,
		})
	}

	return points, nil
}
