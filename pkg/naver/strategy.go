package naver

import (
	"context"
	"fmt"

	"keymend/pkg/logger"
	"keymend/pkg/trend"
)

// Grouped sends all keywords as one named group and returns the single
// aggregated series, tagged with the group name.
type Grouped struct {
	client    *Client
	groupName string
	log       *logger.Logger
}

// NewGrouped creates the single-request strategy
func NewGrouped(client *Client, groupName string) *Grouped {
	if groupName == "" {
		groupName = DefaultGroupName
	}
	return &Grouped{
		client:    client,
		groupName: groupName,
		log:       logger.GetLogger().WithField("component", "naver_grouped_fetcher"),
	}
}

func (g *Grouped) Fetch(ctx context.Context, keywords []string, startDate, endDate string) ([]trend.TrendRow, error) {
	keywords, err := validate(keywords, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(keywords) > MaxKeywordsPerGroup {
		return nil, fmt.Errorf("%w: a group holds at most %d keywords, got %d",
			trend.ErrInvalidKeyword, MaxKeywordsPerGroup, len(keywords))
	}

	resp, err := g.client.Search(ctx, startDate, endDate, []KeywordGroup{
		{GroupName: g.groupName, Keywords: keywords},
	})
	if err != nil {
		return nil, fmt.Errorf("grouped fetch for %q failed: %w", g.groupName, err)
	}

	rows := toRows(g.groupName, resp.Results[0].Data, nil)
	g.log.WithFields(map[string]interface{}{
		"group":    g.groupName,
		"keywords": len(keywords),
		"rows":     len(rows),
	}).Info("Grouped DataLab fetch completed")

	return rows, nil
}

// PerKeyword sends one request per keyword and concatenates the series in
// keyword order. A failure on any keyword aborts the whole fetch.
type PerKeyword struct {
	client *Client
	log    *logger.Logger
}

// NewPerKeyword creates the one-request-per-keyword strategy
func NewPerKeyword(client *Client) *PerKeyword {
	return &PerKeyword{
		client: client,
		log:    logger.GetLogger().WithField("component", "naver_per_keyword_fetcher"),
	}
}

func (p *PerKeyword) Fetch(ctx context.Context, keywords []string, startDate, endDate string) ([]trend.TrendRow, error) {
	keywords, err := validate(keywords, startDate, endDate)
	if err != nil {
		return nil, err
	}

	progress := logger.NewProgressReporter(p.log, len(keywords), "DataLab per-keyword fetch")
	var rows []trend.TrendRow
	for _, kw := range keywords {
		resp, err := p.client.Search(ctx, startDate, endDate, []KeywordGroup{
			{GroupName: kw, Keywords: []string{kw}},
		})
		if err != nil {
			return nil, fmt.Errorf("fetch for keyword %q failed: %w", kw, err)
		}
		rows = toRows(kw, resp.Results[0].Data, rows)
		progress.Step(kw)
	}
	progress.Complete()

	return rows, nil
}

func validate(keywords []string, startDate, endDate string) ([]string, error) {
	if err := trend.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return trend.NormalizeKeywords(keywords)
}

func toRows(keyword string, data []DataPoint, dst []trend.TrendRow) []trend.TrendRow {
	for _, d := range data {
		dst = append(dst, trend.TrendRow{
			Keyword: keyword,
			Date:    d.Period,
			Ratio:   d.Ratio,
		})
	}
	return dst
}
