// Package pipeline wires credentials, fetchers, the recommender and the
// output writers into a single sequential run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"keymend/internal/config"
	"keymend/pkg/google"
	"keymend/pkg/logger"
	"keymend/pkg/naver"
	"keymend/pkg/preview"
	"keymend/pkg/recommend"
	"keymend/pkg/storage"
	"keymend/pkg/trend"
)

const (
	NaverTrendFile     = "naver_trend.csv"
	GoogleTrendFile    = "google_trend.csv"
	RecommendationFile = "recommended_keywords.csv"

	naverRatioColumn = "naver_ratio"
)

// Deps are the external collaborators of a run. Nil fields get production defaults.
type Deps struct {
	NaverDoer     naver.Doer
	GoogleQuerier google.Querier
	Exporter      storage.Exporter
	Out           io.Writer
}

// Result is what a run produced
type Result struct {
	NaverRows       []trend.TrendRow
	GoogleTable     *trend.WideTable
	Recommendations []trend.RecommendationRow
	Files           []string
}

// Pipeline runs one variant end to end
type Pipeline struct {
	cfg     *config.Config
	deps    Deps
	printer *preview.Printer
	log     *logger.Logger
}

// New creates a pipeline over an already validated configuration
func New(cfg *config.Config, deps Deps) *Pipeline {
	if deps.Exporter == nil {
		deps.Exporter = storage.NewOSExporter(cfg.Pipeline.OutputDir)
	}
	if deps.GoogleQuerier == nil {
		deps.GoogleQuerier = google.NewGTrendsQuerier()
	}

	return &Pipeline{
		cfg:     cfg,
		deps:    deps,
		printer: preview.NewPrinter(deps.Out, cfg.Pipeline.PreviewRows, false),
		log:     logger.GetLogger().WithFields(map[string]interface{}{
			"component": "pipeline",
			"run_id":    uuid.NewString(),
			"variant":   cfg.Pipeline.Variant,
		}),
	}
}

// Run executes the configured variant. Any error aborts the run; no files
// are written unless every fetch succeeded.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	client, err := p.newNaverClient()
	if err != nil {
		return nil, err
	}

	var result *Result
	switch p.cfg.Pipeline.Variant {
	case config.VariantTrends:
		result, err = p.runTrends(ctx, client)
	case config.VariantRecommend:
		result, err = p.runRecommend(ctx, client)
	default:
		err = fmt.Errorf("unknown pipeline variant %q", p.cfg.Pipeline.Variant)
	}
	if err != nil {
		return nil, err
	}

	p.printer.Done("CSV files saved: %v", result.Files)
	p.log.WithFields(map[string]interface{}{
		"files":       result.Files,
		"naver_rows":  len(result.NaverRows),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Pipeline completed")

	return result, nil
}

func (p *Pipeline) newNaverClient() (*naver.Client, error) {
	clientCfg := naver.ClientConfig{
		Endpoint: p.cfg.Naver.Endpoint,
		TimeUnit: p.cfg.Naver.TimeUnit,
		Timeout:  time.Duration(p.cfg.Naver.TimeoutMs) * time.Millisecond,
	}

	var opts []naver.Option
	if p.deps.NaverDoer != nil {
		opts = append(opts, naver.WithDoer(p.deps.NaverDoer))
	}

	client, err := naver.NewClient(p.cfg.Credentials(), clientCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create naver client: %w", err)
	}
	return client, nil
}

// naverFetcher picks the DataLab strategy for the configured variant
func (p *Pipeline) naverFetcher(client *naver.Client) trend.Fetcher {
	if p.cfg.Pipeline.Variant == config.VariantRecommend {
		return naver.NewPerKeyword(client)
	}
	return naver.NewGrouped(client, p.cfg.Naver.GroupName)
}

func (p *Pipeline) runTrends(ctx context.Context, client *naver.Client) (*Result, error) {
	pc := p.cfg.Pipeline

	rows, err := p.naverFetcher(client).Fetch(ctx, pc.NaverKeywords, pc.StartDate, pc.EndDate)
	if err != nil {
		return nil, err
	}

	googleFetcher := google.NewFetcher(p.deps.GoogleQuerier, google.Config{
		Language: p.cfg.Google.Language,
		Category: p.cfg.Google.Category,
	})
	wide, err := googleFetcher.Fetch(ctx, pc.GoogleKeywords, pc.StartDate, pc.EndDate, p.cfg.Google.Geo)
	if err != nil {
		return nil, err
	}

	outputs := []output{
		{title: "NAVER DATA LAB", file: NaverTrendFile, table: trend.GroupSeriesTable(rows, naverRatioColumn)},
		{title: "GOOGLE TRENDS", file: GoogleTrendFile, table: wide.Table()},
	}
	files, err := p.emit(outputs)
	if err != nil {
		return nil, err
	}

	return &Result{NaverRows: rows, GoogleTable: wide, Files: files}, nil
}

func (p *Pipeline) runRecommend(ctx context.Context, client *naver.Client) (*Result, error) {
	pc := p.cfg.Pipeline

	rows, err := p.naverFetcher(client).Fetch(ctx, pc.NaverKeywords, pc.StartDate, pc.EndDate)
	if err != nil {
		return nil, err
	}

	recs, err := recommend.Recommend(rows, pc.TopN)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(map[string]interface{}{
		"keywords":        len(pc.NaverKeywords),
		"recommendations": len(recs),
	}).Info("Keywords ranked by growth rate")

	outputs := []output{
		{title: "NAVER DATA LAB", file: NaverTrendFile, table: trend.RowsTable(rows)},
		{title: "RECOMMENDED KEYWORDS", file: RecommendationFile, table: trend.RecommendationsTable(recs)},
	}
	files, err := p.emit(outputs)
	if err != nil {
		return nil, err
	}

	return &Result{NaverRows: rows, Recommendations: recs, Files: files}, nil
}

type output struct {
	title string
	file  string
	table trend.Table
}

// emit previews every table first, then writes them all
func (p *Pipeline) emit(outputs []output) ([]string, error) {
	for _, o := range outputs {
		if err := p.printer.Print(o.title, o.table); err != nil {
			return nil, err
		}
	}

	files := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path, err := p.deps.Exporter.Export(o.file, o.table)
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
