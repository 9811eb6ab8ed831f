package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"keymend/pkg/logger"
	"keymend/pkg/trend"
)

// CSVExporter writes tables as comma-separated files with a header row and no index column
type CSVExporter struct {
	fs        afero.Fs
	outputDir string
	log       *logger.Logger
}

// NewCSVExporter creates an exporter rooted at outputDir on fs
func NewCSVExporter(fs afero.Fs, outputDir string) *CSVExporter {
	if outputDir == "" {
		outputDir = "."
	}
	return &CSVExporter{
		fs:        fs,
		outputDir: outputDir,
		log:       logger.GetLogger().WithField("component", "csv_exporter"),
	}
}

// NewOSExporter creates an exporter on the real filesystem
func NewOSExporter(outputDir string) *CSVExporter {
	return NewCSVExporter(afero.NewOsFs(), outputDir)
}

// Export encodes table and writes it to <outputDir>/<name>, truncating any
// existing file. It returns the written path.
func (e *CSVExporter) Export(name string, table trend.Table) (string, error) {
	data, err := Encode(table)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := e.fs.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filePath := filepath.Join(e.outputDir, name)
	if err := afero.WriteFile(e.fs, filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	e.log.WithFields(map[string]interface{}{
		"path":  filePath,
		"rows":  len(table.Records),
		"bytes": len(data),
	}).Info("Table exported")

	return filePath, nil
}

// Encode renders a table as CSV bytes
func Encode(table trend.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(table.Records); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
