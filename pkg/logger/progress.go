package logger

import (
	"fmt"
	"time"
)

// ProgressReporter logs progress of a sequential batch of operations
type ProgressReporter struct {
	total       int
	current     int
	description string
	startTime   time.Time
	logger      *Logger
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(log *Logger, total int, description string) *ProgressReporter {
	return &ProgressReporter{
		total:       total,
		description: description,
		startTime:   time.Now(),
		logger:      log,
	}
}

// Step records one finished item and logs the running total
func (pr *ProgressReporter) Step(item string) {
	pr.current++
	pr.logger.WithFields(map[string]interface{}{
		"item":    item,
		"current": pr.current,
		"total":   pr.total,
		"elapsed": time.Since(pr.startTime).Round(time.Millisecond).String(),
	}).Debug(fmt.Sprintf("%s: %d/%d", pr.description, pr.current, pr.total))
}

// Complete logs the final status
func (pr *ProgressReporter) Complete() {
	pr.logger.WithFields(map[string]interface{}{
		"total":   pr.total,
		"elapsed": time.Since(pr.startTime).Round(time.Millisecond).String(),
	}).Info(fmt.Sprintf("Completed: %s", pr.description))
}

// Current returns the number of finished items
func (pr *ProgressReporter) Current() int {
	return pr.current
}
