package trend

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// DateLayout is the calendar date format accepted by both trend APIs
const DateLayout = "2006-01-02"

// ValidateDateRange checks that both dates are valid calendar dates and start <= end
func ValidateDateRange(startDate, endDate string) error {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: start date %q: %v", ErrInvalidDateRange, startDate, err)
	}

	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: end date %q: %v", ErrInvalidDateRange, endDate, err)
	}

	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange, startDate, endDate)
	}

	return nil
}

// NormalizeKeywords trims and NFC-normalizes keywords, rejecting empty ones.
// Hangul typed on different input methods may arrive decomposed.
func NormalizeKeywords(keywords []string) ([]string, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("%w: no keywords provided", ErrInvalidKeyword)
	}

	normalized := make([]string, 0, len(keywords))
	for i, kw := range keywords {
		kw = norm.NFC.String(strings.TrimSpace(kw))
		if kw == "" {
			return nil, fmt.Errorf("%w: keyword at position %d is empty", ErrInvalidKeyword, i)
		}
		normalized = append(normalized, kw)
	}

	return normalized, nil
}
