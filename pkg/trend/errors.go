package trend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("naver client id or secret is not set")
	ErrTransport          = errors.New("trend api request failed")
	ErrMalformedResponse  = errors.New("malformed trend api response")
	ErrUpstream           = errors.New("trend client query failed")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidKeyword     = errors.New("invalid keyword")
	ErrInvalidTopN        = errors.New("top_n must be positive")
)

// StatusError is returned when a trend API answers with a non-success status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}

// ErrorKind groups errors by where in the pipeline they originate
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindConfiguration
	ErrorKindValidation
	ErrorKindTransport
	ErrorKindUpstreamFormat
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindConfiguration:
		return "configuration"
	case ErrorKindValidation:
		return "validation"
	case ErrorKindTransport:
		return "transport"
	case ErrorKindUpstreamFormat:
		return "upstream_format"
	default:
		return "unknown"
	}
}

// Classify maps an error to its ErrorKind
func Classify(err error) ErrorKind {
	if err == nil {
		return ErrorKindUnknown
	}

	switch {
	case errors.Is(err, ErrMissingCredentials):
		return ErrorKindConfiguration
	case errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidKeyword),
		errors.Is(err, ErrInvalidTopN):
		return ErrorKindValidation
	case errors.Is(err, ErrMalformedResponse):
		return ErrorKindUpstreamFormat
	case errors.Is(err, ErrTransport), errors.Is(err, ErrUpstream):
		return ErrorKindTransport
	}

	// Errors from the transport library itself are not wrapped with our sentinels
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection") ||
		strings.Contains(errStr, "dns") {
		return ErrorKindTransport
	}

	return ErrorKindUnknown
}
