package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"keymend/pkg/logger"
	"keymend/pkg/trend"
)

// ClientConfig holds DataLab endpoint and connection settings
type ClientConfig struct {
	Endpoint  string
	TimeUnit  string
	Timeout   time.Duration
	UserAgent string
}

// DefaultClientConfig returns the settings used against the public DataLab API
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Endpoint:  DefaultEndpoint,
		TimeUnit:  DefaultTimeUnit,
		Timeout:   30 * time.Second,
		UserAgent: "keymend/1.0",
	}
}

// Client issues DataLab search-trend requests
type Client struct {
	doer   Doer
	creds  Credentials
	config ClientConfig
	parser *ResponseParser
	log    *logger.Logger

	totalRequests int
}

// Option customizes a Client
type Option func(*Client)

// WithDoer replaces the fasthttp transport
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// NewClient creates a DataLab client. Both credentials must be non-empty.
func NewClient(creds Credentials, config ClientConfig, opts ...Option) (*Client, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, trend.ErrMissingCredentials
	}

	defaults := DefaultClientConfig()
	if config.Endpoint == "" {
		config.Endpoint = defaults.Endpoint
	}
	if config.TimeUnit == "" {
		config.TimeUnit = defaults.TimeUnit
	}
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	if err := validateTimeUnit(config.TimeUnit); err != nil {
		return nil, err
	}

	c := &Client{
		creds:  creds,
		config: config,
		parser: NewResponseParser(),
		log:    logger.GetLogger().WithField("component", "naver_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = newFastHTTPClient(config)
	}

	return c, nil
}

func newFastHTTPClient(config ClientConfig) *fasthttp.Client {
	return &fasthttp.Client{
		Name:                config.UserAgent,
		ReadTimeout:         config.Timeout,
		WriteTimeout:        config.Timeout,
		MaxConnsPerHost:     4,
		MaxIdleConnDuration: 90 * time.Second,
	}
}

func validateTimeUnit(unit string) error {
	switch unit {
	case "date", "week", "month":
		return nil
	default:
		return fmt.Errorf("unsupported time unit %q: must be date, week or month", unit)
	}
}

// Search posts one request carrying the given keyword groups
func (c *Client) Search(ctx context.Context, startDate, endDate string, groups []KeywordGroup) (*SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := SearchRequest{
		StartDate:     startDate,
		EndDate:       endDate,
		TimeUnit:      c.config.TimeUnit,
		KeywordGroups: groups,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.config.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Naver-Client-Id", c.creds.ClientID)
	req.Header.Set("X-Naver-Client-Secret", c.creds.ClientSecret)
	req.Header.Set("Accept", "application/json")
	req.SetBody(body)

	c.totalRequests++
	start := time.Now()
	c.log.WithField("groups", len(groups)).Debug("Sending DataLab request")

	if err := c.doer.Do(req, resp); err != nil {
		return nil, fmt.Errorf("%w: %v", trend.ErrTransport, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return nil, &trend.StatusError{StatusCode: status, Body: snippet(resp.Body())}
	}

	result, err := c.parser.ParseResponse(resp.Body(), len(groups))
	if err != nil {
		return nil, err
	}

	c.log.WithFields(map[string]interface{}{
		"groups":      len(groups),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("DataLab request completed")

	return result, nil
}

// TotalRequests returns how many requests the client has sent
func (c *Client) TotalRequests() int {
	return c.totalRequests
}
