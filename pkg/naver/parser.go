package naver

import (
	"encoding/json"
	"fmt"

	"keymend/pkg/trend"
)

// rawResponse mirrors the wire format with pointers so missing keys are detectable
type rawResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TimeUnit  string `json:"timeUnit"`
	Results   []struct {
		Title    string   `json:"title"`
		Keywords []string `json:"keywords"`
		Data     *[]struct {
			Period *string  `json:"period"`
			Ratio  *float64 `json:"ratio"`
		} `json:"data"`
	} `json:"results"`
}

// ResponseParser validates DataLab responses against the expected schema
type ResponseParser struct{}

// NewResponseParser creates a new DataLab response parser
func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// ParseResponse decodes body into a SearchResponse. expectedGroups is the number
// of keyword groups sent; the response must carry at least that many results.
func (p *ResponseParser) ParseResponse(body []byte, expectedGroups int) (*SearchResponse, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty response body", trend.ErrMalformedResponse)
	}

	var raw rawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v (response: %s)", trend.ErrMalformedResponse, err, snippet(body))
	}

	if raw.Results == nil {
		return nil, fmt.Errorf("%w: missing results", trend.ErrMalformedResponse)
	}
	if len(raw.Results) < expectedGroups {
		return nil, fmt.Errorf("%w: expected %d results, got %d",
			trend.ErrMalformedResponse, expectedGroups, len(raw.Results))
	}

	resp := &SearchResponse{
		StartDate: raw.StartDate,
		EndDate:   raw.EndDate,
		TimeUnit:  raw.TimeUnit,
		Results:   make([]Result, 0, len(raw.Results)),
	}

	for i, r := range raw.Results {
		if r.Data == nil {
			return nil, fmt.Errorf("%w: results[%d] has no data", trend.ErrMalformedResponse, i)
		}

		result := Result{
			Title:    r.Title,
			Keywords: r.Keywords,
			Data:     make([]DataPoint, 0, len(*r.Data)),
		}
		for j, d := range *r.Data {
			if d.Period == nil || *d.Period == "" {
				return nil, fmt.Errorf("%w: results[%d].data[%d] missing period", trend.ErrMalformedResponse, i, j)
			}
			if d.Ratio == nil {
				return nil, fmt.Errorf("%w: results[%d].data[%d] missing ratio", trend.ErrMalformedResponse, i, j)
			}
			result.Data = append(result.Data, DataPoint{Period: *d.Period, Ratio: *d.Ratio})
		}
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

func snippet(body []byte) string {
	return string(body[:min(len(body), 200)])
}
