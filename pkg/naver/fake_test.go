package naver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"
)

type recordedRequest struct {
	Method  string
	URI     string
	Headers map[string]string
	Body    SearchRequest
}

// fakeDoer answers DataLab requests from an in-memory series per group name
type fakeDoer struct {
	series   map[string][]DataPoint
	status   map[string]int
	rawBody  string
	err      error
	requests []recordedRequest
}

func newFakeDoer(series map[string][]DataPoint) *fakeDoer {
	return &fakeDoer{series: series, status: map[string]int{}}
}

func (f *fakeDoer) Do(req *fasthttp.Request, resp *fasthttp.Response) error {
	var body SearchRequest
	if err := json.Unmarshal(req.Body(), &body); err != nil {
		return fmt.Errorf("fake doer: bad request body: %w", err)
	}

	f.requests = append(f.requests, recordedRequest{
		Method:  string(req.Header.Method()),
		URI:     req.URI().String(),
		Headers: map[string]string{
			"X-Naver-Client-Id":     string(req.Header.Peek("X-Naver-Client-Id")),
			"X-Naver-Client-Secret": string(req.Header.Peek("X-Naver-Client-Secret")),
			"Content-Type":          string(req.Header.ContentType()),
		},
		Body: body,
	})

	if f.err != nil {
		return f.err
	}

	if f.rawBody != "" {
		resp.SetStatusCode(fasthttp.StatusOK)
		resp.SetBodyString(f.rawBody)
		return nil
	}

	groupName := ""
	if len(body.KeywordGroups) > 0 {
		groupName = body.KeywordGroups[0].GroupName
	}
	if code, ok := f.status[groupName]; ok {
		resp.SetStatusCode(code)
		resp.SetBodyString(`{"errorMessage":"rejected","errorCode":"024"}`)
		return nil
	}

	results := make([]Result, 0, len(body.KeywordGroups))
	for _, g := range body.KeywordGroups {
		data := f.series[g.GroupName]
		if data == nil {
			data = []DataPoint{}
		}
		results = append(results, Result{Title: g.GroupName, Keywords: g.Keywords, Data: data})
	}

	out, _ := json.Marshal(SearchResponse{
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
		TimeUnit:  body.TimeUnit,
		Results:   results,
	})
	resp.SetStatusCode(fasthttp.StatusOK)
	resp.SetBody(out)
	return nil
}

func monthly(ratios ...float64) []DataPoint {
	points := make([]DataPoint, 0, len(ratios))
	for i, r := range ratios {
		points = append(points, DataPoint{Period: fmt.Sprintf("2024-%02d-01", i+1), Ratio: r})
	}
	return points
}

var errDialFailed = errors.New("dial tcp 10.0.0.1:443: connection refused")

func joinKeywords(groups []KeywordGroup) string {
	var parts []string
	for _, g := range groups {
		parts = append(parts, g.GroupName+"="+strings.Join(g.Keywords, "|"))
	}
	return strings.Join(parts, ",")
}
