package naver

import "github.com/valyala/fasthttp"

const (
	DefaultEndpoint  = "https://openapi.naver.com/v1/datalab/search"
	DefaultTimeUnit  = "month"
	DefaultGroupName = "KEYWORDS"

	// MaxKeywordsPerGroup is the DataLab limit on keywords inside one group
	MaxKeywordsPerGroup = 20
)

// Doer executes a single HTTP exchange. *fasthttp.Client satisfies it.
type Doer interface {
	Do(req *fasthttp.Request, resp *fasthttp.Response) error
}

// Credentials are the DataLab application keys
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// SearchRequest is the DataLab search-trend request body
type SearchRequest struct {
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	TimeUnit      string         `json:"timeUnit"`
	KeywordGroups []KeywordGroup `json:"keywordGroups"`
}

// KeywordGroup is a named bundle of keywords returned as one series
type KeywordGroup struct {
	GroupName string   `json:"groupName"`
	Keywords  []string `json:"keywords"`
}

// SearchResponse is the validated DataLab response
type SearchResponse struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	TimeUnit  string   `json:"timeUnit"`
	Results   []Result `json:"results"`
}

// Result is the series for one keyword group
type Result struct {
	Title    string      `json:"title"`
	Keywords []string    `json:"keywords"`
	Data     []DataPoint `json:"data"`
}

// DataPoint is one period of a series
type DataPoint struct {
	Period string  `json:"period"`
	Ratio  float64 `json:"ratio"`
}
