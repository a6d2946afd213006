package models

// Requests for scheduling HTTP endpoints. Defined in domain for consistency and reuse.

type RecommendRequest struct {
	Platform string         `json:"platform" validate:"required"`
	Keyword  string         `json:"keyword"`
	Series   map[string]any `json:"series"`
	Window   int            `json:"window" default:"0" validate:"gte=0,lte=100"`
}

type RecommendBatchRequest struct {
	Items []RecommendRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

type BestTimesRequest struct {
	Platform string `query:"platform" json:"platform" validate:"required"`
}
