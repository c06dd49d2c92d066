package domain

// ReasonBelowThreshold is set on a pills response when the query's total
// hit count is too small to sample meaningfully.
const ReasonBelowThreshold = "below_threshold"

// PillsResponse is the payload of GET /api/smart-pills. It is also the
// cache value, so the shape must stay stable across cache reads.
type PillsResponse struct {
	Query        string `json:"query"`
	TotalResults int    `json:"totalResults"`
	Pills        []Pill `json:"pills"`
	Cached       bool   `json:"cached"`
	Reason       string `json:"reason,omitempty"`
	GeneratedAt  string `json:"generatedAt,omitempty"`
	SampleSize   int    `json:"sampleSize,omitempty"`
}

// PopularQuery is one entry of the static popular-queries catalogue.
type PopularQuery struct {
	Query  string `json:"query"`
	NbHits int    `json:"nbHits"`
}
