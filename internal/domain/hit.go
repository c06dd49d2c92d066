package domain

// Hit is a single search result from the hosted index. All fields except
// Title and CurrentPrice are optional; absent fields stay zero/nil.
// Hits are read-only inputs to feature extraction.
type Hit struct {
	ObjectID       string   `json:"objectID"`
	Title          string   `json:"title"`
	CurrentPrice   float64  `json:"currentPrice"`
	GradingService string   `json:"gradingService,omitempty"`
	Grade          *float64 `json:"grade,omitempty"`
	Year           *int     `json:"year,omitempty"`
	Brand          string   `json:"brand,omitempty"`
}
