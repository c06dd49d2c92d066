package sdk

// Pill is one quick-filter suggestion.
type Pill struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Icon   string  `json:"icon"`
	Count  int     `json:"count"`
	Filter Filter  `json:"filter"`
	Color  string  `json:"color,omitempty"`
	Score  float64 `json:"score"`
}

// Filter is the structured refinement a pill applies.
type Filter struct {
	Attribute string `json:"attribute"`
	Value     any    `json:"value"`
	Operator  string `json:"operator"`
}

// PillsResponse is the payload of the smart-pills endpoint.
type PillsResponse struct {
	Query        string `json:"query"`
	TotalResults int    `json:"totalResults"`
	Pills        []Pill `json:"pills"`
	Cached       bool   `json:"cached"`
	Reason       string `json:"reason,omitempty"`
	GeneratedAt  string `json:"generatedAt,omitempty"`
	SampleSize   int    `json:"sampleSize,omitempty"`
}

// PopularQuery is one entry of the popular-queries catalogue.
type PopularQuery struct {
	Query  string `json:"query"`
	NbHits int    `json:"nbHits"`
}

// SavedSearch is a server-side saved search.
type SavedSearch struct {
	ID            string `json:"id"`
	Query         string `json:"query"`
	LastSeenID    string `json:"lastSeenId,omitempty"`
	LastSeenCount int    `json:"lastSeenCount"`
	CreatedAt     int64  `json:"createdAt"`
}

// WatchResult is the outcome of one saved-search check. Saturated means
// more than a full page of new items arrived and NewItems is a floor,
// not an exact count.
type WatchResult struct {
	NewItems  int  `json:"newItems"`
	Saturated bool `json:"saturated"`
	Total     int  `json:"total"`
}

// Health is the server health report.
type Health struct {
	Status       string            `json:"status"`
	CacheEnabled bool              `json:"cacheEnabled"`
	Checks       map[string]string `json:"checks"`
	Timestamp    string            `json:"timestamp"`
}
