package domain

// WatchPageSize is how many newest results a saved-search check scans for
// its watermark. A watermark missing from the page saturates the new-item
// count at WatchPageSize instead of reporting a precise number. This
// saturation is a known approximation, not an error.
const WatchPageSize = 100

// SavedSearch is a server-side saved search with its update watermark.
// LastSeenID is the newest result observed at the previous check; empty
// until the first check establishes a baseline.
type SavedSearch struct {
	ID            string `json:"id"`
	Query         string `json:"query"`
	LastSeenID    string `json:"lastSeenId,omitempty"`
	LastSeenCount int    `json:"lastSeenCount"`
	CreatedAt     int64  `json:"createdAt"` // unix millis
}

// WatchResult is the outcome of one saved-search update check.
type WatchResult struct {
	NewItems  int  `json:"newItems"`
	Saturated bool `json:"saturated"`
	Total     int  `json:"total"`
}
