package domain

// Operator is the comparison semantics of a pill filter.
type Operator string

const (
	// OpEquals is an exact-match filter against an indexed attribute.
	OpEquals Operator = "="
	// OpContains folds the pill value into the free-text query instead of a filter.
	OpContains Operator = "contains"
	// OpRange is a numeric range filter (currentPrice only).
	OpRange Operator = "range"
)

// Filter describes what a pill does when toggled: attribute + value + operator.
// Value is string, float64, or bool depending on the attribute.
type Filter struct {
	Attribute string   `json:"attribute"`
	Value     any      `json:"value"`
	Operator  Operator `json:"operator,omitempty"`
}

// IsContains reports whether the filter must be folded into the query text.
func (f Filter) IsContains() bool { return f.Operator == OpContains }

// Pill is a suggested quick filter derived from feature frequency in a
// sample of search results. Count is provisional (0) until enrichment
// replaces it with an exact hit count.
type Pill struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
	Count int     `json:"count"`
	Filter Filter `json:"filter"`
	Color string  `json:"color"`
	Score float64 `json:"score"`
}
