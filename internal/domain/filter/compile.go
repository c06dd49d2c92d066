// Package filter compiles pill filter descriptors into the hosted index's
// filter-expression syntax.
package filter

import (
	"fmt"

	"github.com/slabstack/smartpills/internal/domain"
)

// Canonical price bucket labels and their compiled range expressions.
// The synthesizer only ever emits these four labels.
var priceRanges = map[string]string{
	"$0-100":     "currentPrice < 100",
	"$100-500":   "currentPrice >= 100 AND currentPrice < 500",
	"$500-1000":  "currentPrice >= 500 AND currentPrice < 1000",
	"$1000+":     "currentPrice >= 1000",
}

// Compile translates a pill filter into a filter expression for the hosted
// index. A contains filter compiles to the empty string: its value must be
// folded into the query text by the caller, never expressed as a filter.
// Compile is a pure mapping; identical input yields identical output.
func Compile(f domain.Filter) (string, error) {
	if b, ok := f.Value.(bool); ok {
		return fmt.Sprintf("%s:%t", f.Attribute, b), nil
	}

	switch f.Operator {
	case domain.OpContains:
		return "", nil
	case domain.OpRange:
		if f.Attribute != "currentPrice" {
			return "", fmt.Errorf("%w: range on %q", domain.ErrUnsupportedFilter, f.Attribute)
		}
		label := fmt.Sprintf("%v", f.Value)
		expr, ok := priceRanges[label]
		if !ok {
			return "", fmt.Errorf("%w: unknown price bucket %q", domain.ErrUnsupportedFilter, label)
		}
		return expr, nil
	}

	if s, ok := f.Value.(string); ok {
		return fmt.Sprintf("%s:%q", f.Attribute, s), nil
	}
	// Numeric values print without quotes; %v drops the trailing .0 on
	// whole floats, matching the index's numeric literal syntax.
	return fmt.Sprintf("%s:%v", f.Attribute, f.Value), nil
}
