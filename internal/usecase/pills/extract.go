package pills

import (
	"strconv"
	"strings"

	"github.com/slabstack/smartpills/internal/domain"
	"github.com/slabstack/smartpills/internal/domain/vocab"
)

// Tally holds per-category frequency maps accumulated over one sample.
// It is built fresh per query and discarded after synthesis.
type Tally struct {
	Services map[string]int
	Grades   map[float64]int
	Keywords map[string]int
	Prices   map[string]int
	Years    map[string]int
	Brands   map[string]int
}

// Extract scans a sample of hits and tallies grading services, grades,
// title keywords, price buckets, issue years, and known manufacturers.
// Pure function of the sample: hits missing an optional field simply skip
// that category.
func Extract(hits []domain.Hit) Tally {
	t := Tally{
		Services: make(map[string]int),
		Grades:   make(map[float64]int),
		Keywords: make(map[string]int),
		Prices:   make(map[string]int),
		Years:    make(map[string]int),
		Brands:   make(map[string]int),
	}

	for _, hit := range hits {
		if hit.GradingService != "" {
			t.Services[strings.ToUpper(hit.GradingService)]++
		}

		if hit.Grade != nil {
			t.Grades[*hit.Grade]++
		}

		title := strings.ToLower(hit.Title)
		for _, keyword := range vocab.Keywords {
			if strings.Contains(title, keyword) {
				t.Keywords[keyword]++
			}
		}

		t.Prices[priceBucket(hit.CurrentPrice)]++

		if hit.Year != nil {
			t.Years[strconv.Itoa(*hit.Year)]++
		}

		if hit.Brand != "" && vocab.Manufacturers[hit.Brand] {
			t.Brands[hit.Brand]++
		}
	}

	return t
}

// priceBucket maps a price into one of the four canonical bands. A hit
// with no price lands in the lowest band, same as a zero price.
func priceBucket(price float64) string {
	switch {
	case price < 100:
		return "$0-100"
	case price < 500:
		return "$100-500"
	case price < 1000:
		return "$500-1000"
	default:
		return "$1000+"
	}
}
