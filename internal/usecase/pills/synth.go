package pills

import (
	"fmt"
	"sort"
	"strings"

	"github.com/slabstack/smartpills/internal/domain"
	"github.com/slabstack/smartpills/internal/domain/vocab"
)

const (
	// maxCandidates caps the pre-enrichment list.
	maxCandidates = 20

	// maxYearPills and maxBrandPills cap their categories before the
	// threshold check: only the most frequent values are worth a lookup.
	maxYearPills  = 3
	maxBrandPills = 3

	// minFrequency is the fraction of the sample a feature must reach
	// to become a candidate pill.
	minFrequency = 0.02
)

// Synthesize converts a feature tally into an ordered candidate pill list.
// Candidates carry a provisional count of 0; enrichment fills in exact
// counts later. The returned order is deterministic: score descending,
// pill ID ascending on ties.
func Synthesize(t Tally, sampleSize int) []domain.Pill {
	if sampleSize <= 0 {
		return nil
	}

	// Float comparison on purpose: a 2% threshold over a 100-row sample
	// must keep count==2, and truncation would change that for odd
	// sample sizes.
	minCount := float64(sampleSize) * minFrequency
	keep := func(count int) bool { return float64(count) >= minCount }
	score := func(count int) float64 { return float64(count) / float64(sampleSize) }

	var out []domain.Pill

	for service, count := range t.Services {
		if !keep(count) {
			continue
		}
		out = append(out, domain.Pill{
			ID:    "service-" + strings.ToLower(service),
			Label: service,
			Icon:  vocab.ServiceIcon(service),
			Color: "green",
			Filter: domain.Filter{
				Attribute: "gradingService", Value: service, Operator: domain.OpEquals,
			},
			Score: score(count),
		})
	}

	for grade, count := range t.Grades {
		// Only the grades collectors actually filter by. Everything
		// else observed in the sample is noise.
		if grade != 10 && grade != 9.5 && grade != 9 {
			continue
		}
		if !keep(count) {
			continue
		}
		icon := "⭐"
		if grade == 10 {
			icon = "🏆"
		}
		out = append(out, domain.Pill{
			ID:    fmt.Sprintf("grade-%v", grade),
			Label: fmt.Sprintf("Grade %v", grade),
			Icon:  icon,
			Color: "green",
			Filter: domain.Filter{
				Attribute: "grade", Value: grade, Operator: domain.OpEquals,
			},
			Score: score(count),
		})
	}

	for keyword, count := range t.Keywords {
		if !keep(count) {
			continue
		}
		out = append(out, domain.Pill{
			ID:    "keyword-" + strings.ReplaceAll(keyword, " ", "-"),
			Label: vocab.KeywordLabel(keyword),
			Icon:  vocab.KeywordIcon(keyword),
			Color: vocab.KeywordColor(keyword),
			Filter: domain.Filter{
				Attribute: "title", Value: keyword, Operator: domain.OpContains,
			},
			Score: score(count),
		})
	}

	for _, year := range topValues(t.Years, maxYearPills) {
		count := t.Years[year]
		if !keep(count) {
			continue
		}
		out = append(out, domain.Pill{
			ID:    "year-" + year,
			Label: year,
			Icon:  "📅",
			Color: "gray",
			Filter: domain.Filter{
				Attribute: "year", Value: year, Operator: domain.OpEquals,
			},
			Score: score(count),
		})
	}

	for _, brand := range topValues(t.Brands, maxBrandPills) {
		count := t.Brands[brand]
		if !keep(count) {
			continue
		}
		out = append(out, domain.Pill{
			ID:    "brand-" + strings.ReplaceAll(strings.ToLower(brand), " ", "-"),
			Label: brand,
			Icon:  "📇",
			Color: "blue",
			Filter: domain.Filter{
				Attribute: "brand", Value: brand, Operator: domain.OpEquals,
			},
			Score: score(count),
		})
	}

	for bucket, count := range t.Prices {
		if !keep(count) {
			continue
		}
		id := strings.ReplaceAll(bucket, "$", "")
		id = strings.ReplaceAll(id, "+", "plus")
		out = append(out, domain.Pill{
			ID:    "price-" + id,
			Label: bucket,
			Icon:  "💰",
			Color: "amber",
			Filter: domain.Filter{
				Attribute: "currentPrice", Value: bucket, Operator: domain.OpRange,
			},
			Score: score(count),
		})
	}

	sortByScore(out)
	if len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}

// topValues returns up to n keys with the highest counts, ordered by
// count descending then key ascending so map iteration order never
// leaks into the result.
func topValues(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// sortByScore orders pills by score descending with ID as tiebreak, so
// identical samples always produce identical ordered lists.
func sortByScore(ps []domain.Pill) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Score != ps[j].Score {
			return ps[i].Score > ps[j].Score
		}
		return ps[i].ID < ps[j].ID
	})
}
