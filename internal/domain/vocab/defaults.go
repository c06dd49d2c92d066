package vocab

import "github.com/slabstack/smartpills/internal/domain"

// DefaultPills is the fixed catalogue evaluated for the empty query:
// the four grading services, the three surfaced grade tiers, and three
// price bands. Each candidate gets one count lookup; only candidates
// with a nonzero count are returned.
func DefaultPills() []domain.Pill {
	return []domain.Pill{
		{ID: "service-psa", Label: "PSA", Icon: "🏆", Color: "green",
			Filter: domain.Filter{Attribute: "gradingService", Value: "PSA", Operator: domain.OpEquals}, Score: 1},
		{ID: "service-bgs", Label: "BGS", Icon: "💎", Color: "green",
			Filter: domain.Filter{Attribute: "gradingService", Value: "BGS", Operator: domain.OpEquals}, Score: 1},
		{ID: "service-cgc", Label: "CGC", Icon: "🎯", Color: "green",
			Filter: domain.Filter{Attribute: "gradingService", Value: "CGC", Operator: domain.OpEquals}, Score: 1},
		{ID: "service-sgc", Label: "SGC", Icon: "⭐", Color: "green",
			Filter: domain.Filter{Attribute: "gradingService", Value: "SGC", Operator: domain.OpEquals}, Score: 1},
		{ID: "grade-10", Label: "Grade 10", Icon: "🏆", Color: "green",
			Filter: domain.Filter{Attribute: "grade", Value: float64(10), Operator: domain.OpEquals}, Score: 1},
		{ID: "grade-9.5", Label: "Grade 9.5", Icon: "⭐", Color: "green",
			Filter: domain.Filter{Attribute: "grade", Value: 9.5, Operator: domain.OpEquals}, Score: 1},
		{ID: "grade-9", Label: "Grade 9", Icon: "⭐", Color: "green",
			Filter: domain.Filter{Attribute: "grade", Value: float64(9), Operator: domain.OpEquals}, Score: 1},
		{ID: "price-0-100", Label: "$0-100", Icon: "💰", Color: "amber",
			Filter: domain.Filter{Attribute: "currentPrice", Value: "$0-100", Operator: domain.OpRange}, Score: 1},
		{ID: "price-100-500", Label: "$100-500", Icon: "💰", Color: "amber",
			Filter: domain.Filter{Attribute: "currentPrice", Value: "$100-500", Operator: domain.OpRange}, Score: 1},
		{ID: "price-1000plus", Label: "$1000+", Icon: "💰", Color: "amber",
			Filter: domain.Filter{Attribute: "currentPrice", Value: "$1000+", Operator: domain.OpRange}, Score: 1},
	}
}

// PopularQueries is the static catalogue behind GET /api/popular-queries.
// Hit counts are curated snapshots, not live numbers.
func PopularQueries() []domain.PopularQuery {
	return []domain.PopularQuery{
		{Query: "pokemon", NbHits: 378001},
		{Query: "ohtani", NbHits: 6000},
		{Query: "michael jordan", NbHits: 20479},
		{Query: "charizard", NbHits: 15140},
		{Query: "lebron james", NbHits: 18500},
		{Query: "tom brady", NbHits: 12000},
		{Query: "kobe bryant", NbHits: 5682},
		{Query: "messi", NbHits: 5215},
	}
}
