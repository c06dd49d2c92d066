package pills

import (
	"strings"
	"testing"
)

func TestSynthesize_ThresholdDropsRareFeatures(t *testing.T) {
	tally := Tally{
		Services: map[string]int{"PSA": 30, "SGC": 1}, // 1 < 2% of 100
		Grades:   map[float64]int{},
		Keywords: map[string]int{},
		Prices:   map[string]int{},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	pills := Synthesize(tally, 100)

	if len(pills) != 1 {
		t.Fatalf("got %d pills, want 1: %+v", len(pills), pills)
	}
	if pills[0].ID != "service-psa" {
		t.Errorf("got %q", pills[0].ID)
	}
}

func TestSynthesize_ThresholdIsFloatNotTruncated(t *testing.T) {
	// 2% of 150 is 3.0: a count of 2 must be dropped even though
	// int(3.0*...) truncation games could keep it.
	tally := Tally{
		Services: map[string]int{"PSA": 3, "BGS": 2},
		Grades:   map[float64]int{},
		Keywords: map[string]int{},
		Prices:   map[string]int{},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	pills := Synthesize(tally, 150)

	if len(pills) != 1 || pills[0].ID != "service-psa" {
		t.Fatalf("got %+v, want only service-psa", pills)
	}
}

func TestSynthesize_GradesRestrictedToTopTiers(t *testing.T) {
	tally := Tally{
		Services: map[string]int{},
		Grades:   map[float64]int{10: 20, 9.5: 15, 9: 10, 8.5: 40, 8: 30, 7: 25},
		Keywords: map[string]int{},
		Prices:   map[string]int{},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	pills := Synthesize(tally, 100)

	if len(pills) != 3 {
		t.Fatalf("got %d grade pills, want 3: %+v", len(pills), pills)
	}
	for _, p := range pills {
		g, ok := p.Filter.Value.(float64)
		if !ok || (g != 9 && g != 9.5 && g != 10) {
			t.Errorf("unexpected grade pill %+v", p)
		}
	}
}

func TestSynthesize_YearAndBrandCappedAtThree(t *testing.T) {
	tally := Tally{
		Services: map[string]int{},
		Grades:   map[float64]int{},
		Keywords: map[string]int{},
		Prices:   map[string]int{},
		Years:    map[string]int{"2020": 10, "2021": 9, "2022": 8, "2023": 7, "2024": 6},
		Brands:   map[string]int{"Topps": 10, "Panini": 9, "Fleer": 8, "Bowman": 7},
	}

	pills := Synthesize(tally, 100)

	var years, brands int
	for _, p := range pills {
		switch {
		case strings.HasPrefix(p.ID, "year-"):
			years++
		case strings.HasPrefix(p.ID, "brand-"):
			brands++
		}
	}
	if years != 3 {
		t.Errorf("year pills = %d, want 3", years)
	}
	if brands != 3 {
		t.Errorf("brand pills = %d, want 3", brands)
	}

	// The caps keep the most frequent values.
	ids := make(map[string]bool)
	for _, p := range pills {
		ids[p.ID] = true
	}
	for _, want := range []string{"year-2020", "year-2021", "year-2022", "brand-topps", "brand-panini", "brand-fleer"} {
		if !ids[want] {
			t.Errorf("missing %s in %v", want, ids)
		}
	}
}

func TestSynthesize_ScoresInUnitInterval(t *testing.T) {
	tally := Tally{
		Services: map[string]int{"PSA": 100, "BGS": 2},
		Grades:   map[float64]int{10: 50},
		Keywords: map[string]int{"rookie": 73},
		Prices:   map[string]int{"$0-100": 25},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	for _, p := range Synthesize(tally, 100) {
		if p.Score <= 0 || p.Score > 1 {
			t.Errorf("pill %s score %v outside (0,1]", p.ID, p.Score)
		}
		if p.Count != 0 {
			t.Errorf("pill %s has provisional count %d, want 0", p.ID, p.Count)
		}
	}
}

func TestSynthesize_CappedAtTwenty(t *testing.T) {
	keywords := make(map[string]int)
	for _, k := range []string{
		"rookie", "auto", "chrome", "prizm", "refractor", "numbered", "jersey",
		"patch", "parallel", "insert", "base", "sp", "exclusive", "serial",
		"optic", "select", "mosaic", "gold", "silver", "holo", "wave", "mem",
	} {
		keywords[k] = 50
	}
	tally := Tally{
		Services: map[string]int{"PSA": 40, "BGS": 30},
		Grades:   map[float64]int{10: 20},
		Keywords: keywords,
		Prices:   map[string]int{"$0-100": 60, "$100-500": 30},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	pills := Synthesize(tally, 100)

	if len(pills) > maxCandidates {
		t.Errorf("got %d pills, cap is %d", len(pills), maxCandidates)
	}
}

func TestSynthesize_OrderedByScoreDescending(t *testing.T) {
	tally := Tally{
		Services: map[string]int{"PSA": 10},
		Grades:   map[float64]int{},
		Keywords: map[string]int{"rookie": 80, "auto": 40},
		Prices:   map[string]int{"$0-100": 60},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	pills := Synthesize(tally, 100)

	for i := 1; i < len(pills); i++ {
		if pills[i].Score > pills[i-1].Score {
			t.Fatalf("pills not sorted by score: %+v", pills)
		}
	}
	if pills[0].ID != "keyword-rookie" {
		t.Errorf("top pill = %s, want keyword-rookie", pills[0].ID)
	}
}

func TestSynthesize_DeterministicAcrossRuns(t *testing.T) {
	tally := Tally{
		Services: map[string]int{"PSA": 10, "BGS": 10, "SGC": 10, "CGC": 10},
		Grades:   map[float64]int{10: 10, 9.5: 10, 9: 10},
		Keywords: map[string]int{"rookie": 10, "auto": 10, "chrome": 10},
		Prices:   map[string]int{"$0-100": 10, "$100-500": 10},
		Years:    map[string]int{"2020": 10, "2021": 10, "2022": 10, "2023": 10},
		Brands:   map[string]int{"Topps": 10, "Panini": 10, "Fleer": 10, "Leaf": 10},
	}

	first := Synthesize(tally, 100)
	for run := 0; run < 10; run++ {
		again := Synthesize(tally, 100)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d != %d", run, len(again), len(first))
		}
		for i := range first {
			if again[i].ID != first[i].ID {
				t.Fatalf("run %d: order differs at %d: %s != %s", run, i, again[i].ID, first[i].ID)
			}
		}
	}
}

func TestSynthesize_PriceIDs(t *testing.T) {
	tally := Tally{
		Services: map[string]int{},
		Grades:   map[float64]int{},
		Keywords: map[string]int{},
		Prices:   map[string]int{"$0-100": 50, "$1000+": 50},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	ids := make(map[string]bool)
	for _, p := range Synthesize(tally, 100) {
		ids[p.ID] = true
	}
	if !ids["price-0-100"] || !ids["price-1000plus"] {
		t.Errorf("price IDs = %v", ids)
	}
}

func TestSynthesize_EmptyTally(t *testing.T) {
	tally := Extract(nil)
	if pills := Synthesize(tally, 100); len(pills) != 0 {
		t.Errorf("empty tally produced pills: %+v", pills)
	}
}

func TestSynthesize_KeywordPillsAreContains(t *testing.T) {
	tally := Tally{
		Services: map[string]int{},
		Grades:   map[float64]int{},
		Keywords: map[string]int{"short print": 10},
		Prices:   map[string]int{},
		Years:    map[string]int{},
		Brands:   map[string]int{},
	}

	pills := Synthesize(tally, 100)
	if len(pills) != 1 {
		t.Fatalf("got %+v", pills)
	}
	p := pills[0]
	if p.ID != "keyword-short-print" {
		t.Errorf("id = %q", p.ID)
	}
	if !p.Filter.IsContains() {
		t.Error("keyword pill must use the contains operator")
	}
	if p.Label != "Short Prints" {
		t.Errorf("label = %q", p.Label)
	}
}
