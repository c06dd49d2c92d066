// Package vocab holds the hand-curated card-hobby vocabulary: keywords
// matched against result titles, the known-manufacturer set, and the
// icon/label/color lookup tables used when building pills. The lists are
// fixed data, not derived from the index.
package vocab

// Keywords are matched as lowercase substrings of result titles.
// Multi-word entries ("short print", "upper deck") match across spaces.
var Keywords = []string{
	"rookie", "auto", "autograph", "chrome", "prizm", "refractor", "numbered",
	"jersey", "patch", "parallel", "insert", "rookie card", "rc", "base",
	"short print", "sp", "exclusive", "rpa", "serial",
	"optic", "select", "mosaic", "donruss", "topps", "panini", "fleer",
	"upper deck", "bowman", "certified", "limited", "silver", "gold", "holo",
	"shimmer", "wave", "cracked ice", "stained glass", "signed", "mem",
	"memorabilia", "/99", "/25", "/10", "/5", "/1", "1/1",
}

// Manufacturers are the brand values counted during extraction. Any other
// brand string (typically a player name leaking into the field) is ignored.
var Manufacturers = map[string]bool{
	"Topps":        true,
	"Panini":       true,
	"Upper Deck":   true,
	"Fleer":        true,
	"Donruss":      true,
	"Bowman":       true,
	"Score":        true,
	"Leaf":         true,
	"Pacific":      true,
	"Skybox":       true,
	"Stadium Club": true,
	"Select":       true,
}

var serviceIcons = map[string]string{
	"PSA": "🏆",
	"BGS": "💎",
	"SGC": "⭐",
	"CGC": "🎯",
}

// ServiceIcon returns the glyph for a grading service, with a generic
// fallback for services outside the big four.
func ServiceIcon(service string) string {
	if icon, ok := serviceIcons[service]; ok {
		return icon
	}
	return "📋"
}

var keywordIcons = map[string]string{
	"rookie":        "⭐",
	"rookie card":   "⭐",
	"rc":            "⭐",
	"auto":          "✍️",
	"autograph":     "✍️",
	"signed":        "✍️",
	"rpa":           "✍️",
	"chrome":        "✨",
	"prizm":         "🌈",
	"optic":         "🔮",
	"select":        "🎯",
	"mosaic":        "🎨",
	"refractor":     "💫",
	"numbered":      "🔢",
	"serial":        "🔢",
	"jersey":        "👕",
	"patch":         "🧩",
	"mem":           "🎁",
	"memorabilia":   "🎁",
	"parallel":      "📊",
	"insert":        "🎴",
	"base":          "📇",
	"short print":   "💎",
	"sp":            "💎",
	"exclusive":     "👑",
	"limited":       "⭐",
	"certified":     "✅",
	"silver":        "🥈",
	"gold":          "🥇",
	"holo":          "✨",
	"/99":           "🔢",
	"/25":           "💎",
	"/10":           "👑",
	"/5":            "💫",
	"/1":            "🏆",
	"1/1":           "🏆",
}

// KeywordIcon returns the glyph for a keyword pill.
func KeywordIcon(keyword string) string {
	if icon, ok := keywordIcons[keyword]; ok {
		return icon
	}
	return "🎯"
}

var keywordLabels = map[string]string{
	"rookie":        "Rookie Cards",
	"rookie card":   "Rookie Cards",
	"rc":            "Rookie Cards",
	"auto":          "Autographs",
	"autograph":     "Autographs",
	"signed":        "Signed",
	"rpa":           "Rookie Patch Auto",
	"chrome":        "Chrome",
	"prizm":         "Prizm",
	"optic":         "Optic",
	"select":        "Select",
	"mosaic":        "Mosaic",
	"donruss":       "Donruss",
	"topps":         "Topps",
	"panini":        "Panini",
	"fleer":         "Fleer",
	"upper deck":    "Upper Deck",
	"bowman":        "Bowman",
	"refractor":     "Refractors",
	"numbered":      "Numbered",
	"serial":        "Serial Numbered",
	"jersey":        "Jersey Cards",
	"patch":         "Patch Cards",
	"mem":           "Memorabilia",
	"memorabilia":   "Memorabilia",
	"parallel":      "Parallels",
	"insert":        "Inserts",
	"base":          "Base Cards",
	"short print":   "Short Prints",
	"sp":            "Short Prints",
	"exclusive":     "Exclusives",
	"limited":       "Limited",
	"certified":     "Certified",
	"silver":        "Silver",
	"gold":          "Gold",
	"holo":          "Holo",
	"shimmer":       "Shimmer",
	"wave":          "Wave",
	"cracked ice":   "Cracked Ice",
	"stained glass": "Stained Glass",
	"/99":           "Numbered /99",
	"/25":           "Numbered /25",
	"/10":           "Numbered /10",
	"/5":            "Numbered /5",
	"/1":            "Numbered /1",
	"1/1":           "One of One",
}

// KeywordLabel returns the display label for a keyword pill. Unmapped
// keywords get a capitalized first letter rather than failing.
func KeywordLabel(keyword string) string {
	if label, ok := keywordLabels[keyword]; ok {
		return label
	}
	if keyword == "" {
		return ""
	}
	return capitalize(keyword)
}

var keywordColors = map[string]string{
	"rookie":      "blue",
	"rookie card": "blue",
	"rc":          "blue",
	"auto":        "purple",
	"autograph":   "purple",
	"rpa":         "purple",
	"chrome":      "blue",
	"prizm":       "blue",
	"refractor":   "blue",
	"numbered":    "amber",
	"serial":      "amber",
	"jersey":      "green",
	"patch":       "green",
}

// KeywordColor returns the color tag for a keyword pill.
func KeywordColor(keyword string) string {
	if color, ok := keywordColors[keyword]; ok {
		return color
	}
	return "gray"
}

func capitalize(s string) string {
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
