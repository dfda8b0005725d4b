package game

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// fallStartMonth splits the season: games in this month or later belong to
// the fall year, earlier months to the spring year.
const fallStartMonth = time.September

// seasonLabelPattern matches a two-digit/two-digit season label like
// "25/26". Word boundaries keep it from matching inside longer digit runs.
var seasonLabelPattern = regexp.MustCompile(`\b(\d{2})/(\d{2})\b`)

// SeasonYears maps a season label to its two calendar years. A "25/26"
// season has FallYear 2025 and SpringYear 2026.
type SeasonYears struct {
	FallYear   int
	SpringYear int
}

// ParseSeasonLabel extracts the season years from the page text. The first
// label whose years are consecutive wins; pairs like "12/31" that happen to
// match the digit pattern are passed over.
func ParseSeasonLabel(text string) (SeasonYears, bool) {
	for _, m := range seasonLabelPattern.FindAllStringSubmatch(text, -1) {
		fall, _ := strconv.Atoi(m[1])
		spring, _ := strconv.Atoi(m[2])
		if spring == fall+1 {
			return SeasonYears{FallYear: 2000 + fall, SpringYear: 2000 + spring}, true
		}
	}
	return SeasonYears{}, false
}

// SeasonFromDate derives the season covering now, for when the page carries
// no recognizable label: from September onward the current year is the fall
// year, otherwise it is the spring year of a season that started last fall.
func SeasonFromDate(now time.Time) SeasonYears {
	if now.Month() >= fallStartMonth {
		return SeasonYears{FallYear: now.Year(), SpringYear: now.Year() + 1}
	}
	return SeasonYears{FallYear: now.Year() - 1, SpringYear: now.Year()}
}

// YearFor resolves which of the season's two calendar years a game in the
// given month falls in.
func (s SeasonYears) YearFor(month time.Month) int {
	if month >= fallStartMonth {
		return s.FallYear
	}
	return s.SpringYear
}

// String renders the season the way the source labels it, e.g. "2025/2026".
func (s SeasonYears) String() string {
	return fmt.Sprintf("%d/%d", s.FallYear, s.SpringYear)
}
