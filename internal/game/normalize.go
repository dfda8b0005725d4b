package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawItem is one schedule record exactly as the source returned it. Keys
// vary in casing and naming across deployments and values may be strings or
// JSON numbers; treated as untrusted input.
type RawItem map[string]interface{}

// Alias tables: the known spellings for each logical field, probed in order.
var (
	dateAliases      = []string{"gameDate", "GameDate", "date", "Date", "gamedate"}
	timeAliases      = []string{"gameTime", "GameTime", "time", "Time", "gametime"}
	homeAliases      = []string{"homeTeamName", "HomeTeamName", "homeTeam", "HomeTeam", "home", "Home"}
	awayAliases      = []string{"awayTeamName", "AwayTeamName", "awayTeam", "AwayTeam", "away", "Away", "visitorTeamName", "VisitorTeamName"}
	rinkAliases      = []string{"rinkName", "RinkName", "rink", "Rink", "arena", "Arena", "location", "Location"}
	homeScoreAliases = []string{"homeScore", "HomeScore", "homeTeamScore"}
	awayScoreAliases = []string{"awayScore", "AwayScore", "awayTeamScore", "visitorScore"}
)

// lookup returns the first present alias's value rendered as a trimmed
// string. Scores arrive as JSON numbers, so those are formatted back to
// their shortest decimal form.
func (r RawItem) lookup(aliases []string) (string, bool) {
	for _, key := range aliases {
		val, ok := r[key]
		if !ok || val == nil {
			continue
		}
		switch v := val.(type) {
		case string:
			return strings.TrimSpace(v), true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		default:
			return strings.TrimSpace(fmt.Sprint(v)), true
		}
	}
	return "", false
}

// Normalizer turns raw schedule items into Games, resolving yearless dates
// against one season's year mapping.
type Normalizer struct {
	season SeasonYears
	loc    *time.Location
}

// NewNormalizer builds a Normalizer for the given season. It fails only when
// the timezone database has no entry for the Eastern zone.
func NewNormalizer(season SeasonYears) (*Normalizer, error) {
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading %s timezone: %w", Timezone, err)
	}
	return &Normalizer{season: season, loc: loc}, nil
}

// Normalize maps one raw item to a Game. A non-nil error is a skip reason:
// the item is incomplete or malformed, and the caller should log it and
// continue with the remaining items.
func (n *Normalizer) Normalize(raw RawItem) (*Game, error) {
	dateText, _ := raw.lookup(dateAliases)
	if dateText == "" {
		return nil, fmt.Errorf("no date field")
	}
	timeText, _ := raw.lookup(timeAliases)
	if timeText == "" {
		return nil, fmt.Errorf("no time field")
	}

	home, _ := raw.lookup(homeAliases)
	away, _ := raw.lookup(awayAliases)
	if home == "" && away == "" {
		return nil, fmt.Errorf("missing team names")
	}

	parsed, hasYear, err := parseGameDate(dateText)
	if err != nil {
		return nil, err
	}
	hour, minute, err := parseGameTime(timeText)
	if err != nil {
		return nil, err
	}

	year := parsed.Year()
	if !hasYear {
		year = n.season.YearFor(parsed.Month())
	}

	rink, _ := raw.lookup(rinkAliases)

	g := &Game{
		// The source's wall-clock time is already local to the Eastern
		// zone; attach it, don't convert.
		Start:    time.Date(year, parsed.Month(), parsed.Day(), hour, minute, 0, 0, n.loc),
		HomeTeam: home,
		AwayTeam: away,
		Rink:     rink,
	}

	// Scores travel as a pair: a completed game has both, anything else
	// has neither.
	homeScoreText, _ := raw.lookup(homeScoreAliases)
	awayScoreText, _ := raw.lookup(awayScoreAliases)
	if homeScoreText != "" && awayScoreText != "" {
		hs, errHome := strconv.Atoi(homeScoreText)
		as, errAway := strconv.Atoi(awayScoreText)
		if errHome == nil && errAway == nil {
			g.HomeScore = &hs
			g.AwayScore = &as
		}
	}

	return g, nil
}
