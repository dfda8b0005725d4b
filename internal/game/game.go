package game

import (
	"fmt"
	"strings"
	"time"
)

// Timezone is the civil time zone all game times are expressed in. The
// source publishes local wall-clock times for Toronto-area rinks.
const Timezone = "America/Toronto"

// uidHost suffixes every UID, namespacing it to the source league.
const uidHost = "truenorthhockey.com"

// Game is one normalized schedule entry.
type Game struct {
	Start    time.Time
	HomeTeam string
	AwayTeam string
	Rink     string

	// Scores are present only for completed games; nil means not yet
	// played or unknown, which is distinct from a 0-0 final.
	HomeScore *int
	AwayScore *int
}

// UID returns the stable calendar identifier for the game. It depends only
// on the calendar date and the two team names — never the time of day,
// rink, score, or run timestamp — so a later run that adds a score or moves
// the start time updates the same calendar entry instead of duplicating it.
func (g *Game) UID() string {
	key := fmt.Sprintf("%s-%s-%s", g.Start.Format("20060102"), g.HomeTeam, g.AwayTeam)
	return strings.ReplaceAll(key, " ", "_") + "@" + uidHost
}
