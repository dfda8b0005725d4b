package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Saucer42/hockey-schedule-ical/internal/game"
)

// Options configures calendar generation.
type Options struct {
	// TeamName feeds the calendar name and product identifier.
	TeamName string
	// GameDuration is the length of each event. Zero or negative means
	// the default one hour.
	GameDuration time.Duration
}

// torontoTimezone is the RFC 5545 definition for America/Toronto: Eastern
// time with the second-Sunday-in-March / first-Sunday-in-November rules.
// DTSTART/DTEND reference it through their TZID parameter, which keeps the
// published times as local wall-clock values instead of UTC conversions.
var torontoTimezone = []string{
	"BEGIN:VTIMEZONE",
	"TZID:" + game.Timezone,
	"BEGIN:DAYLIGHT",
	"TZOFFSETFROM:-0500",
	"TZOFFSETTO:-0400",
	"TZNAME:EDT",
	"DTSTART:19700308T020000",
	"RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=2SU",
	"END:DAYLIGHT",
	"BEGIN:STANDARD",
	"TZOFFSETFROM:-0400",
	"TZOFFSETTO:-0500",
	"TZNAME:EST",
	"DTSTART:19701101T020000",
	"RRULE:FREQ=YEARLY;BYMONTH=11;BYDAY=1SU",
	"END:STANDARD",
	"END:VTIMEZONE",
}

// Generate serializes games into an iCalendar document. The emitter owns
// output order and identity: duplicate UIDs collapse to the last occurrence
// and the survivors are emitted chronologically. A run with zero games still
// yields a valid, empty calendar.
func Generate(games []*game.Game, opts Options) string {
	games = Prepare(games)

	duration := opts.GameDuration
	if duration <= 0 {
		duration = time.Hour
	}

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:-//%s//truenorthhockey.com//EN\r\n", escapeICS(productName(opts.TeamName))))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(calendarName(opts.TeamName))))
	ics.WriteString(fmt.Sprintf("X-WR-TIMEZONE:%s\r\n", game.Timezone))
	ics.WriteString(fmt.Sprintf("X-WR-CALDESC:%s\r\n", escapeICS(calendarDescription(opts.TeamName))))

	for _, line := range torontoTimezone {
		ics.WriteString(line)
		ics.WriteString("\r\n")
	}

	for _, g := range games {
		writeEvent(&ics, g, duration)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// Prepare returns the games in emit order: duplicate UIDs collapsed to the
// last occurrence in input order, then sorted chronologically. Exposed so
// the caller can report exactly what Generate serializes.
func Prepare(games []*game.Game) []*game.Game {
	byUID := make(map[string]*game.Game, len(games))
	for _, g := range games {
		byUID[g.UID()] = g // last write wins
	}

	out := make([]*game.Game, 0, len(byUID))
	for _, g := range byUID {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		return gameBefore(out[i], out[j])
	})
	return out
}

// gameBefore orders games chronologically, breaking start-time ties by
// matchup so the output is stable run to run.
func gameBefore(a, b *game.Game) bool {
	if !a.Start.Equal(b.Start) {
		return a.Start.Before(b.Start)
	}
	if a.HomeTeam != b.HomeTeam {
		return a.HomeTeam < b.HomeTeam
	}
	return a.AwayTeam < b.AwayTeam
}

// writeEvent appends one VEVENT block for a game
func writeEvent(ics *strings.Builder, g *game.Game, duration time.Duration) {
	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", g.UID()))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatUTC(time.Now())))
	ics.WriteString(fmt.Sprintf("DTSTART;TZID=%s:%s\r\n", game.Timezone, formatLocal(g.Start)))
	ics.WriteString(fmt.Sprintf("DTEND;TZID=%s:%s\r\n", game.Timezone, formatLocal(g.Start.Add(duration))))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summaryText(g))))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(descriptionText(g))))
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(locationText(g))))
	ics.WriteString("END:VEVENT\r\n")
}

// summaryText builds the event title: "<home> vs <away> | <rink>", dropping
// the rink segment when the rink is unknown.
func summaryText(g *game.Game) string {
	s := fmt.Sprintf("%s vs %s", displayName(g.HomeTeam), displayName(g.AwayTeam))
	if g.Rink != "" {
		s += " | " + g.Rink
	}
	return s
}

// descriptionText lists the matchup details line by line. The final score
// appears only when both scores are present; absence means the game has not
// been played, not that it ended 0-0.
func descriptionText(g *game.Game) string {
	lines := []string{
		"Home: " + displayName(g.HomeTeam),
		"Away: " + displayName(g.AwayTeam),
	}
	if g.HomeScore != nil && g.AwayScore != nil {
		lines = append(lines, fmt.Sprintf("Final: %s %d - %d %s",
			displayName(g.HomeTeam), *g.HomeScore, *g.AwayScore, displayName(g.AwayTeam)))
	}
	if g.Rink != "" {
		lines = append(lines, "Rink: "+g.Rink)
	}
	return strings.Join(lines, "\n")
}

func locationText(g *game.Game) string {
	if g.Rink == "" {
		return "TBD"
	}
	return g.Rink
}

// displayName substitutes the placeholder the grid uses for unannounced teams
func displayName(team string) string {
	if team == "" {
		return "TBD"
	}
	return team
}

func productName(team string) string {
	return strings.TrimSpace(team + " Hockey")
}

func calendarName(team string) string {
	return strings.TrimSpace(team + " Hockey Schedule")
}

func calendarDescription(team string) string {
	if team == "" {
		return "Game schedule - True North Hockey"
	}
	return fmt.Sprintf("Game schedule for the %s - True North Hockey", team)
}

// formatLocal renders the wall-clock form used alongside a TZID parameter
func formatLocal(t time.Time) string {
	return t.Format("20060102T150405")
}

// formatUTC renders the absolute form used by DTSTAMP
func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
