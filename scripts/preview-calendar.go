package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Saucer42/hockey-schedule-ical/internal/calendar"
	"github.com/Saucer42/hockey-schedule-ical/internal/game"
)

// Generates a sample .ics file from made-up games so the calendar output can
// be eyeballed in a real calendar app without scraping anything.
func main() {
	eastern, err := time.LoadLocation(game.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading timezone: %v\n", err)
		os.Exit(1)
	}

	homeScore, awayScore := 4, 2
	games := []*game.Game{
		{
			Start:     time.Date(2025, time.September, 16, 21, 15, 0, 0, eastern),
			HomeTeam:  "Beavers",
			AwayTeam:  "Mustangs",
			Rink:      "Rinx 3",
			HomeScore: &homeScore,
			AwayScore: &awayScore,
		},
		{
			Start:    time.Date(2026, time.January, 10, 20, 0, 0, 0, eastern),
			HomeTeam: "Beavers",
			AwayTeam: "Norsemen",
			Rink:     "Rinx 2",
		},
	}

	icsContent := calendar.Generate(games, calendar.Options{
		TeamName:     "Beavers",
		GameDuration: time.Hour,
	})

	filename := "preview-schedule.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
