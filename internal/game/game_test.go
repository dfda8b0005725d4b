package game

import (
	"strings"
	"testing"
	"time"
)

func TestGame_UID(t *testing.T) {
	eastern := easternLocation(t)
	start := time.Date(2025, time.September, 16, 21, 15, 0, 0, eastern)

	g := &Game{Start: start, HomeTeam: "Beavers", AwayTeam: "Mustangs"}

	want := "20250916-Beavers-Mustangs@truenorthhockey.com"
	if got := g.UID(); got != want {
		t.Errorf("UID() = %q, want %q", got, want)
	}
}

func TestGame_UID_Deterministic(t *testing.T) {
	eastern := easternLocation(t)
	build := func() *Game {
		return &Game{
			Start:    time.Date(2025, time.September, 16, 21, 15, 0, 0, eastern),
			HomeTeam: "Beavers",
			AwayTeam: "Mustangs",
			Rink:     "Rinx 3",
		}
	}

	if build().UID() != build().UID() {
		t.Error("UID() should be identical for identical games across constructions")
	}
}

func TestGame_UID_IgnoresVolatileFields(t *testing.T) {
	eastern := easternLocation(t)
	three, two := 3, 2

	scheduled := &Game{
		Start:    time.Date(2025, time.September, 16, 19, 0, 0, 0, eastern),
		HomeTeam: "Beavers",
		AwayTeam: "Mustangs",
		Rink:     "Rinx 1",
	}
	// Same matchup later: the time slid, the rink moved, the score arrived.
	played := &Game{
		Start:     time.Date(2025, time.September, 16, 21, 15, 0, 0, eastern),
		HomeTeam:  "Beavers",
		AwayTeam:  "Mustangs",
		Rink:      "Rinx 3",
		HomeScore: &three,
		AwayScore: &two,
	}

	if scheduled.UID() != played.UID() {
		t.Errorf("UID should survive score/rink/time updates: %q != %q",
			scheduled.UID(), played.UID())
	}
}

func TestGame_UID_DistinguishesGames(t *testing.T) {
	eastern := easternLocation(t)
	base := Game{
		Start:    time.Date(2025, time.September, 16, 21, 15, 0, 0, eastern),
		HomeTeam: "Beavers",
		AwayTeam: "Mustangs",
	}

	otherDay := base
	otherDay.Start = base.Start.AddDate(0, 0, 7)
	if base.UID() == otherDay.UID() {
		t.Error("games a week apart should have different UIDs")
	}

	otherOpponent := base
	otherOpponent.AwayTeam = "Rangers"
	if base.UID() == otherOpponent.UID() {
		t.Error("different matchups should have different UIDs")
	}

	swapped := base
	swapped.HomeTeam, swapped.AwayTeam = base.AwayTeam, base.HomeTeam
	if base.UID() == swapped.UID() {
		t.Error("home/away orientation is part of the identity")
	}
}

func TestGame_UID_NoSpaces(t *testing.T) {
	eastern := easternLocation(t)
	g := &Game{
		Start:    time.Date(2025, time.September, 16, 21, 15, 0, 0, eastern),
		HomeTeam: "The Mighty Beavers",
		AwayTeam: "Old Mustangs",
	}

	uid := g.UID()
	if strings.Contains(uid, " ") {
		t.Errorf("UID contains spaces: %q", uid)
	}
	if !strings.Contains(uid, "The_Mighty_Beavers") {
		t.Errorf("UID should underscore team names: %q", uid)
	}
	if !strings.HasSuffix(uid, "@truenorthhockey.com") {
		t.Errorf("UID missing host suffix: %q", uid)
	}
}
