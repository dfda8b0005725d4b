// Package game holds the domain model for a team's schedule: the normalized
// game record, season-year resolution, and the stable per-game identity that
// calendar consumers use to update entries across runs.
//
// Raw schedule items arrive with inconsistent key naming and casing, so each
// logical field is probed through an ordered alias list. Items missing a
// date, a time, or both team names are rejected with a descriptive reason;
// the caller logs the reason and continues with the remaining items.
package game
