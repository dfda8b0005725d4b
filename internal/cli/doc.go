// Package cli implements the command-line interface for hockey-schedule-ical.
//
// The cli package provides the Cobra-based CLI that runs the whole pipeline:
// it coordinates the config, scraper, game, calendar, and storage packages to
// fetch a team's schedule, normalize it, and write the iCal output file,
// then reports a run summary (text or JSON) on stdout. There are no
// subcommands or required arguments; one invocation is one publication run.
package cli
