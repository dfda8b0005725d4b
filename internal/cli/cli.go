package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Saucer42/hockey-schedule-ical/internal/calendar"
	"github.com/Saucer42/hockey-schedule-ical/internal/config"
	"github.com/Saucer42/hockey-schedule-ical/internal/game"
	"github.com/Saucer42/hockey-schedule-ical/internal/logger"
	"github.com/Saucer42/hockey-schedule-ical/internal/scraper"
	"github.com/Saucer42/hockey-schedule-ical/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagDryRun  bool
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hockey-schedule-ical",
		Short: "Publish a True North Hockey team schedule as an iCal feed",
		Long: `Fetches a team's schedule from truenorthhockey.com and writes it as a
subscribable iCalendar (.ics) file. Event identifiers are stable across
runs, so re-publishing updates entries in subscribed calendars instead of
duplicating them.`,
		SilenceUsage: true,
		RunE:         runPipeline,
	}

	cmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "Path to the settings file")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the calendar to stdout instead of writing the output file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runPipeline is the main command logic: fetch, resolve the season,
// normalize, emit. Per-record problems are skips; anything that returns an
// error here aborts the run before the output file is touched.
func runPipeline(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sc := scraper.New()
	defer sc.Close()

	logger.Info("fetching schedule", logger.Fields{"url": cfg.TeamPageURL})
	fetchStart := time.Now()
	fetched, err := sc.FetchSchedule(cmd.Context(), cfg.TeamPageURL)
	if err != nil {
		return fmt.Errorf("fetching schedule: %w", err)
	}
	logger.RecordTiming("fetch.page", time.Since(fetchStart))

	if len(fetched.Items) == 0 {
		logger.Warn("no schedule items captured; the calendar will be empty", logger.Fields{
			"url": cfg.TeamPageURL,
		})
	}

	season, found := game.ParseSeasonLabel(fetched.PageText)
	if found {
		logger.Info("detected season", logger.Fields{"season": season.String()})
	} else {
		season = game.SeasonFromDate(time.Now())
		logger.Warn("season label not found in page text, deriving from current date", logger.Fields{
			"season": season.String(),
		})
	}

	normalizer, err := game.NewNormalizer(season)
	if err != nil {
		return fmt.Errorf("normalizing schedule: %w", err)
	}

	games := make([]*game.Game, 0, len(fetched.Items))
	skipped := 0
	for i, raw := range fetched.Items {
		g, err := normalizer.Normalize(raw)
		if err != nil {
			skipped++
			logger.IncrCounter("games.skipped")
			logger.Warn("skipping schedule item", logger.Fields{
				"index":  i,
				"reason": err.Error(),
			})
			continue
		}
		games = append(games, g)
	}

	// Prepare fixes the emit order and collapses duplicate UIDs; running
	// it here keeps the summary counts in step with what Generate writes.
	games = calendar.Prepare(games)

	ics := calendar.Generate(games, calendar.Options{
		TeamName:     cfg.TeamName,
		GameDuration: cfg.GameDuration(),
	})

	summary := &RunSummary{
		GeneratedAt: time.Now().UTC(),
		Season:      season.String(),
		RawItems:    len(fetched.Items),
		Skipped:     skipped,
		Emitted:     len(games),
	}
	if len(games) > 0 {
		summary.FirstGame = &games[0].Start
		summary.LastGame = &games[len(games)-1].Start
	}

	if flagDryRun {
		fmt.Fprint(os.Stdout, ics)
		logger.Info("dry run complete", logger.Fields{
			"raw_items": summary.RawItems,
			"skipped":   summary.Skipped,
			"emitted":   summary.Emitted,
		})
		return nil
	}

	outPath, err := storage.ExpandPath(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := storage.WriteAtomic(outPath, []byte(ics)); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	summary.OutputFile = outPath
	logger.Info("wrote calendar", logger.Fields{
		"path":   outPath,
		"events": len(games),
	})

	if err := WriteSummary(os.Stdout, summary, format); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
