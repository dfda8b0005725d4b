package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Saucer42/hockey-schedule-ical/internal/logger"
)

const (
	// DefaultPath is where Load looks for the settings file unless told otherwise.
	DefaultPath = "config.json"
	// DefaultOutputFile receives the calendar when output_file is not configured.
	DefaultOutputFile = "hockey_schedule.ics"
)

// Config holds the settings for one pipeline run. Unrecognized keys in the
// settings file are ignored.
type Config struct {
	TeamName          string  `json:"team_name"`
	TeamPageURL       string  `json:"team_page_url"`
	GameDurationHours float64 `json:"game_duration_hours"`
	OutputFile        string  `json:"output_file"`
}

// Load reads the settings file at path, applies environment overrides
// (TEAM_NAME, TEAM_PAGE_URL, GAME_DURATION_HOURS, OUTPUT_FILE), and
// validates the merged result. A missing file is not fatal on its own; the
// environment may supply everything. A missing team_page_url after merging
// is a fatal startup error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		GameDurationHours: 1,
		OutputFile:        DefaultOutputFile,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		logger.Debug("settings file not found, using environment only", logger.Fields{"path": path})
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. A .env file in the
// working directory is loaded first; existing process variables win over it.
func applyEnv(cfg *Config) {
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file", nil)
	}

	if v := os.Getenv("TEAM_NAME"); v != "" {
		cfg.TeamName = v
	}
	if v := os.Getenv("TEAM_PAGE_URL"); v != "" {
		cfg.TeamPageURL = v
	}
	if v := os.Getenv("GAME_DURATION_HOURS"); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			logger.Warn("ignoring unparseable GAME_DURATION_HOURS", logger.Fields{"value": v})
		} else {
			cfg.GameDurationHours = hours
		}
	}
	if v := os.Getenv("OUTPUT_FILE"); v != "" {
		cfg.OutputFile = v
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.TeamPageURL) == "" {
		return fmt.Errorf("team_page_url is required (set it in the settings file or via TEAM_PAGE_URL)")
	}
	if c.GameDurationHours <= 0 {
		return fmt.Errorf("game_duration_hours must be positive, got %v", c.GameDurationHours)
	}
	return nil
}

// GameDuration returns the configured game length as a time.Duration.
func (c *Config) GameDuration() time.Duration {
	return time.Duration(c.GameDurationHours * float64(time.Hour))
}
