package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks the override variables so a test sees only its own values.
// t.Setenv restores the originals when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TEAM_NAME", "TEAM_PAGE_URL", "GAME_DURATION_HOURS", "OUTPUT_FILE"} {
		t.Setenv(key, "")
	}
}

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing settings file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `{
		"team_name": "Beavers",
		"team_page_url": "https://www.truenorthhockey.com/team/123",
		"game_duration_hours": 1.5,
		"output_file": "beavers.ics"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TeamName != "Beavers" {
		t.Errorf("TeamName = %q, want Beavers", cfg.TeamName)
	}
	if cfg.TeamPageURL != "https://www.truenorthhockey.com/team/123" {
		t.Errorf("TeamPageURL = %q", cfg.TeamPageURL)
	}
	if cfg.GameDurationHours != 1.5 {
		t.Errorf("GameDurationHours = %v, want 1.5", cfg.GameDurationHours)
	}
	if cfg.OutputFile != "beavers.ics" {
		t.Errorf("OutputFile = %q, want beavers.ics", cfg.OutputFile)
	}
	if cfg.GameDuration() != 90*time.Minute {
		t.Errorf("GameDuration() = %v, want 90m", cfg.GameDuration())
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `{"team_page_url": "https://example.com/team"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GameDurationHours != 1 {
		t.Errorf("GameDurationHours = %v, want default 1", cfg.GameDurationHours)
	}
	if cfg.OutputFile != DefaultOutputFile {
		t.Errorf("OutputFile = %q, want default %q", cfg.OutputFile, DefaultOutputFile)
	}
	if cfg.GameDuration() != time.Hour {
		t.Errorf("GameDuration() = %v, want 1h", cfg.GameDuration())
	}
}

func TestLoad_UnrecognizedKeysIgnored(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `{
		"team_page_url": "https://example.com/team",
		"unknown_option": true,
		"another": {"nested": 1}
	}`)

	if _, err := Load(path); err != nil {
		t.Errorf("Load() error = %v, want nil for unrecognized keys", err)
	}
}

func TestLoad_MissingURL(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `{"team_name": "Beavers"}`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail when team_page_url is missing")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `{
		"team_page_url": "https://example.com/team",
		"game_duration_hours": 0
	}`)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for non-positive game_duration_hours")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `{"team_page_url": `)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed settings")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEAM_PAGE_URL", "https://example.com/env-team")
	t.Setenv("GAME_DURATION_HOURS", "2")

	path := writeSettings(t, `{
		"team_page_url": "https://example.com/file-team",
		"game_duration_hours": 1
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TeamPageURL != "https://example.com/env-team" {
		t.Errorf("TeamPageURL = %q, want env override", cfg.TeamPageURL)
	}
	if cfg.GameDurationHours != 2 {
		t.Errorf("GameDurationHours = %v, want env override 2", cfg.GameDurationHours)
	}
}

func TestLoad_MissingFileWithEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEAM_PAGE_URL", "https://example.com/env-only")

	path := filepath.Join(t.TempDir(), "nope.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want success from environment alone", err)
	}
	if cfg.TeamPageURL != "https://example.com/env-only" {
		t.Errorf("TeamPageURL = %q", cfg.TeamPageURL)
	}
}

func TestLoad_MissingFileNoEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nope.json")

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail when neither file nor environment provide team_page_url")
	}
}
