package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.ics")

	if err := WriteAtomic(path, []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteAtomic_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.ics")

	if err := WriteAtomic(path, []byte("old run")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteAtomic(path, []byte("new run")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "new run" {
		t.Errorf("content = %q, want new run", data)
	}
}

func TestWriteAtomic_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "schedule.ics")

	if err := WriteAtomic(path, []byte("x")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output not created: %v", err)
	}
}

func TestWriteAtomic_NoTempResidue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.ics")

	if err := WriteAtomic(path, []byte("x")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"home relative", "~/calendars/schedule.ics", filepath.Join(home, "calendars", "schedule.ics")},
		{"plain relative", "schedule.ics", "schedule.ics"},
		{"absolute", "/var/www/schedule.ics", "/var/www/schedule.ics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.path)
			if err != nil {
				t.Fatalf("ExpandPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
