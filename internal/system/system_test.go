package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAvailableWorkers(t *testing.T) {
	if got := AvailableWorkers(1); got != 1 {
		t.Errorf("AvailableWorkers(1): expected 1, got %d", got)
	}

	if got := AvailableWorkers(4); got < 1 || got > 4 {
		t.Errorf("AvailableWorkers(4): expected 1..4, got %d", got)
	}

	// Huge job counts stay capped by the machine, never below one.
	if got := AvailableWorkers(100000); got < 1 {
		t.Errorf("AvailableWorkers(100000): expected >= 1, got %d", got)
	}

	t.Logf("Detected %d workers for 100000 jobs", AvailableWorkers(100000))
}

func TestFindLatestSubtitle(t *testing.T) {
	dir := t.TempDir()

	files := []string{"old.srt", "middle.srt", "newest.srt"}
	for i, name := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("1\n00:00:00,000 --> 00:00:01,000\nhi\n"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("Chtimes failed: %v", err)
		}
	}

	// Non-subtitle files are ignored regardless of age.
	decoy := filepath.Join(dir, "ignore.txt")
	os.WriteFile(decoy, []byte("x"), 0644)
	future := time.Now().Add(48 * time.Hour)
	os.Chtimes(decoy, future, future)

	latest, err := FindLatestSubtitle(dir)
	if err != nil {
		t.Fatalf("FindLatestSubtitle failed: %v", err)
	}
	if filepath.Base(latest) != "newest.srt" {
		t.Errorf("Expected newest.srt, got %s", latest)
	}
}

func TestFindLatestSubtitleEmptyDir(t *testing.T) {
	if _, err := FindLatestSubtitle(t.TempDir()); err == nil {
		t.Error("Expected an error for a directory without subtitles")
	}
}
