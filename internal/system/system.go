package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// AvailableWorkers returns the worker pool size for up to max
// independent jobs: the logical core count capped at max, never less
// than one.
func AvailableWorkers(max int) int {
	cores, err := cpu.Counts(true)
	if err != nil || cores < 1 {
		cores = runtime.NumCPU()
	}
	if max > 0 && cores > max {
		cores = max
	}
	if cores < 1 {
		cores = 1
	}
	return cores
}

// FindLatestSubtitle returns the most recently modified .srt file in dir.
func FindLatestSubtitle(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), ".srt") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no subtitle files found in %s", dir)
	}

	return latestFile, nil
}
