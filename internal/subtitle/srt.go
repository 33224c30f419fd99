package subtitle

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseSRT parses the common SRT layout: index line, timing line
// (HH:MM:SS,mmm --> HH:MM:SS,mmm), one or more text lines, blank separator.
func ParseSRT(data []byte) ([]Entry, error) {
	blocks := splitBlocks(data)
	entries := make([]Entry, 0, len(blocks))
	for _, blk := range blocks {
		entry, err := parseBlock(blk)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReadFile loads and parses an SRT file.
func ReadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitles: %w", err)
	}
	entries, err := ParseSRT(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

func splitBlocks(data []byte) [][]string {
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.Split(s, "\n\n")
	out := make([][]string, 0, len(parts))
	for _, p := range parts {
		lines := strings.Split(p, "\n")
		trimmed := make([]string, 0, len(lines))
		for _, l := range lines {
			trimmed = append(trimmed, strings.TrimRight(l, " \t"))
		}
		for len(trimmed) > 0 && strings.TrimSpace(trimmed[0]) == "" {
			trimmed = trimmed[1:]
		}
		for len(trimmed) > 0 && strings.TrimSpace(trimmed[len(trimmed)-1]) == "" {
			trimmed = trimmed[:len(trimmed)-1]
		}
		if len(trimmed) > 0 {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseBlock(lines []string) (Entry, error) {
	if len(lines) < 2 {
		return Entry{}, errors.New("srt block too short")
	}
	// First line is usually the cue index; some files omit or duplicate it,
	// so the timing line may come first.
	timingIdx := 1
	if strings.Contains(lines[0], "-->") {
		timingIdx = 0
	}
	start, end, err := parseTimingLine(lines[timingIdx])
	if err != nil {
		return Entry{}, fmt.Errorf("parse timing: %w", err)
	}
	if end <= start {
		return Entry{}, fmt.Errorf("timing %.3f --> %.3f: %w", start, end, ErrMalformedEntry)
	}
	text := strings.Join(lines[timingIdx+1:], " ")
	return Entry{Start: start, End: end, Text: strings.TrimSpace(text)}, nil
}

func parseTimingLine(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, errors.New("invalid timing separator")
	}
	start, err := parseTime(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("start time: %w", err)
	}
	end, err := parseTime(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("end time: %w", err)
	}
	return start, end, nil
}

func parseTime(s string) (float64, error) {
	// HH:MM:SS,mmm
	hmsMillis := strings.Split(s, ",")
	if len(hmsMillis) != 2 {
		return 0, errors.New("missing millis")
	}
	hms := strings.Split(hmsMillis[0], ":")
	if len(hms) != 3 {
		return 0, errors.New("invalid h:m:s")
	}
	h, err := strconv.Atoi(hms[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(hms[1])
	if err != nil {
		return 0, err
	}
	sec, err := strconv.Atoi(hms[2])
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(hmsMillis[1])
	if err != nil {
		return 0, err
	}
	return float64(h)*3600 + float64(m)*60 + float64(sec) + float64(ms)/1000.0, nil
}

// FormatTime renders seconds in SRT timing notation.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds*1000.0 + 0.5)
	ms := total % 1000
	total /= 1000
	s := total % 60
	total /= 60
	m := total % 60
	h := total / 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
