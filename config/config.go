// Package config loads filmboard settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultCards      = 21
	DefaultStep       = 5
	DefaultExtraCount = 2
)

// Config holds the catalog and TUI settings
type Config struct {
	Cards      int
	Step       int
	ExtraCount int
	Seed       uint64
	ImportPath string
	Debug      bool
	DebugLog   string
}

// Load reads FILMBOARD_* variables, falling back to defaults for anything
// unset or malformed.
func Load() Config {
	cfg := Config{
		Cards:      ParseInt(os.Getenv("FILMBOARD_CARDS"), DefaultCards),
		Step:       ParseInt(os.Getenv("FILMBOARD_STEP"), DefaultStep),
		ExtraCount: ParseInt(os.Getenv("FILMBOARD_EXTRA_COUNT"), DefaultExtraCount),
		Seed:       parseUint(os.Getenv("FILMBOARD_SEED"), uint64(time.Now().UnixNano())),
		ImportPath: strings.TrimSpace(os.Getenv("FILMBOARD_IMPORT")),
		Debug:      ParseBool(os.Getenv("FILMBOARD_DEBUG"), false),
		DebugLog:   strings.TrimSpace(os.Getenv("FILMBOARD_DEBUG_LOG")),
	}
	return cfg.Normalize()
}

// Normalize clamps invalid values back to defaults
func (c Config) Normalize() Config {
	if c.Cards < 0 {
		c.Cards = DefaultCards
	}
	if c.Step <= 0 {
		c.Step = DefaultStep
	}
	if c.ExtraCount < 0 {
		c.ExtraCount = DefaultExtraCount
	}
	if c.DebugLog == "" {
		c.DebugLog = "filmboard-debug.log"
	}
	return c
}

func ParseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func ParseBool(raw string, fallback bool) bool {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func ParseInt(raw string, fallback int) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func ParseFloat(raw string, fallback float64) float64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}

func ParseDuration(raw string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func parseUint(raw string, fallback uint64) uint64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
