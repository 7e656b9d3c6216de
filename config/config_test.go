package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"FILMBOARD_CARDS", "FILMBOARD_STEP", "FILMBOARD_EXTRA_COUNT", "FILMBOARD_IMPORT", "FILMBOARD_DEBUG", "FILMBOARD_DEBUG_LOG"} {
		t.Setenv(k, "")
	}
	t.Setenv("FILMBOARD_SEED", "42")

	cfg := Load()
	if cfg.Cards != DefaultCards {
		t.Fatalf("cards: got %d want %d", cfg.Cards, DefaultCards)
	}
	if cfg.Step != DefaultStep {
		t.Fatalf("step: got %d want %d", cfg.Step, DefaultStep)
	}
	if cfg.ExtraCount != DefaultExtraCount {
		t.Fatalf("extra: got %d want %d", cfg.ExtraCount, DefaultExtraCount)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed: got %d want 42", cfg.Seed)
	}
	if cfg.Debug {
		t.Fatalf("debug should default to false")
	}
	if cfg.DebugLog != "filmboard-debug.log" {
		t.Fatalf("unexpected debug log path %q", cfg.DebugLog)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FILMBOARD_CARDS", "3")
	t.Setenv("FILMBOARD_STEP", "0")
	t.Setenv("FILMBOARD_EXTRA_COUNT", "4")
	t.Setenv("FILMBOARD_IMPORT", " board.html ")
	t.Setenv("FILMBOARD_DEBUG", "true")

	cfg := Load()
	if cfg.Cards != 3 {
		t.Fatalf("cards: got %d want 3", cfg.Cards)
	}
	if cfg.Step != DefaultStep {
		t.Fatalf("zero step must fall back to default, got %d", cfg.Step)
	}
	if cfg.ExtraCount != 4 {
		t.Fatalf("extra: got %d want 4", cfg.ExtraCount)
	}
	if cfg.ImportPath != "board.html" {
		t.Fatalf("import path: got %q", cfg.ImportPath)
	}
	if !cfg.Debug {
		t.Fatalf("debug should be enabled")
	}
}

func TestParseHelpers(t *testing.T) {
	if got := ParseInt("nope", 7); got != 7 {
		t.Fatalf("ParseInt fallback: got %d", got)
	}
	if got := ParseFloat(" 2.5 ", 1); got != 2.5 {
		t.Fatalf("ParseFloat: got %v", got)
	}
	if got := ParseBool("maybe", true); !got {
		t.Fatalf("ParseBool fallback should be true")
	}
	if got := ParseDuration("90s", time.Second); got != 90*time.Second {
		t.Fatalf("ParseDuration: got %v", got)
	}
	got := ParseCSV(" a, ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("ParseCSV: got %v", got)
	}
}

