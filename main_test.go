package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/qyinm/filmboard/config"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd(config.Config{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out.String(), "filmboard dev") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd(config.Config{Cards: 21, Step: 5, ExtraCount: 2})
	if err := cmd.ParseFlags([]string{"--cards", "7", "--step", "3", "--extra", "0", "--import", "board.html", "--seed", "9"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	for name, want := range map[string]string{
		"cards":  "7",
		"step":   "3",
		"extra":  "0",
		"import": "board.html",
		"seed":   "9",
	} {
		if got := cmd.Flags().Lookup(name).Value.String(); got != want {
			t.Fatalf("--%s: got %q want %q", name, got, want)
		}
	}
}

func TestFlagDefaultsFromConfig(t *testing.T) {
	cmd := newRootCmd(config.Config{Cards: 12, Step: 4})
	if got := cmd.Flags().Lookup("cards").DefValue; got != "12" {
		t.Fatalf("cards default: got %q", got)
	}
	if got := cmd.Flags().Lookup("step").DefValue; got != "4" {
		t.Fatalf("step default: got %q", got)
	}
}

func TestDebugLoggerDisabled(t *testing.T) {
	logger, closeLog, err := newLogger(config.Config{})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()
	if logger.Enabled(t.Context(), 0) {
		t.Fatalf("disabled debug should discard")
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	newJSONLogger(&buf).Debug("open overlay", "card", "film-001")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "open overlay" || entry["card"] != "film-001" {
		t.Fatalf("unexpected entry %v", entry)
	}
}
