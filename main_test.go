package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/smm-uncleared/internal/app"
	"github.com/atomicstack/smm-uncleared/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Game:       "smm2",
			APIRoot:    "http://localhost/api",
			Timeout:    time.Second,
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"game":     "smm2",
			"api-root": "http://localhost/api",
			"width":    "80",
			"height":   "24",
			"footer":   "true",
		},
		Args: []string{"smm2"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["api-root"] != "http://localhost/api" {
		t.Fatalf("expected api-root flag %q, got %v", "http://localhost/api", flagsValue["api-root"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestExecutePassesResolvedConfig(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "smm.log")
	var got app.Config
	code := execute([]string{"--width", "90", "--log-file", logFile, "smm1"}, nil, func(cfg app.Config) error {
		got = cfg
		return nil
	})
	require.Equal(t, 0, code)
	assert.Equal(t, "smm1", got.Game)
	assert.Equal(t, 90, got.Width)
}

func TestExecuteExitCodes(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "smm.log")
	called := false
	run := func(app.Config) error {
		called = true
		return nil
	}

	assert.Equal(t, 2, execute([]string{"--log-file", logFile, "smm9"}, nil, run), "invalid game")
	assert.Equal(t, 2, execute([]string{"--no-such-flag"}, nil, run), "unknown flag")
	assert.Equal(t, 2, execute([]string{"smm1", "smm2"}, nil, run), "too many args")
	assert.False(t, called)

	failing := func(app.Config) error { return errors.New("terminal gone") }
	assert.Equal(t, 1, execute([]string{"--log-file", logFile}, nil, failing))
}
