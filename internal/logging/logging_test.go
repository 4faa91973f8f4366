package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() {
		SetLogger(nil)
		SetTraceEnabled(false)
	})
	return logs
}

func TestTraceRespectsToggle(t *testing.T) {
	logs := observe(t)

	Trace("query.start", map[string]interface{}{"key": "a"})
	if logs.Len() != 0 {
		t.Fatalf("expected no entries while disabled, got %d", logs.Len())
	}

	SetTraceEnabled(true)
	Trace("query.start", map[string]interface{}{"key": "a"})
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "query.start", entry.ContextMap()["event"])
}

func TestErrorIgnoresNil(t *testing.T) {
	logs := observe(t)
	Error(nil)
	Errorf("mark cleared", nil)
	assert.Equal(t, 0, logs.Len())

	Errorf("mark cleared", errors.New("boom"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "mark cleared", logs.All()[0].Message)
	assert.Equal(t, "boom", logs.All()[0].ContextMap()["error"])
}

func TestConfigureWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("disk says hi"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if !strings.Contains(string(data), "disk says hi") {
		t.Fatalf("expected error in log file, got %q", data)
	}
}
