package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/smm-uncleared/internal/api"
	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/state"
	"github.com/atomicstack/smm-uncleared/internal/storage"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Game != "smm2" {
		t.Fatalf("expected default game smm2, got %q", cfg.App.Game)
	}
	assert.Equal(t, api.DefaultRoot, cfg.App.APIRoot)
	assert.Equal(t, api.DefaultTimeout, cfg.App.Timeout)
	assert.Equal(t, api.DefaultMinInterval, cfg.App.MinInterval)
	assert.True(t, cfg.App.ShowFooter)
	assert.NotEmpty(t, cfg.App.StatePath)
	assert.NotEqual(t, storage.MemoryPath, cfg.App.StatePath)
	assert.False(t, cfg.Logging.Trace)
	require.NoError(t, Validate(cfg))
}

func TestDefaultStatePathFollowsUserConfigDir(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadArgs(nil, []string{"HOME=" + home})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "smm-uncleared", "filters.db"), cfg.App.StatePath)

	xdg := t.TempDir()
	cfg, err = LoadArgs(nil, []string{"HOME=" + home, "XDG_CONFIG_HOME=" + xdg})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "smm-uncleared", "filters.db"), cfg.App.StatePath)
}

func TestDefaultStatePathKeepsFiltersAcrossRestart(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadArgs(nil, []string{"HOME=" + t.TempDir()})
	require.NoError(t, err)

	kv, err := storage.Open(cfg.App.StatePath)
	require.NoError(t, err)
	staged := filter.State{filter.KeyYear: "2021", filter.KeyTheme: "castle"}
	require.NoError(t, state.NewFilterStore(kv).Save(ctx, filter.SMM2, staged))
	require.NoError(t, kv.Close())

	kv, err = storage.Open(cfg.App.StatePath)
	require.NoError(t, err)
	defer kv.Close()
	loaded, err := state.NewFilterStore(kv).Load(ctx, filter.SMM2)
	require.NoError(t, err)
	assert.Equal(t, staged, loaded)
}

func TestMemoryStateOptOut(t *testing.T) {
	cfg, err := LoadArgs([]string{"--state", storage.MemoryPath}, nil)
	require.NoError(t, err)
	kv, err := storage.Open(cfg.App.StatePath)
	require.NoError(t, err)
	_, isMemory := kv.(*storage.Memory)
	assert.True(t, isMemory)
}

func TestLoadArgsFlagsAndPositionalGame(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"--api-root", "http://localhost:9000/api",
		"--timeout", "3s",
		"--min-interval", "0s",
		"--state", "/tmp/filters.db",
		"--width", "100",
		"--height", "30",
		"--footer=false",
		"--trace",
		"--log-file", "/tmp/smm.log",
		"smm1",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "smm1", cfg.App.Game)
	assert.Equal(t, "http://localhost:9000/api", cfg.App.APIRoot)
	assert.Equal(t, 3*time.Second, cfg.App.Timeout)
	assert.Equal(t, time.Duration(0), cfg.App.MinInterval)
	assert.Equal(t, "/tmp/filters.db", cfg.App.StatePath)
	assert.Equal(t, 100, cfg.App.Width)
	assert.Equal(t, 30, cfg.App.Height)
	assert.False(t, cfg.App.ShowFooter)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/smm.log", cfg.Logging.FilePath)
	assert.Equal(t, "100", cfg.Flags["width"])
	require.NoError(t, Validate(cfg))
}

func TestEnvironmentOverridesFileAndFlagsOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: smm1\nwidth: 70\nheight: 20\ntimeout: 5s\nstate: "+filepath.Join(dir, "state.db")+"\n"), 0o600))

	env := []string{
		"SMM_UNCLEARED_CONFIG=" + path,
		"SMM_UNCLEARED_WIDTH=80",
		"SMM_UNCLEARED_TIMEOUT=7s",
	}
	cfg, err := LoadArgs([]string{"--timeout", "9s"}, env)
	require.NoError(t, err)

	assert.Equal(t, "smm1", cfg.App.Game, "file value")
	assert.Equal(t, 20, cfg.App.Height, "file value")
	assert.Equal(t, 80, cfg.App.Width, "env beats file")
	assert.Equal(t, 9*time.Second, cfg.App.Timeout, "flag beats env")
	assert.Equal(t, filepath.Join(dir, "state.db"), cfg.App.StatePath)
}

func TestConfigFlagBeatsEnvironmentPath(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("footer: false\n"), 0o600))

	cfg, err := LoadArgs([]string{"--config", flagPath}, []string{"SMM_UNCLEARED_CONFIG=" + filepath.Join(dir, "missing.yaml")})
	require.NoError(t, err)
	assert.False(t, cfg.App.ShowFooter)
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadArgs([]string{"--config", filepath.Join(dir, "nope.yaml")}, nil)
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: red\n"), 0o600))
	_, err = LoadArgs([]string{"--config", bad}, nil)
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = LoadArgs([]string{"--config", empty}, nil)
	require.NoError(t, err)
}

func TestMalformedDurationsAreErrors(t *testing.T) {
	_, err := LoadArgs(nil, []string{"SMM_UNCLEARED_TIMEOUT=soon"})
	require.Error(t, err)

	_, err = LoadArgs([]string{"--min-interval", "fast"}, nil)
	require.Error(t, err)
}

func TestMalformedNumbersFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SMM_UNCLEARED_WIDTH=wide", "SMM_UNCLEARED_FOOTER=maybe"})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.App.Width)
	assert.True(t, cfg.App.ShowFooter)
}

func TestTooManyPositionalArguments(t *testing.T) {
	_, err := LoadArgs([]string{"smm1", "smm2"}, nil)
	require.Error(t, err)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	cfg, err := LoadArgs([]string{"smm3"}, nil)
	require.NoError(t, err)
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `game must be one of smm1, smm2 (got "smm3")`)

	cfg, err = LoadArgs([]string{"--width=-1", "--timeout", "0s", "--api-root", "not a url"}, nil)
	require.NoError(t, err)
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be >= 0")
	assert.Contains(t, err.Error(), "timeout must be > 0")
	assert.Contains(t, err.Error(), "api-root must be an http(s) URL")
}

func TestGameArgumentIsNormalised(t *testing.T) {
	cfg, err := LoadArgs([]string{"SMM1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "smm1", cfg.App.Game)
}
