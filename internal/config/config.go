package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/smm-uncleared/internal/api"
	"github.com/atomicstack/smm-uncleared/internal/app"
	"github.com/atomicstack/smm-uncleared/internal/filter"
	"github.com/atomicstack/smm-uncleared/internal/storage"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envGame        = "SMM_UNCLEARED_GAME"
	envAPIRoot     = "SMM_UNCLEARED_API_ROOT"
	envTimeout     = "SMM_UNCLEARED_TIMEOUT"
	envMinInterval = "SMM_UNCLEARED_MIN_INTERVAL"
	envState       = "SMM_UNCLEARED_STATE"
	envWidth       = "SMM_UNCLEARED_WIDTH"
	envHeight      = "SMM_UNCLEARED_HEIGHT"
	envShowFooter  = "SMM_UNCLEARED_FOOTER"
	envTrace       = "SMM_UNCLEARED_TRACE"
	envLogFile     = "SMM_UNCLEARED_LOG_FILE"
	envConfigFile  = "SMM_UNCLEARED_CONFIG"
)

const (
	flagAPIRoot     = "api-root"
	flagTimeout     = "timeout"
	flagMinInterval = "min-interval"
	flagState       = "state"
	flagWidth       = "width"
	flagHeight      = "height"
	flagFooter      = "footer"
	flagTrace       = "trace"
	flagLogFile     = "log-file"
	flagConfig      = "config"
)

// RegisterFlags declares every command line setting on fs. Defaults shown in
// help are the built-in ones; environment and config file values are layered
// in by FromFlags.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagAPIRoot, api.DefaultRoot, "base URL of the level API")
	fs.Duration(flagTimeout, api.DefaultTimeout, "per-request timeout")
	fs.Duration(flagMinInterval, api.DefaultMinInterval, "minimum spacing between API requests (0 disables)")
	fs.String(flagState, "", "path to the SQLite file holding saved filters (default under the user config dir, "+storage.MemoryPath+" keeps them in memory)")
	fs.Int(flagWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(flagHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(flagFooter, true, "show the key hint footer")
	fs.Bool(flagTrace, false, "enable verbose JSON trace logging")
	fs.String(flagLogFile, "", "path to the log file")
	fs.String(flagConfig, "", "path to a YAML config file")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("smm-uncleared", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs, fs.Args(), environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves every setting from a parsed flag set. A flag given on
// the command line wins over the environment, which wins over the config
// file, which wins over the built-in default.
func FromFlags(fs *pflag.FlagSet, positional []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := envOrDefault(env, envConfigFile, "")
	if fs.Changed(flagConfig) {
		configPath, _ = fs.GetString(flagConfig)
	}
	file, err := loadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	if len(positional) > 1 {
		return Config{}, fmt.Errorf("expected at most one game argument, got %d", len(positional))
	}
	game := envOrDefault(env, envGame, orString(file.Game, string(filter.GameSMM2)))
	if len(positional) == 1 {
		game = positional[0]
	}

	apiRoot := stringSetting(fs, flagAPIRoot, envOrDefault(env, envAPIRoot, orString(file.APIRoot, api.DefaultRoot)))
	timeout, err := durationSetting(fs, flagTimeout, env, envTimeout, file.Timeout, api.DefaultTimeout)
	if err != nil {
		return Config{}, err
	}
	minInterval, err := durationSetting(fs, flagMinInterval, env, envMinInterval, file.MinInterval, api.DefaultMinInterval)
	if err != nil {
		return Config{}, err
	}
	statePath := stringSetting(fs, flagState, envOrDefault(env, envState, orString(file.State, defaultStatePath(env))))
	width := intSetting(fs, flagWidth, envOrInt(env, envWidth, orInt(file.Width, 0)))
	height := intSetting(fs, flagHeight, envOrInt(env, envHeight, orInt(file.Height, 0)))
	footer := boolSetting(fs, flagFooter, envOrBool(env, envShowFooter, orBool(file.Footer, true)))
	trace := boolSetting(fs, flagTrace, envOrBool(env, envTrace, orBool(file.Trace, false)))
	logFile := stringSetting(fs, flagLogFile, envOrDefault(env, envLogFile, orString(file.LogFile, "")))

	cfg := Config{
		App: app.Config{
			Game:        strings.ToLower(strings.TrimSpace(game)),
			APIRoot:     apiRoot,
			Timeout:     timeout,
			MinInterval: minInterval,
			StatePath:   statePath,
			Width:       width,
			Height:      height,
			ShowFooter:  footer,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"game":          game,
			flagAPIRoot:     apiRoot,
			flagTimeout:     timeout.String(),
			flagMinInterval: minInterval.String(),
			flagState:       statePath,
			flagWidth:       strconv.Itoa(width),
			flagHeight:      strconv.Itoa(height),
			flagFooter:      strconv.FormatBool(footer),
			flagTrace:       strconv.FormatBool(trace),
			flagLogFile:     logFile,
			flagConfig:      configPath,
		},
		Args: append([]string(nil), positional...),
	}
	return cfg, nil
}

// defaultStatePath places the filter database under the user's config
// directory, honouring XDG_CONFIG_HOME and HOME from environ before asking
// the OS. With no usable directory the filters stay in memory.
func defaultStatePath(env map[string]string) string {
	dir := strings.TrimSpace(env["XDG_CONFIG_HOME"])
	if dir == "" {
		if home := strings.TrimSpace(env["HOME"]); home != "" {
			dir = filepath.Join(home, ".config")
		}
	}
	if dir == "" {
		osDir, err := os.UserConfigDir()
		if err != nil {
			return storage.MemoryPath
		}
		dir = osDir
	}
	return filepath.Join(dir, "smm-uncleared", "filters.db")
}

func stringSetting(fs *pflag.FlagSet, name, fallback string) string {
	if fs.Changed(name) {
		if v, err := fs.GetString(name); err == nil {
			return v
		}
	}
	return fallback
}

func intSetting(fs *pflag.FlagSet, name string, fallback int) int {
	if fs.Changed(name) {
		if v, err := fs.GetInt(name); err == nil {
			return v
		}
	}
	return fallback
}

func boolSetting(fs *pflag.FlagSet, name string, fallback bool) bool {
	if fs.Changed(name) {
		if v, err := fs.GetBool(name); err == nil {
			return v
		}
	}
	return fallback
}

// durationSetting is stricter than the other settings: a malformed value is
// an error rather than silently replaced by the default.
func durationSetting(fs *pflag.FlagSet, name string, env map[string]string, envKey string, fileValue *string, fallback time.Duration) (time.Duration, error) {
	if fs.Changed(name) {
		return fs.GetDuration(name)
	}
	if v, ok := env[envKey]; ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", envKey, err)
		}
		return d, nil
	}
	if fileValue != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*fileValue))
		if err != nil {
			return 0, fmt.Errorf("config %s: %w", name, err)
		}
		return d, nil
	}
	return fallback, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
