package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/smm-uncleared/internal/app"
	"github.com/atomicstack/smm-uncleared/internal/config"
	"github.com/atomicstack/smm-uncleared/internal/logging"
	"github.com/atomicstack/smm-uncleared/internal/logging/events"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Environ(), app.Run))
}

// exitError carries the process exit status for a failed run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// execute runs the root command and maps its outcome to an exit status:
// 2 for configuration errors, 1 for runtime failures.
func execute(args, environ []string, run func(app.Config) error) int {
	cmd := newRootCommand(environ, run)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) && exit.code == 1 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", exit.err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
	return 2
}

func newRootCommand(environ []string, run func(app.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smm-uncleared [smm1|smm2]",
		Short:         "Browse random uncleared Super Mario Maker levels",
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     []string{"smm1", "smm2"},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runtimeCfg, err := config.FromFlags(cmd.Flags(), args, environ)
			if err == nil {
				err = config.Validate(runtimeCfg)
			}
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			logging.Configure(runtimeCfg.Logging.FilePath)
			logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
			defer logging.Sync()

			traceStartup(runtimeCfg)

			if err := run(runtimeCfg.App); err != nil {
				logging.Error(err)
				return &exitError{code: 1, err: err}
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: 2, err: err}
	})
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
