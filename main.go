package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/stepmenu/stepmenu/internal/app"
	"github.com/stepmenu/stepmenu/internal/config"
	"github.com/stepmenu/stepmenu/internal/logging"
	"github.com/stepmenu/stepmenu/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
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
	payload["tty"] = probeTerminals()
	return payload
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminals reports terminal support and size for each standard descriptor.
func probeTerminals() []terminalProbe {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	probes := make([]terminalProbe, len(files))
	for i, f := range files {
		p := terminalProbe{Name: names[i]}
		if fd := int(f.Fd()); term.IsTerminal(fd) {
			p.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				p.Width, p.Height = width, height
			} else {
				p.Error = err.Error()
			}
		}
		probes[i] = p
	}
	return probes
}
