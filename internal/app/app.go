package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepmenu/stepmenu/internal/menu"
	"github.com/stepmenu/stepmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	Separator  string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run builds the menu from the configured properties file and executes the
// Bubble Tea program over it.
func Run(cfg Config) error {
	builder, err := menu.NewBuilder(cfg.MenuPath, menu.WithSeparator(cfg.Separator))
	if err != nil {
		return fmt.Errorf("configure builder: %w", err)
	}
	m, err := builder.Build(nil)
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}
	handler, err := menu.NewHandler(m, DefaultCallbacks())
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}
	model := ui.NewModel(m, handler, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// DefaultCallbacks is the registry available to demo menu files. Identifiers
// referenced by a menu but absent here surface as lookup errors on activation.
func DefaultCallbacks() map[string]menu.Callback {
	return map[string]menu.Callback{
		"clock": func() (string, bool) {
			return time.Now().Format("15:04:05"), true
		},
		"hostname": func() (string, bool) {
			host, err := os.Hostname()
			if err != nil {
				return "", false
			}
			return host, true
		},
		"pid": func() (string, bool) {
			return strconv.Itoa(os.Getpid()), true
		},
		"quiet": func() (string, bool) {
			return "", false
		},
	}
}
