// Package browser starts the system browser for a link.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"

	"medialinks/internal/core"
)

// MaxURLLength is the longest URL handed to the browser.
const MaxURLLength = 8192

var (
	// ErrInvalidURL is returned for URLs that are not plain http or https links
	ErrInvalidURL = errors.New("invalid browser URL")
	// ErrNoCommand is returned when no browser executable is configured
	ErrNoCommand = errors.New("no browser command configured")
)

// ValidateURL checks that url is an http or https link of acceptable length.
func ValidateURL(url string) error {
	if len(url) > MaxURLLength {
		return fmt.Errorf("%w: too long: %d bytes (max %d)", ErrInvalidURL, len(url), MaxURLLength)
	}
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return fmt.Errorf("%w: scheme must be http:// or https://", ErrInvalidURL)
	}
	return nil
}

// Launcher opens URLs by starting the configured browser executable.
// When the browser was not running beforehand it waits for the startup delay,
// so the next link lands in the same browser instance.
type Launcher struct {
	command      string
	startupDelay time.Duration
	clock        clockwork.Clock
	logger       *zap.Logger

	isRunning func(ctx context.Context, name string) (bool, error)
	start     func(ctx context.Context, command, url string) error
}

// NewLauncher creates a launcher for the configured browser.
func NewLauncher(config core.BrowserConfig, clock clockwork.Clock, logger *zap.Logger) *Launcher {
	return &Launcher{
		command:      config.Command,
		startupDelay: config.StartupDelay,
		clock:        clock,
		logger:       logger,
		isRunning:    processRunning,
		start:        startProcess,
	}
}

// Open starts the browser with url.
func (l *Launcher) Open(ctx context.Context, url string) error {
	if l.command == "" {
		return ErrNoCommand
	}
	if err := ValidateURL(url); err != nil {
		return err
	}

	name := processName(l.command)
	running, err := l.isRunning(ctx, name)
	if err != nil {
		l.logger.Warn("Could not check for running browser",
			zap.String("browser", name),
			zap.Error(err))
	}

	if err := l.start(ctx, l.command, url); err != nil {
		return fmt.Errorf("failed to start %s: %w", l.command, err)
	}

	if running || l.startupDelay <= 0 {
		return nil
	}

	l.logger.Debug("Waiting for browser startup",
		zap.String("browser", name),
		zap.Duration("delay", l.startupDelay))

	select {
	case <-l.clock.After(l.startupDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// processName reduces a command to the name the OS reports for its process.
func processName(command string) string {
	name := filepath.Base(command)
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}

func processRunning(ctx context.Context, name string) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if processName(procName) == name {
			return true, nil
		}
	}

	return false, nil
}

// startProcess starts the browser without waiting for it. The browser outlives ctx.
func startProcess(ctx context.Context, command, url string) error {
	cmd := exec.CommandContext(context.WithoutCancel(ctx), command, url)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
