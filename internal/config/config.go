// Package config loads the lazyhg configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chmouel/lazyhg/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultVCS is the version-control binary queried for panel contents.
	DefaultVCS = "hg"
	// DefaultPollInterval bounds how long one render iteration waits for input.
	DefaultPollInterval = 50 * time.Millisecond

	minPollInterval = 10 * time.Millisecond
	maxPollInterval = time.Second
)

// AppConfig defines the global lazyhg configuration options.
type AppConfig struct {
	VCS             string        // Binary invoked for status, branches, bookmarks and log
	Theme           string        // Theme name: see AvailableThemes in internal/theme
	DebugLog        string        // Debug log file; empty disables debug logging
	PollInterval    time.Duration // Maximum wait for a key event per frame
	ShowHelp        bool          // Render the key hint footer
	AutoReloadTheme bool          // Re-apply the theme when the config file changes
	TraceEndpoint   string        // OTLP/HTTP endpoint for startup traces; empty disables tracing
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		VCS:          DefaultVCS,
		PollInterval: DefaultPollInterval,
		ShowHelp:     true,
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func coerceString(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func clampPollInterval(d time.Duration) time.Duration {
	switch {
	case d < minPollInterval:
		return minPollInterval
	case d > maxPollInterval:
		return maxPollInterval
	default:
		return d
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()

	if vcs := coerceString(data["vcs"]); vcs != "" {
		cfg.VCS = vcs
	}
	if name := coerceString(data["theme"]); name != "" {
		cfg.Theme = NormalizeThemeName(name)
		if cfg.Theme == "" {
			cfg.Theme = theme.DefaultDark()
		}
	}
	if debugLog := coerceString(data["debug_log"]); debugLog != "" {
		cfg.DebugLog = debugLog
	}
	if endpoint := coerceString(data["trace_endpoint"]); endpoint != "" {
		cfg.TraceEndpoint = endpoint
	}

	ms := coerceInt(data["poll_interval"], int(DefaultPollInterval/time.Millisecond))
	cfg.PollInterval = clampPollInterval(time.Duration(ms) * time.Millisecond)

	cfg.ShowHelp = coerceBool(data["show_help"], cfg.ShowHelp)
	cfg.AutoReloadTheme = coerceBool(data["auto_reload_theme"], cfg.AutoReloadTheme)

	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// CandidatePaths returns the config file locations, in lookup order.
func CandidatePaths() []string {
	base := filepath.Join(getConfigDir(), "lazyhg")
	return []string{
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
	}
}

// LoadConfig reads the configuration from the first existing file among
// paths, or from CandidatePaths when none are given. A missing file yields the
// defaults; a file that cannot be read or parsed yields the defaults and an
// error describing why.
func LoadConfig(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = CandidatePaths()
	}

	cfg, err := ReadConfig(paths...)
	if cfg.Theme == "" {
		cfg.Theme = theme.Detect()
	}
	return cfg, err
}

// ReadConfig is LoadConfig without terminal background detection: Theme is
// left empty when the file does not set it. It is safe to call while the
// dashboard owns the terminal.
func ReadConfig(paths ...string) (*AppConfig, error) {
	cfg := DefaultConfig()
	var loadErr error
	for _, path := range paths {
		// #nosec G304 -- path is one of the fixed config locations
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			loadErr = fmt.Errorf("read config %s: %w", path, err)
			break
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			loadErr = fmt.Errorf("parse config %s: %w", path, err)
			break
		}
		cfg = parseConfig(yamlData)
		break
	}
	return cfg, loadErr
}

// ExistingPath returns the config file LoadConfig would read, or "" if none
// exists.
func ExistingPath() string {
	for _, path := range CandidatePaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.Exists(name) {
		return name
	}
	return ""
}
