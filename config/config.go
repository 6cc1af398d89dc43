package config // CLI configuration file

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Tool + "flags" to allow specific callings
type Options struct {
	Tool   string
	Params map[string]string
}

// ParseArgs reads "tool key=value key=value ..." style arguments.
func ParseArgs(args []string) Options {
	opts := Options{Params: make(map[string]string)}
	if len(args) > 0 {
		opts.Tool = args[0]
	}
	if len(args) < 2 {
		return opts
	}
	for _, arg := range args[1:] {
		kv := splitOption(arg)
		opts.Params[kv[0]] = kv[1]
	}
	return opts
}

// key=value, or a bare key with an empty value
func splitOption(arg string) [2]string {
	var kv [2]string
	for i, ch := range arg {
		if ch == '=' {
			kv[0] = arg[:i]
			kv[1] = arg[i+1:]
			return kv
		}
	}
	kv[0] = arg
	kv[1] = ""
	return kv
}

// ServerConfig holds the web UI settings.
type ServerConfig struct {
	Addr     string
	MaxChars int
	Title    string
	LogLevel slog.Level
}

// DefaultServerConfig mirrors the reference UI: one text input capped at 1000 characters.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:     ":8501",
		MaxChars: 1000,
		Title:    "Protein Analyzer",
		LogLevel: slog.LevelInfo,
	}
}

// Server applies the parsed key=value params over the defaults.
// Unknown keys and malformed values are errors.
func (o Options) Server() (ServerConfig, error) {
	cfg := DefaultServerConfig()
	for key, val := range o.Params {
		switch key {
		case "addr":
			if val == "" {
				return cfg, fmt.Errorf("addr must not be empty")
			}
			cfg.Addr = val
		case "max_chars":
			n, err := strconv.Atoi(val)
			if err != nil {
				return cfg, fmt.Errorf("invalid max_chars %q: %w", val, err)
			}
			if n <= 0 {
				return cfg, fmt.Errorf("max_chars must be positive, got %d", n)
			}
			cfg.MaxChars = n
		case "title":
			cfg.Title = val
		case "log_level":
			if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(val))); err != nil {
				return cfg, fmt.Errorf("invalid log_level %q: %w", val, err)
			}
		default:
			return cfg, fmt.Errorf("unknown option: %s", key)
		}
	}
	return cfg, nil
}
