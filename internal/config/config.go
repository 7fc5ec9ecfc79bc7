package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

const (
	EnvLogLevel   = "MORSE_LOG_LEVEL"
	EnvNoColor    = "MORSE_NO_COLOR"
	EnvStopMarker = "MORSE_STOP_MARKER"
	EnvTrimInput  = "MORSE_TRIM_INPUT"
)

// Config holds the CLI defaults. Command-line flags override it.
type Config struct {
	StopMarker bool
	TrimInput  bool
	LogLevel   string
	NoColor    bool
}

type fileConfig struct {
	StopMarker bool   `toml:"stop_marker"`
	TrimInput  bool   `toml:"trim_input"`
	LogLevel   string `toml:"log_level"`
	NoColor    bool   `toml:"no_color"`
}

func Default() Config {
	return Config{
		TrimInput: true,
		LogLevel:  "info",
	}
}

// DefaultPath returns $HOME/.config/morse/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "morse", "config.toml"), nil
}

// Load reads the TOML file at path over the defaults. An empty path selects
// DefaultPath, which is allowed to be missing; an explicit path is not.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if explicit {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return Config{}, fmt.Errorf("load morse config: %w", err)
		}
		path = expanded
	} else {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load morse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load morse config: unknown key %q in %s", undecoded[0].String(), path)
	}

	if meta.IsDefined("stop_marker") {
		cfg.StopMarker = raw.StopMarker
	}
	if meta.IsDefined("trim_input") {
		cfg.TrimInput = raw.TrimInput
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("no_color") {
		cfg.NoColor = raw.NoColor
	}

	return cfg, nil
}

// ApplyEnv overrides c with any MORSE_* variables that are set and valid.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v, ok := parseBool(os.Getenv(EnvNoColor)); ok {
		c.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvStopMarker)); ok {
		c.StopMarker = v
	}
	if v, ok := parseBool(os.Getenv(EnvTrimInput)); ok {
		c.TrimInput = v
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
