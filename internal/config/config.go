// Package config loads g5.toml / g5.yaml settings for the command line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames lists the config file names Find looks for, in order.
var FileNames = []string{"g5.toml", "g5.yaml", "g5.yml"}

// Format identifies the config file syntax.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds every setting the CLI reads from a config file.
type Config struct {
	Parse       ParseSection       `toml:"parse" yaml:"parse"`
	Diagnostics DiagnosticsSection `toml:"diagnostics" yaml:"diagnostics"`
	Check       CheckSection       `toml:"check" yaml:"check"`
	// Path is the file the values came from; empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type ParseSection struct {
	Binary string `toml:"binary" yaml:"binary"`
}

type CheckSection struct {
	CacheDir string `toml:"cache_dir" yaml:"cache_dir"`
	Jobs     int    `toml:"jobs" yaml:"jobs"`
	Cache    bool   `toml:"cache" yaml:"cache"`
}

type DiagnosticsSection struct {
	Color string `toml:"color" yaml:"color"`
	Max   int    `toml:"max" yaml:"max"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Parse:       ParseSection{Binary: "flat"},
		Diagnostics: DiagnosticsSection{Color: "auto", Max: 100},
		Check:       CheckSection{Cache: true},
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// DetectFormat picks the syntax from the file extension. Unknown
// extensions fall back to TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads the config at path over the defaults and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes data in the given format over the defaults.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to io.EOF and keeps the defaults
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported format: %s", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings; errors name the key.
func (c Config) Validate() error {
	switch c.Parse.Binary {
	case "", "flat", "precedence":
	default:
		return fmt.Errorf("%w: parse.binary must be \"flat\" or \"precedence\", got %q", ErrInvalid, c.Parse.Binary)
	}
	switch c.Diagnostics.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("%w: diagnostics.color must be auto, on or off, got %q", ErrInvalid, c.Diagnostics.Color)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("%w: diagnostics.max must not be negative, got %d", ErrInvalid, c.Diagnostics.Max)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%w: check.jobs must not be negative, got %d", ErrInvalid, c.Check.Jobs)
	}
	return nil
}

// Find walks up from startDir to locate the nearest config file.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads explicit when set, otherwise the nearest config above
// startDir, otherwise the defaults.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
