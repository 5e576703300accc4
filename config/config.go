package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipp01105/logfacade/core"
	"github.com/philipp01105/logfacade/formatter"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Validate for an output format other than
// text or json.
var ErrUnknownFormat = errors.New("unknown output format")

// Config holds the facade settings.
type Config struct {
	// Binding names the default binding explicitly. Used verbatim when
	// set, even if no such binding is registered.
	Binding string `toml:"binding"`
	// OutputFile sends STDOUT binding output to a file
	OutputFile string `toml:"file"`
	// Tee keeps console output when OutputFile is set
	Tee bool `toml:"tee"`
	// Level is the facade level name loggers start at
	Level string `toml:"level"`
	// Format is "text" or "json"
	Format string `toml:"format"`
	// PrintLevel is NONE, SHORT or LONG
	PrintLevel string `toml:"print_level"`
	// TimestampFormat is a Go time layout; empty disables timestamps
	TimestampFormat string `toml:"timestamp_format"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Level:      core.LevelInfo.String(),
		Format:     FormatText,
		PrintLevel: formatter.PrintShort.String(),
	}
}

// Validate checks the level, format and print level names.
func (c Config) Validate() error {
	if _, ok := core.ParseLevel(c.Level); !ok {
		return fmt.Errorf("config: invalid level %q", c.Level)
	}
	if !strings.EqualFold(c.Format, FormatText) && !strings.EqualFold(c.Format, FormatJSON) {
		return fmt.Errorf("config: %w %q", ErrUnknownFormat, c.Format)
	}
	if _, err := formatter.ParsePrintLevel(c.PrintLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogLevel returns the parsed level, INFO when invalid.
func (c Config) LogLevel() core.Level {
	if l, ok := core.ParseLevel(c.Level); ok {
		return l
	}
	return core.LevelInfo
}

// PrintLevelValue returns the parsed print level, SHORT when invalid.
func (c Config) PrintLevelValue() formatter.PrintLevel {
	p, _ := formatter.ParsePrintLevel(c.PrintLevel)
	return p
}

// LoadFile overlays the TOML file at path onto cfg. Keys missing from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Load builds a configuration from defaults, the optional TOML file at
// path and the environment, then validates it.
func Load(path string, r Reader) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	FromEnv(r, &cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnvironment returns Default overlaid with the process environment.
// It does not validate.
func FromEnvironment() Config {
	cfg := Default()
	FromEnv(&OSReader{}, &cfg)
	return cfg
}
