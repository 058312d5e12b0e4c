// Package config loads the rcp configuration file.
//
// The configuration is a TOML file, every key is optional:
//
//	currency = "USD"
//
//	[report]
//	format = "md"   # md or html
//	dir = "."       # where generated reports are written
//	style = "auto"  # glamour style used to print reports in a terminal
//
//	[sort]
//	lock = true     # hold a lock file while sorting
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the configuration file used when none is specified.
const DefaultPath = "rcp.toml"

// EnvPath is the environment variable naming the configuration file.
const EnvPath = "RCP_CONFIG"

// Report configures generated reports.
type Report struct {
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
	Style  string `toml:"style"`
}

// Sort configures the sort command.
type Sort struct {
	Lock bool `toml:"lock"`
}

// Config is the rcp configuration.
type Config struct {
	Currency string `toml:"currency"`
	Report   Report `toml:"report"`
	Sort     Sort   `toml:"sort"`
}

// Report formats.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Currency: money.USD,
		Report: Report{
			Format: FormatMarkdown,
			Dir:    ".",
			Style:  "auto",
		},
		Sort: Sort{Lock: true},
	}
}

// Path resolves the configuration file path: flagValue if set, then the
// RCP_CONFIG environment variable, then DefaultPath.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads the configuration file at path.
// A missing file is not an error, Default() is returned instead.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a TOML configuration on top of the defaults and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Dir == "" {
		c.Report.Dir = "."
	}
	if c.Report.Style == "" {
		c.Report.Style = "auto"
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	switch c.Report.Format {
	case FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("report format must be %q or %q, got %q", FormatMarkdown, FormatHTML, c.Report.Format)
	}
	return nil
}
