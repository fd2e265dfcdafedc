// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation. With no flags and no
// environment set, the tool repairs the tree under the current directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

// EnvPrefix namespaces every environment variable the tool reads.
const EnvPrefix = "MOJIFIX_"

// EnvFile is the optional dotenv file read from the working directory.
// It is hidden, so it is never itself a repair candidate.
const EnvFile = ".mojifix.env"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [LoadEnv], then [ParseFlags], and finally checked by [Config.Validate]
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Walk root. Default: "." (the process working directory).
	Root string `env:"ROOT"`

	// Display and logging.
	Verbose   bool      `env:"VERBOSE"`
	ColorMode ColorMode `env:"COLOR"`
	LogFile   string    `env:"LOG_FILE"` // Optional log file path (appended).
	CheckOnly bool      // Run --check table diagnostics and exit.
}

// DefaultConfig returns the zero-flag configuration.
func DefaultConfig() Config {
	return Config{
		Root:      ".",
		Verbose:   false,
		ColorMode: ColorAuto,
		LogFile:   "",
		CheckOnly: false,
	}
}

// LoadEnv applies MOJIFIX_* overrides onto cfg. Values from the process
// environment win over values from envFile; a missing envFile is not an
// error. Only prefixed keys are ever read from envFile.
func LoadEnv(cfg *Config, envFile string) error {
	merged := map[string]string{}

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: read %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			if strings.HasPrefix(k, EnvPrefix) {
				merged[k] = v
			}
		}
	}
	for k, v := range env.ToMap(os.Environ()) {
		if strings.HasPrefix(k, EnvPrefix) {
			merged[k] = v
		}
	}

	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: merged,
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the color mode and the walk root, and expands a leading
// "~" in Root and LogFile.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.LogFile != "" {
		p, err := homedir.Expand(c.LogFile)
		if err != nil {
			return fmt.Errorf("invalid log path %q: %w", c.LogFile, err)
		}
		c.LogFile = p
	}

	if c.CheckOnly {
		return nil
	}
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("root directory must not be empty")
	}
	root, err := homedir.Expand(c.Root)
	if err != nil {
		return fmt.Errorf("invalid root %q: %w", c.Root, err)
	}
	c.Root = NormalizeDirArg(root)
	if c.Root == "" {
		c.Root = "/"
	}
	return nil
}
