// Package adsconfig resolves settings from flags, environment variables and an optional .env file.
package adsconfig

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/datatug/assetdirstat/pkg/assetstat"
	"github.com/datatug/assetdirstat/pkg/fsutils"
	"github.com/joho/godotenv"
)

const (
	EnvRoot     = "ASSETDIRSTAT_ROOT"
	EnvExclude  = "ASSETDIRSTAT_EXCLUDE"
	EnvStrict   = "ASSETDIRSTAT_STRICT"
	EnvLogFile  = "ASSETDIRSTAT_LOG_FILE"
	EnvLogLevel = "ASSETDIRSTAT_LOG_LEVEL"
	EnvBusyFile = "ASSETDIRSTAT_BUSY_FILE"
	EnvServe    = "ASSETDIRSTAT_SERVE"
)

const (
	DefaultRoot     = "Assets"
	DefaultLogLevel = "info"
	DefaultEnvFile  = ".env"
)

// Config holds all settings of the tool
type Config struct {
	Root             string
	ExcludedSuffixes []string
	Strict           bool

	LogFile  string
	LogLevel string

	// BusyFile disables the inspector while the file exists
	BusyFile string

	// ServeAddr switches to the HTTP report mode
	ServeAddr string

	EnvFile string

	CPUProfile string
	MemProfile string
	PprofAddr  string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Root:             DefaultRoot,
		ExcludedSuffixes: append([]string(nil), assetstat.DefaultExcludedSuffixes...),
		LogLevel:         DefaultLogLevel,
		EnvFile:          DefaultEnvFile,
	}
}

var getenv = os.LookupEnv

var loadEnvFile = func(filePath string) error {
	return godotenv.Load(filePath)
}

// Load parses args (without the program name). Flags win over environment
// variables, environment variables win over defaults. The first positional
// argument is taken as the root when -root is not given.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	cfg := Default()
	exclude := strings.Join(cfg.ExcludedSuffixes, ",")

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&cfg.Root, "root", cfg.Root, "asset `directory` to scan")
	fs.StringVar(&exclude, "exclude", exclude, "comma separated file name `suffixes` to leave out")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "abort the scan on the first unreadable entry")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write logs to `file`")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log `level`: debug, info, warn or error")
	fs.StringVar(&cfg.BusyFile, "busy-file", cfg.BusyFile, "disable the inspector while `file` exists")
	fs.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "serve the report API on `address` instead of the UI")
	fs.StringVar(&cfg.EnvFile, "env", cfg.EnvFile, "load environment variables from `file`")
	fs.StringVar(&cfg.CPUProfile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&cfg.MemProfile, "memprofile", "", "write memory profile to `file`")
	fs.StringVar(&cfg.PprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	if cfg.EnvFile != "" {
		if fsutils.FileExists(cfg.EnvFile) {
			if err := loadEnvFile(cfg.EnvFile); err != nil {
				return nil, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
			}
		} else if explicit["env"] {
			return nil, fmt.Errorf("env file %s does not exist", cfg.EnvFile)
		}
	}

	if err := applyEnv(&cfg, &exclude, explicit); err != nil {
		return nil, err
	}

	if !explicit["root"] && fs.NArg() > 0 {
		cfg.Root = fs.Arg(0)
	}
	cfg.Root = fsutils.ExpandHome(cfg.Root)
	cfg.ExcludedSuffixes = splitList(exclude)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config, exclude *string, explicit map[string]bool) error {
	stringSettings := []struct {
		flag  string
		env   string
		value *string
	}{
		{"root", EnvRoot, &cfg.Root},
		{"exclude", EnvExclude, exclude},
		{"log", EnvLogFile, &cfg.LogFile},
		{"log-level", EnvLogLevel, &cfg.LogLevel},
		{"busy-file", EnvBusyFile, &cfg.BusyFile},
		{"serve", EnvServe, &cfg.ServeAddr},
	}
	for _, s := range stringSettings {
		if explicit[s.flag] {
			continue
		}
		if v, ok := getenv(s.env); ok {
			*s.value = v
		}
	}
	if !explicit["strict"] {
		if v, ok := getenv(EnvStrict); ok && v != "" {
			strict, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s value %q: %w", EnvStrict, v, err)
			}
			cfg.Strict = strict
		}
	}
	return nil
}

func splitList(s string) (items []string) {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

var ErrEmptyRoot = errors.New("root directory is not set")

// Validate checks settings that can not be defaulted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return ErrEmptyRoot
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// ScanOptions converts the settings into scanner options.
func (c *Config) ScanOptions() []assetstat.ScanOption {
	return []assetstat.ScanOption{
		assetstat.WithExcludedSuffixes(c.ExcludedSuffixes...),
		assetstat.WithStrict(c.Strict),
	}
}
