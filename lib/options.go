package lib

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// EndpointEnvVar is the environment variable the Homebrew Channel docs
// tell people to export, e.g. WIILOAD=tcp:192.168.1.106.
const EndpointEnvVar = "WIILOAD"

// DefaultConfigFile is the config file consulted when no endpoint comes
// from a flag or the environment, relative to the user's home directory.
const DefaultConfigFile = ".wiiload.toml"

// ErrNoEndpoint is returned when no target endpoint could be resolved
// from any configuration source.
var ErrNoEndpoint = errors.New(`no target endpoint. set --endpoint, export ` +
	EndpointEnvVar + `, or put endpoint = "tcp:<wii-ip>" in ` + DefaultConfigFile)

// Options are options
type Options struct {
	// Logging
	Logger         *zerolog.Logger
	Debug          bool
	DisableLogging bool

	// Target
	Endpoint   string
	ConfigPath string
}

// fileConfig is the subset of the config file that matters here.
type fileConfig struct {
	Endpoint string `toml:"endpoint"`
}

// NewOptions returns a new options struct
func NewOptions() *Options {
	return &Options{}
}

// ResolveEndpoint returns the raw endpoint string to send to, trying
// each configuration source in priority order: the --endpoint flag, the
// WIILOAD environment variable, then the TOML config file. There is no
// interactive fallback; a run with no endpoint fails with ErrNoEndpoint.
func (o *Options) ResolveEndpoint() (string, error) {
	if o.Endpoint != "" {
		return o.Endpoint, nil
	}

	if v := os.Getenv(EndpointEnvVar); v != "" {
		return v, nil
	}

	path := o.ConfigPath
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", ErrNoEndpoint
		}
		path = filepath.Join(home, DefaultConfigFile)
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		// A missing default config just means the source is empty. A
		// missing or broken file the user pointed at is their problem.
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoEndpoint
		}
		return "", fmt.Errorf("config file %s: %w", path, err)
	}

	if cfg.Endpoint == "" {
		return "", ErrNoEndpoint
	}

	return cfg.Endpoint, nil
}
