package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeTUI  = "tui"
	ModeHTTP = "http"

	xdgConfigFile = "tictactoe/config.yml"
)

var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidPort     = errors.New("invalid http port")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Mode     string `yaml:"mode" env:"MODE" env-default:"tui"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
}

// MustLoad - load the configuration from path, the XDG config directory or the environment, in that order.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := read(resolvePath(path), config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - reports every invalid field at once.
func (that *Config) Validate() error {
	var errs *multierror.Error

	switch that.Mode {
	case ModeTUI, ModeHTTP:
	default:
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrInvalidMode, that.Mode))
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel))
	}

	if port, err := strconv.Atoi(that.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrInvalidPort, that.HTTPPort))
	}

	return errs.ErrorOrNil()
}

func (that *Config) IsHTTP() bool {
	return that.Mode == ModeHTTP
}

func read(path string, config *Config) error {
	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return fmt.Errorf("unable to read environment: %w", err)
		}

		return nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return fmt.Errorf("unable to load config file: %w", err)
	}

	return nil
}

// resolvePath - returns path if it exists, else the XDG config file if present, else "".
func resolvePath(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	xdgPath, err := xdg.SearchConfigFile(xdgConfigFile)
	if err != nil {
		return ""
	}

	return xdgPath
}
