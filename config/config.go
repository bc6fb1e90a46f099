package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/subtlepseudonym/almanac"
)

const (
	DefaultHTTPAddr        = ":9000"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultShutdownTimeout = "10s"

	envHTTPAddr = "ALMANAC_HTTP_ADDR"
	envLogLevel = "ALMANAC_LOG_LEVEL"
)

var validate = validator.New()

type Config struct {
	Observer almanac.Location `json:"observer"`
	Jobs     []Job            `json:"jobs" validate:"dive"`

	// LeapSecondsFile optionally points to an IETF leap-seconds.list
	// that supersedes the compiled-in table
	LeapSecondsFile string `json:"leapSecondsFile,omitempty"`

	HTTPAddr        string `json:"httpAddr" validate:"required"`
	LogLevel        string `json:"logLevel" validate:"oneof=debug info warn error"`
	LogFormat       string `json:"logFormat" validate:"oneof=json text"`
	ShutdownTimeout string `json:"shutdownTimeout"`
}

// Job defines when to take a reading and which values to report.
//
// Schedule is either a standard five field cron spec or
// "@sidereal HH:MM[:SS]", which fires when the observer's local mean
// sidereal time reaches the given hour.
type Job struct {
	Schedule string `json:"schedule" validate:"required"`
	Report   string `json:"report" validate:"oneof=julian sidereal scales"`
}

func Default() *Config {
	return &Config{
		HTTPAddr:        DefaultHTTPAddr,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Open reads a JSON config file over the defaults and applies any
// environment overrides
func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	config := Default()
	err = json.NewDecoder(f).Decode(config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	if addr := os.Getenv(envHTTPAddr); addr != "" {
		c.HTTPAddr = addr
	}
	if level := os.Getenv(envLogLevel); level != "" {
		c.LogLevel = level
	}
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	for i, job := range c.Jobs {
		_, err := almanac.ParseSchedule(job.Schedule, nil)
		if err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}

	_, err = c.Shutdown()
	return err
}

// Shutdown returns the graceful shutdown timeout
func (c *Config) Shutdown() (time.Duration, error) {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("parse shutdown timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("shutdown timeout must be positive, got %s", d)
	}
	return d, nil
}
