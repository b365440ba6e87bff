package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Channel source configuration
	BaseUrl      string `long:"base-url" env:"BASE_URL" default:"https://t.me/s/" description:"Root URL of the channel preview pages"`
	ChannelsFile string `long:"channels-file" env:"CHANNELS_FILE" default:"./channels.yml" description:"YAML file listing the channels to convert"`

	// Output configuration
	OutputDir     string `long:"output-dir" env:"OUTPUT_DIR" default:"./output" description:"Directory the feed documents are written to"`
	FeedExtension string `long:"feed-ext" env:"FEED_EXTENSION" default:"xml" description:"File extension for generated feed documents"`

	// Fetch configuration
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"tg-comb/1.0" description:"User agent string for HTTP requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-channel fetch timeout in seconds"`

	// Application configuration
	WorkerCount int    `long:"worker-count" env:"WORKER_COUNT" default:"1" description:"Number of channels processed concurrently"`
	Timezone    string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug       bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		BaseUrl:       raw.BaseUrl,
		ChannelsFile:  raw.ChannelsFile,
		OutputDir:     raw.OutputDir,
		FeedExtension: raw.FeedExtension,
		UserAgent:     raw.UserAgent,
		FetchTimeout:  raw.FetchTimeout,
		WorkerCount:   raw.WorkerCount,
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
