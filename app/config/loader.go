package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the channel list
type Loader struct {
	path string
}

// NewLoader creates a new channel list loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the YAML channel list and returns the validated channels
func (l *Loader) Load() ([]Channel, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read channels file: %w", err)
	}

	var file ChannelsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Channels) == 0 {
		return nil, fmt.Errorf("no channels defined in %s", l.path)
	}

	seen := make(map[string]bool, len(file.Channels))
	for i, channel := range file.Channels {
		if err := l.validate(channel); err != nil {
			return nil, fmt.Errorf("invalid channel at index %d: %w", i, err)
		}
		if seen[channel.Name] {
			return nil, fmt.Errorf("duplicate channel at index %d: %s", i, channel.Name)
		}
		seen[channel.Name] = true
	}

	return file.Channels, nil
}

// validate validates a single channel entry
func (l *Loader) validate(channel Channel) error {
	if channel.Name == "" {
		return fmt.Errorf("channel name is required")
	}
	if strings.ContainsAny(channel.Name, "/ ") {
		return fmt.Errorf("channel name must not contain slashes or spaces: %q", channel.Name)
	}
	if strings.ContainsAny(channel.Output, "/ ") {
		return fmt.Errorf("output name must not contain slashes or spaces: %q", channel.Output)
	}
	return nil
}
