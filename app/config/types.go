package config

// ChannelsFile represents the top-level channel list document
type ChannelsFile struct {
	Channels []Channel `yaml:"channels"`
}

// Channel describes one channel to convert
type Channel struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"` // optional output file basename override
	Title  string `yaml:"title"`  // optional feed title override
}

// OutputName returns the basename the channel's feed document is written under.
func (c Channel) OutputName() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Name
}
