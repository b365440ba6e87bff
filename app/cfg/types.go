package cfg

type Cfg struct {
	// Channel source configuration
	BaseUrl      string
	ChannelsFile string

	// Output configuration
	OutputDir     string
	FeedExtension string

	// Fetch configuration
	UserAgent    string
	FetchTimeout int

	// Application configuration
	WorkerCount int
	Timezone    string
	Debug       bool
	Version     string
}
