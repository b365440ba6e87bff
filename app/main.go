package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/tg-comb/app/cfg"
	"github.com/lysyi3m/tg-comb/app/config"
	"github.com/lysyi3m/tg-comb/app/feed"
	"github.com/lysyi3m/tg-comb/app/fetcher"
	"github.com/lysyi3m/tg-comb/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	if appConfig.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Printf("Starting tg-comb %s...", appConfig.Version)

	log.Printf("Loading channel list from %s...", appConfig.ChannelsFile)
	channels, err := config.NewLoader(appConfig.ChannelsFile).Load()
	if err != nil {
		log.Fatalf("Failed to load channel list: %v", err)
	}
	log.Printf("Loaded %d channels", len(channels))

	fetchClient := fetcher.NewClient(time.Duration(appConfig.FetchTimeout)*time.Second, appConfig.UserAgent)
	channelExtractor := feed.NewChannelExtractor()
	generator := feed.NewGenerator(appConfig.Version)

	taskList := make([]tasks.TaskInterface, 0, len(channels))
	for _, channel := range channels {
		taskList = append(taskList, tasks.NewProcessChannelTask(
			channel, fetchClient, channelExtractor, generator,
			appConfig.BaseUrl, appConfig.OutputDir, appConfig.FeedExtension))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Processing %d channels with %d workers...", len(taskList), appConfig.WorkerCount)
	failures := tasks.NewRunner(appConfig.WorkerCount).Run(ctx, taskList)

	log.Printf("Run complete: %d succeeded, %d failed", len(taskList)-len(failures), len(failures))
	for _, failure := range failures {
		log.Printf("Failed: %v", failure)
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}
