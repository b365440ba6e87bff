package tasks

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"

	"github.com/lysyi3m/tg-comb/app/config"
	"github.com/lysyi3m/tg-comb/app/feed"
	"github.com/lysyi3m/tg-comb/app/fetcher"
)

// ProcessChannelTask runs one full fetch-parse-render cycle for a channel
// and writes the resulting feed document.
type ProcessChannelTask struct {
	Task
	Channel          config.Channel
	fetcher          *fetcher.Client
	channelExtractor *feed.ChannelExtractor
	generator        *feed.Generator
	baseURL          string
	outputDir        string
	extension        string
}

func NewProcessChannelTask(channel config.Channel, fetchClient *fetcher.Client,
	channelExtractor *feed.ChannelExtractor, generator *feed.Generator,
	baseURL, outputDir, extension string) *ProcessChannelTask {
	return &ProcessChannelTask{
		Task:             NewTask(TaskTypeProcessChannel, channel.Name),
		Channel:          channel,
		fetcher:          fetchClient,
		channelExtractor: channelExtractor,
		generator:        generator,
		baseURL:          baseURL,
		outputDir:        outputDir,
		extension:        extension,
	}
}

func (t *ProcessChannelTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	url := t.baseURL + t.Channel.Name

	data, err := t.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch channel page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse channel page: %w", err)
	}

	channelFeed, err := t.channelExtractor.Run(doc, url)
	if err != nil {
		return fmt.Errorf("failed to extract channel feed: %w", err)
	}

	if t.Channel.Title != "" {
		channelFeed.Title = t.Channel.Title
	}

	output, err := t.generator.Run(channelFeed)
	if err != nil {
		return fmt.Errorf("failed to generate feed document: %w", err)
	}

	if err := os.MkdirAll(t.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Written in one shot after the feed is fully assembled, so a failing
	// channel never leaves a partial file behind.
	outputPath := filepath.Join(t.outputDir, t.Channel.OutputName()+"."+t.extension)
	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write feed document: %w", err)
	}

	slog.Info("Task completed",
		"type", "ProcessChannel",
		"channel", t.Channel.Name,
		"duration", t.GetDuration(),
		"posts", len(channelFeed.Posts),
		"output", outputPath)

	return nil
}
