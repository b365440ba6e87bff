package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ChannelExtractor assembles the complete Feed for one channel page.
type ChannelExtractor struct {
	postExtractor *PostExtractor
	nowFn         func() time.Time
}

func NewChannelExtractor() *ChannelExtractor {
	return &ChannelExtractor{
		postExtractor: NewPostExtractor(),
		nowFn:         time.Now,
	}
}

// Run walks the parsed page once in document order, extracting every post
// container and the channel-level metadata. url is the address the page was
// fetched from; the feed-view path segment is stripped out of it to produce
// the human-facing channel link.
func (e *ChannelExtractor) Run(doc *goquery.Document, url string) (*Feed, error) {
	title, ok := metaContent(doc, "og:title")
	if !ok {
		return nil, fmt.Errorf("og:title: %w", ErrMissingMetadata)
	}

	description, ok := metaContent(doc, "og:description")
	if !ok {
		return nil, fmt.Errorf("og:description: %w", ErrMissingMetadata)
	}

	feed := &Feed{
		Title:         title,
		Description:   description,
		Link:          strings.Replace(url, "t.me/s/", "t.me/", 1),
		LastBuildDate: e.nowFn().UTC().Format(time.RFC1123Z),
		Posts:         []Post{},
	}

	var runErr error
	doc.Find("div.tgme_widget_message_wrap").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		post, ok, err := e.postExtractor.Run(s)
		if err != nil {
			runErr = fmt.Errorf("failed to extract post: %w", err)
			return false
		}
		if ok {
			feed.Posts = append(feed.Posts, post)
		}
		return true
	})
	if runErr != nil {
		return nil, runErr
	}

	return feed, nil
}

func metaContent(doc *goquery.Document, property string) (string, bool) {
	return doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
}
