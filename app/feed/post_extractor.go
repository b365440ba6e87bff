package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titlePlaceholder stands in for posts without a bold run to derive a title
// from. The ellipsis suffix is appended on top of it, matching the observed
// output of the service this replaces.
const titlePlaceholder = "..."

// PostExtractor turns one post-container node into a Post.
type PostExtractor struct{}

func NewPostExtractor() *PostExtractor {
	return &PostExtractor{}
}

// Run extracts a Post from a post-container selection. The second return
// value is false when the container lacks the identifying timestamp or
// permalink and is not a genuine post; such containers are skipped, not
// failed.
func (e *PostExtractor) Run(s *goquery.Selection) (Post, bool, error) {
	pubDate, hasDate := s.Find("time.time").First().Attr("datetime")
	link, hasLink := s.Find("a.tgme_widget_message_date").First().Attr("href")
	if !hasDate || !hasLink || pubDate == "" || link == "" {
		return Post{}, false, nil
	}

	description := ""
	title := titlePlaceholder

	if text := s.Find("div.js-message_text").First(); text.Length() > 0 {
		// The preview markup sometimes wraps the text node in a second
		// node with the same marker; the inner one holds the content.
		if inner := text.Find("div.js-message_text").First(); inner.Length() > 0 {
			description, _ = inner.Html()
		} else {
			description, _ = text.Html()
		}

		if bold := text.Find("b").First(); bold.Length() > 0 {
			title = strings.TrimSpace(bold.Text())
		}
	}
	title += "..."

	// The separator is written per photo wrap even when no URL could be
	// extracted, leaving a bare newline for malformed styles; the service
	// this replaces did the same.
	s.Find("a.tgme_widget_message_photo_wrap").Each(func(_ int, image *goquery.Selection) {
		description = description + "\n" + extractImage(image)
	})

	if reply := s.Find("a.tgme_widget_message_reply").First(); reply.Length() > 0 {
		replyText, err := extractReply(reply)
		if err != nil {
			return Post{}, false, err
		}
		description = replyText + "\n" + description
	}

	if s.Find("div.tgme_widget_message_video_wrap").Length() > 0 {
		description = description + "\n" + videoNotice
	}

	if preview := s.Find("a.tgme_widget_message_link_preview").First(); preview.Length() > 0 {
		previewText, err := extractPreview(preview)
		if err != nil {
			return Post{}, false, err
		}
		description = description + "\n" + previewText
	}

	author := s.Find("span.tgme_widget_message_from_author").First()
	if author.Length() == 0 {
		author = s.Find("a.tgme_widget_message_owner_name").First()
	}

	return Post{
		Title:       title,
		Description: description,
		PubDate:     pubDate,
		Link:        link,
		Author:      author.Text(),
	}, true, nil
}
