package feed

import (
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// videoNotice is appended to a post body when the message carries a video.
// The preview page exposes no downloadable source for it.
const videoNotice = "<p><b>The message contain video, for watch it please visit the channel.</b></p>"

var imageURLPattern = regexp.MustCompile(`url\('(.*)'\)`)

// extractImage reads a background-image URL out of the node's style
// attribute. An empty string means the style carried no recognizable URL;
// malformed styles never fail.
func extractImage(s *goquery.Selection) string {
	match := imageURLPattern.FindStringSubmatch(s.AttrOr("style", ""))
	if match == nil {
		return ""
	}

	return fmt.Sprintf(`<img src="%s" referrerpolicy="no-referrer">`, match[1])
}

// extractReply renders a quoted-reply widget as a blockquote. The caller has
// already confirmed the widget is present, so both sub-nodes are required.
func extractReply(s *goquery.Selection) (string, error) {
	author := s.Find("span.tgme_widget_message_author_name").First()
	text := s.Find("div.js-message_reply_text").First()

	if author.Length() == 0 {
		return "", fmt.Errorf("reply author: %w", ErrMissingElement)
	}
	if text.Length() == 0 {
		return "", fmt.Errorf("reply text: %w", ErrMissingElement)
	}

	authorHTML, _ := author.Html()
	textHTML, _ := text.Html()

	return fmt.Sprintf(`<div class="rsshub-quote"><blockquote><p><a href="%s"><b>%s</b>:</a></p><p>%s</p></blockquote></div>`,
		s.AttrOr("href", ""), authorHTML, textHTML), nil
}

// extractPreview renders a link-preview widget as a blockquote. Only the
// site name is required; title falls back to it and description and image
// are omitted when absent.
func extractPreview(s *goquery.Selection) (string, error) {
	siteName := s.Find("div.link_preview_site_name").First()
	if siteName.Length() == 0 {
		return "", fmt.Errorf("preview site name: %w", ErrMissingElement)
	}
	siteNameHTML, _ := siteName.Html()

	imageText := ""
	if image := s.Find("i.link_preview_image").First(); image.Length() > 0 {
		imageText = extractImage(image)
	}

	titleHTML := siteNameHTML
	if title := s.Find("div.link_preview_title").First(); title.Length() > 0 {
		titleHTML, _ = title.Html()
	}

	descriptionText := ""
	if description := s.Find("div.link_preview_description").First(); description.Length() > 0 {
		descriptionHTML, _ := description.Html()
		descriptionText = fmt.Sprintf("<p>%s</p>", descriptionHTML)
	}

	return fmt.Sprintf(`<blockquote><b>%s</b><br><b><a href="%s">%s</a></b><br>%s%s</blockquote>`,
		siteNameHTML, s.AttrOr("href", ""), titleHTML, descriptionText, imageText), nil
}
