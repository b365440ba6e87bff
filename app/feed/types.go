package feed

import "errors"

var (
	// ErrMissingMetadata indicates the channel page lacks the required
	// social-sharing meta tags.
	ErrMissingMetadata = errors.New("required channel metadata is missing")

	// ErrMissingElement indicates a detected widget lacks a sub-node its
	// shape guarantees.
	ErrMissingElement = errors.New("required widget element is missing")
)

// Post is one normalized channel message, ready for feed rendering.
type Post struct {
	Title       string
	Description string // normalized HTML fragment, injected into the feed as-is
	PubDate     string // verbatim from the source's datetime attribute
	Link        string // verbatim from the source's post-date anchor
	Author      string
}

// Feed is the channel-level output consumed by the generator.
type Feed struct {
	Title         string
	Description   string
	Link          string
	LastBuildDate string
	Posts         []Post
}
