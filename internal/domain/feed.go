package domain

import "github.com/openvoice/openvoice-backend/pkg/news"

// Feed entry types
const (
	EntryPost = "post"
	EntryNews = "news"
)

// FeedEntry is the presentation-time union of a post and a news item.
// Exactly one of Post/News is set depending on Type. Never persisted.
type FeedEntry struct {
	Type string        `json:"type"`
	Key  string        `json:"key"`
	Post *PostResponse `json:"post,omitempty"`
	News *news.Item    `json:"news,omitempty"`
}
