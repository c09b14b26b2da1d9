package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/openvoice/openvoice-backend/internal/common"
)

// Post source tags
const (
	SourceUser = "user"
	SourceAPI  = "api"
)

// Post is a user-authored entry in the posts table.
// Posts are immutable once created except for deletion by their owner;
// engagement edges cascade on delete at the database level.
type Post struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"column:user_id;index;size:36" json:"user_id"`
	Title     string    `gorm:"column:title;size:200" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url,omitempty"`
	Source    string    `gorm:"column:source;size:10;default:user" json:"source"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest is the composer payload
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// PostResponse is a post with its author joined in
type PostResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// ParsePostID normalizes a post identifier. The web client historically sent
// ids either as plain numbers or prefixed as "db:<n>"; both forms are
// accepted, anything else is an error rather than a silent nil.
func ParsePostID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, common.ErrInvalidPostID
	}
	if rest, ok := strings.CutPrefix(raw, "db:"); ok {
		raw = rest
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrInvalidPostID
	}
	return id, nil
}
