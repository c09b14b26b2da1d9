package domain

import "time"

// EngagementKind selects one of the three edge collections
type EngagementKind string

const (
	KindLike   EngagementKind = "like"
	KindSave   EngagementKind = "save"
	KindRepost EngagementKind = "repost"
)

// Valid reports whether the kind names a real collection
func (k EngagementKind) Valid() bool {
	switch k {
	case KindLike, KindSave, KindRepost:
		return true
	}
	return false
}

// Like is a like edge (likes table). At most one per (post, viewer).
type Like struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;uniqueIndex:idx_likes_post_user;constraint:OnDelete:CASCADE" json:"post_id"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_likes_post_user;size:36" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Save is a bookmark edge (saves table). At most one per (post, viewer).
type Save struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;uniqueIndex:idx_saves_post_user;constraint:OnDelete:CASCADE" json:"post_id"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_saves_post_user;size:36" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Save) TableName() string {
	return "saves"
}

// Repost is a repost edge (reposts table), optionally carrying quote text.
// At most one per (post, viewer); a quote repost upserts into the same row.
type Repost struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;uniqueIndex:idx_reposts_post_user;constraint:OnDelete:CASCADE" json:"post_id"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_reposts_post_user;size:36" json:"user_id"`
	Quote     *string   `gorm:"column:quote;type:text" json:"quote,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Repost) TableName() string {
	return "reposts"
}

// EngagementState is the viewer-facing snapshot of one post's engagement.
// Counts are recomputed from the edge tables on each load, never stored.
type EngagementState struct {
	LikeCount   int64 `json:"like_count"`
	RepostCount int64 `json:"repost_count"`
	IsLiked     bool  `json:"is_liked"`
	IsSaved     bool  `json:"is_saved"`
	IsReposted  bool  `json:"is_reposted"`
}

// Toggle returns the state after flipping the given kind, plus whether the
// flip turns the edge on. It is a pure transition: callers apply it
// optimistically and keep the old value around for rollback.
func (s EngagementState) Toggle(kind EngagementKind) (EngagementState, bool) {
	next := s
	switch kind {
	case KindLike:
		next.IsLiked = !s.IsLiked
		if next.IsLiked {
			next.LikeCount = s.LikeCount + 1
		} else if s.LikeCount > 0 {
			next.LikeCount = s.LikeCount - 1
		}
		return next, next.IsLiked
	case KindSave:
		next.IsSaved = !s.IsSaved
		return next, next.IsSaved
	case KindRepost:
		next.IsReposted = !s.IsReposted
		if next.IsReposted {
			next.RepostCount = s.RepostCount + 1
		} else if s.RepostCount > 0 {
			next.RepostCount = s.RepostCount - 1
		}
		return next, next.IsReposted
	}
	return s, false
}

// WithQuoteRepost returns the state after a successful quote repost.
// The count only moves when the viewer had no prior repost edge.
func (s EngagementState) WithQuoteRepost() EngagementState {
	next := s
	if !s.IsReposted {
		next.IsReposted = true
		next.RepostCount = s.RepostCount + 1
	}
	return next
}
