package domain

import "time"

// Follow is a follower edge (follows table). At most one per pair.
type Follow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  string    `gorm:"column:follower_id;uniqueIndex:idx_follows_pair;size:36" json:"follower_id"`
	FollowingID string    `gorm:"column:following_id;uniqueIndex:idx_follows_pair;size:36" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// FollowStats summarizes a profile's follow relations
type FollowStats struct {
	Followers   int64 `json:"followers"`
	Following   int64 `json:"following"`
	IsFollowing bool  `json:"is_following"`
}
