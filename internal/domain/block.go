package domain

import "time"

// BlockedUser is a block edge (blocked_users table)
type BlockedUser struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BlockerID string    `gorm:"column:blocker_id;uniqueIndex:idx_blocks_pair;size:36" json:"blocker_id"`
	BlockedID string    `gorm:"column:blocked_id;uniqueIndex:idx_blocks_pair;size:36" json:"blocked_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BlockedUser) TableName() string {
	return "blocked_users"
}

// BlockResponse is a block entry joined with the blocked profile
type BlockResponse struct {
	BlockedID string `json:"blocked_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
	BlockedAt string `json:"blocked_at"`
}
