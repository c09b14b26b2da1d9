package domain

import "time"

// Profile is a member profile (profiles table). The ID is shared with the
// authentication identity; only the owner may mutate it.
type Profile struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Username    string    `gorm:"column:username;uniqueIndex;size:50" json:"username"`
	FullName    string    `gorm:"column:full_name;size:100" json:"full_name"`
	Bio         string    `gorm:"column:bio;type:text" json:"bio"`
	AvatarURL   string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	BannerURL   string    `gorm:"column:banner_url" json:"banner_url,omitempty"`
	DarkMode    bool      `gorm:"column:dark_mode;default:true" json:"dark_mode"`
	AccentColor string    `gorm:"column:accent_color;size:20" json:"accent_color,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// UpdateProfileRequest carries the owner-editable fields. Pointers
// distinguish "leave unchanged" from "set to zero value".
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	BannerURL   *string `json:"banner_url"`
	DarkMode    *bool   `json:"dark_mode"`
	AccentColor *string `json:"accent_color"`
}
