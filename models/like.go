package models

import (
	"time"
)

// Like rows are hard-deleted so a later re-like can insert the same
// (post, user) pair without tripping the unique index.
type Like struct {
	LikeID    uint      `gorm:"column:like_id;primaryKey;autoIncrement"`
	PostID    uint      `gorm:"column:post_id;not null;uniqueIndex:idx_likes_post_user"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_likes_post_user"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
	Post Post `gorm:"foreignKey:PostID"`
}
