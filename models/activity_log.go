package models

import (
	"time"
)

type ActivityLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null"`
	PostID    uint      // zero when the activity has no post (e.g. user_followed)
	Activity  string    `gorm:"not null;type:varchar(50)"` // post_created, post_deleted, post_liked, user_followed
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
