package models

import (
	"time"
)

// Follow is a directed edge: follower -> following. At most one edge per
// ordered pair; hard-deleted for the same reason as Like.
type Follow struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	FollowerUserID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair"`
	FollowingUserID uint      `gorm:"not null;uniqueIndex:idx_follows_pair"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	FollowerUser  User `gorm:"foreignKey:FollowerUserID"`
	FollowingUser User `gorm:"foreignKey:FollowingUserID"`
}
