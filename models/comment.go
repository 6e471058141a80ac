package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	Content   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null"`
	User      User
	PostID    uint `gorm:"not null"`
	Post      Post
	CreatedAt time.Time
	UpdatedAt time.Time
}
