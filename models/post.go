package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Post struct {
	gorm.Model
	Content   string         `json:"content" gorm:"type:text;not null"`
	Hashtags  pq.StringArray `json:"hashtags" gorm:"type:text[]"`
	UserID    uint           `json:"userId" gorm:"not null"`
	User      User           `json:"user" gorm:"foreignKey:UserID"`
	Comments  []Comment      `json:"comments" gorm:"foreignKey:PostID"`
	Likes     []Like         `json:"likes" gorm:"foreignKey:PostID"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
