package models

import (
	"time"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      string         `gorm:"not null" json:"-"` // Don't expose password in JSON
	Posts         []Post         `json:"posts" gorm:"foreignKey:UserID"`
	Comments      []Comment      `json:"comments" gorm:"foreignKey:UserID"`
	Likes         []Like         `json:"likes" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"refresh_tokens" gorm:"foreignKey:UserID"`
}
