package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/social-network/api-go/models"
	"github.com/social-network/api-go/utils"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetProfile aggregates a user's profile: follower/following counts,
// whether the viewer follows them, and their posts newest first.
func (uc *UserController) GetProfile(c *gin.Context) {
	viewer := utils.GetUser(c)
	username := c.Param("username")

	var user models.User
	if err := uc.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	var followersCount, followingCount int64
	uc.DB.Model(&models.Follow{}).Where("following_user_id = ?", user.ID).Count(&followersCount)
	uc.DB.Model(&models.Follow{}).Where("follower_user_id = ?", user.ID).Count(&followingCount)

	// Always false when viewing your own profile.
	isFollowing := false
	if viewer != nil && viewer.UserID != user.ID {
		var n int64
		uc.DB.Model(&models.Follow{}).
			Where("follower_user_id = ? AND following_user_id = ?", viewer.UserID, user.ID).
			Count(&n)
		isFollowing = n > 0
	}

	var posts []models.Post
	err := uc.DB.Preload("User").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":     user.Username,
		"name":         strings.TrimSpace(user.FirstName + " " + user.LastName),
		"followers":    followersCount,
		"following":    followingCount,
		"is_following": isFollowing,
		"posts":        serializePosts(uc.DB, posts, viewer),
	})
}
