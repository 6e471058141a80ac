package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/social-network/api-go/models"
	"github.com/social-network/api-go/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// LikePost toggles the caller's like on a post and returns the post's
// current serialized state. The insert is a single create-or-detect
// against the unique (post_id, user_id) index, so two concurrent likes
// cannot produce duplicate rows.
func (ic *InteractionController) LikePost(c *gin.Context) {
	postID := c.Param("id")
	user := utils.GetUser(c)

	var post models.Post
	if err := ic.DB.Preload("User").First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	like := models.Like{PostID: post.ID, UserID: user.UserID}
	result := ic.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	if result.RowsAffected == 0 {
		// Already liked: toggle off.
		err := ic.DB.Where("post_id = ? AND user_id = ?", post.ID, user.UserID).
			Delete(&models.Like{}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
			return
		}
	} else {
		ic.DB.Create(&models.ActivityLog{
			UserID:   user.UserID,
			PostID:   post.ID,
			Activity: "post_liked",
		})
	}

	c.JSON(http.StatusOK, serializePost(ic.DB, &post, user))
}

func (ic *InteractionController) GetLikers(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := ic.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var likers []UserSummary
	err := ic.DB.Model(&models.Like{}).
		Select("users.username").
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.post_id = ?", post.ID).
		Find(&likers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching likers"})
		return
	}

	c.JSON(http.StatusOK, likers)
}

// FollowUser toggles the follow edge from the caller to the target user,
// with the same atomic create-or-detect shape as LikePost.
func (ic *InteractionController) FollowUser(c *gin.Context) {
	username := c.Param("username")
	follower := utils.GetUser(c)

	var targetUser models.User
	if err := ic.DB.Where("username = ?", username).First(&targetUser).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if follower.UserID == targetUser.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	follow := models.Follow{
		FollowerUserID:  follower.UserID,
		FollowingUserID: targetUser.ID,
	}
	result := ic.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	isFollowing := result.RowsAffected > 0
	if isFollowing {
		ic.DB.Create(&models.ActivityLog{
			UserID:   follower.UserID,
			Activity: "user_followed",
		})
	} else {
		err := ic.DB.Where("follower_user_id = ? AND following_user_id = ?", follower.UserID, targetUser.ID).
			Delete(&models.Follow{}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
			return
		}
	}

	var followers int64
	ic.DB.Model(&models.Follow{}).Where("following_user_id = ?", targetUser.ID).Count(&followers)

	c.JSON(http.StatusOK, gin.H{
		"is_following": isFollowing,
		"followers":    followers,
	})
}

func (ic *InteractionController) GetFollowData(c *gin.Context) {
	username := c.Param("username")
	followType := c.Param("follow_type")

	if followType != "following" && followType != "followers" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not a valid request"})
		return
	}

	var user models.User
	if err := ic.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	query := ic.DB.Model(&models.Follow{}).Select("users.username")
	if followType == "following" {
		query = query.
			Joins("JOIN users ON users.id = follows.following_user_id").
			Where("follows.follower_user_id = ?", user.ID)
	} else {
		query = query.
			Joins("JOIN users ON users.id = follows.follower_user_id").
			Where("follows.following_user_id = ?", user.ID)
	}

	var users []UserSummary
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching follow data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"follow_type": followType,
		"users":       users,
	})
}
