package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/social-network/api-go/models"
	"github.com/social-network/api-go/utils"
	"gorm.io/gorm"
)

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

type PostContentRequest struct {
	Content string `json:"content"`
}

// CreatePost handles /newpost.
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)

	var req PostContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty."})
		return
	}

	post := models.Post{
		Content:  content,
		Hashtags: extractHashtags(content),
		UserID:   user.UserID,
	}

	tx := pc.DB.Begin()

	if err := tx.Create(&post).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	activity := models.ActivityLog{
		UserID:   user.UserID,
		PostID:   post.ID,
		Activity: "post_created",
	}
	if err := tx.Create(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity log"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "New post created with content: " + content})
}

// ListPosts serves /posts/all, /posts/following and /posts/user. The
// wildcard is registered as :id so it can share the segment with the
// post-id routes; here it carries the listing scope.
func (pc *PostController) ListPosts(c *gin.Context) {
	scope := c.Param("id")
	viewer := utils.GetUser(c)

	var base *gorm.DB
	switch scope {
	case "all":
		base = pc.DB.Model(&models.Post{})
	case "following":
		if viewer == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		followedAuthors := pc.DB.Model(&models.Follow{}).
			Select("following_user_id").
			Where("follower_user_id = ?", viewer.UserID)
		base = pc.DB.Model(&models.Post{}).Where("user_id IN (?)", followedAuthors)
	case "user":
		username := c.Query("username")
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username not provided"})
			return
		}
		var author models.User
		if err := pc.DB.Where("username = ?", username).First(&author).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		base = pc.DB.Model(&models.Post{}).Where("user_id = ?", author.ID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type parameter."})
		return
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count posts"})
		return
	}

	page := utils.Paginate(total, utils.PostsPerPage, c.DefaultQuery("page", "1"))

	var posts []models.Post
	err := base.Preload("User").
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":        serializePosts(pc.DB, posts, viewer),
		"has_next":     page.HasNext(),
		"has_previous": page.HasPrevious(),
		"current_page": page.Number,
		"num_pages":    page.NumPages,
	})
}

func (pc *PostController) EditPost(c *gin.Context) {
	user := utils.GetUser(c)
	postID := c.Param("id")

	var post models.Post
	if err := pc.DB.Preload("User").First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own posts"})
		return
	}

	var req PostContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty."})
		return
	}

	// The creation timestamp is immutable; only content and hashtags move.
	updates := map[string]interface{}{
		"content":  content,
		"hashtags": extractHashtags(content),
	}
	if err := pc.DB.Model(&post).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	post.Content = content

	c.JSON(http.StatusOK, serializePost(pc.DB, &post, user))
}

func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	postID := c.Param("id")

	var post models.Post
	if err := pc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own posts"})
		return
	}

	tx := pc.DB.Begin()

	if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete likes"})
		return
	}

	if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comments"})
		return
	}

	activity := models.ActivityLog{
		UserID:   user.UserID,
		PostID:   post.ID,
		Activity: "post_deleted",
	}
	if err := tx.Create(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity log"})
		return
	}

	if err := tx.Delete(&post).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// extractHashtags pulls #tags out of post content.
func extractHashtags(content string) pq.StringArray {
	words := strings.Fields(content)
	var hashtags pq.StringArray
	for _, word := range words {
		if strings.HasPrefix(word, "#") {
			hashtag := strings.TrimPrefix(word, "#")
			if hashtag != "" {
				hashtags = append(hashtags, hashtag)
			}
		}
	}
	return hashtags
}
