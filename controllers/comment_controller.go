package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/social-network/api-go/models"
	"github.com/social-network/api-go/utils"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

func (cc *CommentController) ListComments(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.Comment
	err := cc.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments"})
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, serializeComment(&comments[i]))
	}

	c.JSON(http.StatusOK, out)
}

func (cc *CommentController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)
	postID := c.Param("id")

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
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

	comment := models.Comment{
		Content: content,
		UserID:  user.UserID,
		PostID:  post.ID,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	comment.User.Username = user.Username
	c.JSON(http.StatusOK, serializeComment(&comment))
}
