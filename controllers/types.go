package controllers

import (
	"time"

	"github.com/social-network/api-go/models"
	"github.com/social-network/api-go/utils"
	"gorm.io/gorm"
)

const timestampLayout = "02-01-2006 15:04:05"

type PostResponse struct {
	ID        uint   `json:"id"`
	User      string `json:"user"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int64  `json:"likes"`
	Liked     bool   `json:"liked"`
	Comments  int64  `json:"comments"`
}

type CommentResponse struct {
	User      string `json:"user"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type UserSummary struct {
	Username string `json:"username"`
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// serializePost builds the client representation of a post from the
// viewer's perspective; liked is always false for anonymous viewers.
// post.User must be preloaded.
func serializePost(db *gorm.DB, post *models.Post, viewer *utils.UserClaims) PostResponse {
	var likes, comments int64
	db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likes)
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)

	liked := false
	if viewer != nil {
		var n int64
		db.Model(&models.Like{}).
			Where("post_id = ? AND user_id = ?", post.ID, viewer.UserID).
			Count(&n)
		liked = n > 0
	}

	return PostResponse{
		ID:        post.ID,
		User:      post.User.Username,
		Content:   post.Content,
		Timestamp: formatTimestamp(post.CreatedAt),
		Likes:     likes,
		Liked:     liked,
		Comments:  comments,
	}
}

func serializePosts(db *gorm.DB, posts []models.Post, viewer *utils.UserClaims) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, serializePost(db, &posts[i], viewer))
	}
	return out
}

// serializeComment needs comment.User populated (preloaded or set from the
// caller's claims).
func serializeComment(comment *models.Comment) CommentResponse {
	return CommentResponse{
		User:      comment.User.Username,
		Content:   comment.Content,
		Timestamp: formatTimestamp(comment.CreatedAt),
	}
}
