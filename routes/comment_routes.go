package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/social-network/api-go/controllers"
)

func SetupCommentRoutes(r *gin.Engine, commentController *controllers.CommentController, requireAuth gin.HandlerFunc) {
	// Reading comments is public; writing one requires a session.
	r.GET("/posts/:id/comments", commentController.ListComments)
	r.POST("/posts/:id/comments", requireAuth, commentController.AddComment)
}
