package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/social-network/api-go/controllers"
)

func SetupPostRoutes(r *gin.Engine, postController *controllers.PostController, requireAuth, optionalAuth gin.HandlerFunc) {
	r.POST("/newpost", requireAuth, postController.CreatePost)

	// gin allows one wildcard name per path segment, so the listing scope
	// (/posts/all, /posts/following, /posts/user) shares :id with the
	// post-id routes.
	r.GET("/posts/:id", optionalAuth, postController.ListPosts)
	r.POST("/posts/:id/edit", requireAuth, postController.EditPost)
	r.DELETE("/posts/:id/delete", requireAuth, postController.DeletePost)
}
