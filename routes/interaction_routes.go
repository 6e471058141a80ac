package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/social-network/api-go/controllers"
)

func SetupInteractionRoutes(r *gin.Engine, interactionController *controllers.InteractionController, requireAuth gin.HandlerFunc) {
	r.POST("/posts/:id/like", requireAuth, interactionController.LikePost)
	r.GET("/posts/:id/likers", requireAuth, interactionController.GetLikers)

	r.POST("/profile/:username/follow", requireAuth, interactionController.FollowUser)
	r.GET("/:username/:follow_type", requireAuth, interactionController.GetFollowData)
}
