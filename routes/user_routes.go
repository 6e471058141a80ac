package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/social-network/api-go/controllers"
)

func SetupUserRoutes(r *gin.Engine, userController *controllers.UserController, requireAuth gin.HandlerFunc) {
	r.GET("/profile/:username", requireAuth, userController.GetProfile)
}
