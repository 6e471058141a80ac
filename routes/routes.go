package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/social-network/api-go/controllers"
	"github.com/social-network/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Initialize controllers
	authController := controllers.NewAuthController(db, rdb)
	postController := controllers.NewPostController(db)
	interactionController := controllers.NewInteractionController(db)
	userController := controllers.NewUserController(db)
	commentController := controllers.NewCommentController(db)

	requireAuth := middleware.AuthMiddleware(rdb)
	optionalAuth := middleware.OptionalAuthMiddleware(rdb)

	// Session routes
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/refresh-token", authController.RefreshToken)
	r.POST("/logout", optionalAuth, authController.Logout)

	SetupPostRoutes(r, postController, requireAuth, optionalAuth)
	SetupCommentRoutes(r, commentController, requireAuth)
	SetupInteractionRoutes(r, interactionController, requireAuth)
	SetupUserRoutes(r, userController, requireAuth)
}
