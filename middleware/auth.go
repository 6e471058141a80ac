package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/social-network/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const blacklistPrefix = "blacklist:"

// AuthMiddleware rejects requests without a valid, non-revoked bearer token.
func AuthMiddleware(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errMsg := claimsFromRequest(c, rdb)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errMsg})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the user context when a valid token is
// presented and lets the request through anonymously otherwise.
func OptionalAuthMiddleware(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, _ := claimsFromRequest(c, rdb); claims != nil {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func claimsFromRequest(c *gin.Context, rdb *redis.Client) (*utils.UserClaims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "Authorization header is required"
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
		return nil, "Invalid token format"
	}

	token := bearerToken[1]

	// Tokens blacklisted at logout stay invalid until their natural expiry.
	exists, err := rdb.Exists(c.Request.Context(), blacklistPrefix+token).Result()
	if err == nil && exists > 0 {
		return nil, "Token has been revoked"
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, "Invalid token"
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, "Invalid token claims"
	}
	username, _ := claims["username"].(string)

	return &utils.UserClaims{
		UserID:   uint(userID),
		Username: username,
	}, ""
}
