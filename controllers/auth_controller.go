package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/social-network/api-go/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour * 24
	refreshTokenTTL = time.Hour * 24 * 30

	blacklistPrefix = "blacklist:"
)

type AuthController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewAuthController(db *gorm.DB, rdb *redis.Client) *AuthController {
	return &AuthController{DB: db, RDB: rdb}
}

// validateUsernamePattern validates username format and constraints
func validateUsernamePattern(username string) error {
	trimmedUsername := strings.TrimSpace(username)

	if len(trimmedUsername) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(trimmedUsername) > 20 {
		return fmt.Errorf("username must be no more than 20 characters long")
	}

	validPattern, _ := regexp.MatchString(`^[a-zA-Z][a-zA-Z0-9_]*$`, trimmedUsername)
	if !validPattern {
		return fmt.Errorf("username must start with a letter and contain only letters, numbers, and underscores")
	}

	reserved := []string{"admin", "root", "api", "login", "logout", "register", "newpost", "posts", "profile"}
	for _, reservedWord := range reserved {
		if strings.EqualFold(trimmedUsername, reservedWord) {
			return fmt.Errorf("this username is reserved and cannot be used")
		}
	}

	return nil
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Username     string `json:"username" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Password     string `json:"password" binding:"required,min=6"`
		Confirmation string `json:"confirmation" binding:"required"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if input.Password != input.Confirmation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords must match.", "success": false})
		return
	}

	if err := validateUsernamePattern(input.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashedPassword),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken.", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user", "success": false})
		return
	}

	// Registration logs the user in immediately.
	accessToken, refreshToken, err := ac.issueTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
		"success": true,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "success": false})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "success": false})
		return
	}

	accessToken, refreshToken, err := ac.issueTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          gin.H{"id": user.ID, "username": user.Username, "email": user.Email},
		"success":       true,
	})
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var refreshToken models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&refreshToken).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.DB.Delete(&refreshToken)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, refreshToken.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found", "success": false})
		return
	}

	accessToken, err := ac.signAccessToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate access token", "success": false})
		return
	}

	// Rotate the refresh token on every use.
	refreshToken.Token = uuid.NewString()
	refreshToken.ExpirationDate = time.Now().Add(refreshTokenTTL)
	if err := ac.DB.Save(&refreshToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not rotate refresh token", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken.Token,
		"user":          gin.H{"id": user.ID, "username": user.Username, "email": user.Email},
		"success":       true,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	// Body is optional; logging out anonymously is still a successful logout.
	_ = c.ShouldBindJSON(&input)

	if input.RefreshToken != "" {
		ac.DB.Where("token = ?", input.RefreshToken).Delete(&models.RefreshToken{})
	}

	ac.blacklistAccessToken(c)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "success": true})
}

// blacklistAccessToken revokes the bearer token on the request, if any,
// for the remainder of its lifetime.
func (ac *AuthController) blacklistAccessToken(c *gin.Context) {
	bearerToken := strings.Split(c.GetHeader("Authorization"), " ")
	if len(bearerToken) != 2 {
		return
	}
	token := bearerToken[1]

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return
	}

	ttl := accessTokenTTL
	if exp, ok := claims["exp"].(float64); ok {
		ttl = time.Until(time.Unix(int64(exp), 0))
	}
	if ttl <= 0 {
		return
	}

	ac.RDB.Set(c.Request.Context(), blacklistPrefix+token, "1", ttl)
}

func (ac *AuthController) issueTokens(user *models.User) (string, string, error) {
	accessToken, err := ac.signAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken := uuid.NewString()
	err = ac.DB.Create(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(refreshTokenTTL),
	}).Error
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (ac *AuthController) signAccessToken(user *models.User) (string, error) {
	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(accessTokenTTL).Unix(),
	})
	return accessTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
