package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/auth"
	"roadtrip/internal/middleware"
	"roadtrip/internal/models"
	"roadtrip/internal/store"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register creates an account and hands back a token pair. The unique email
// index turns a concurrent duplicate insert into a clean conflict.
func Register(users store.UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Println("[AUTH] [ERROR] register password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user registration failed"})
			return
		}

		user := models.User{
			Email:          email,
			FullName:       strings.TrimSpace(req.FullName),
			Role:           models.RoleUser,
			HashedPassword: hashed,
			Destinations:   []models.Destination{},
			CreatedAt:      time.Now().UTC(),
		}

		userID, err := users.Insert(ctx, &user)
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				log.Println("[AUTH] [ERROR] register email exists:", email)
				c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
				return
			}
			log.Println("[AUTH] [ERROR] register insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user registration failed"})
			return
		}

		pair, err := tokens.IssuePair(userID, email)
		if err != nil {
			log.Println("[AUTH] [ERROR] register token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		log.Println("[AUTH] [INFO] user registered:", email)
		c.JSON(http.StatusOK, pair)
	}
}

// Login verifies credentials and issues a fresh token pair. Unknown email and
// wrong password return the same message so accounts cannot be enumerated.
func Login(users store.UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, email)
		if err != nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
			log.Println("[AUTH] [ERROR] login invalid credentials")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
			return
		}

		pair, err := tokens.IssuePair(user.ID.Hex(), user.Email)
		if err != nil {
			log.Println("[AUTH] [ERROR] login token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		log.Println("[AUTH] [INFO] user login succeeded:", user.Email)
		c.JSON(http.StatusOK, pair)
	}
}

// Refresh issues a new access token from a valid refresh token. The refresh
// token itself is echoed back unchanged; rotation is a known gap.
func Refresh(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
			return
		}

		claims, err := tokens.Decode(req.RefreshToken)
		if err != nil {
			log.Println("[AUTH] [ERROR] refresh token validation failed:", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		userID := auth.UserID(claims)
		if userID == "" {
			log.Println("[AUTH] [ERROR] refresh token user_id claim missing")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		email, _ := claims["sub"].(string)
		accessToken, err := tokens.IssueAccessToken(userID, email)
		if err != nil {
			log.Println("[AUTH] [ERROR] refresh token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, auth.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: req.RefreshToken,
		})
	}
}

// Me returns the account behind the bearer token, public projection only.
func Me(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			log.Println("[AUTH] [ERROR] my_user lookup failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// ReadUser is an open lookup of any account's public projection by id.
func ReadUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id format"})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// AllUsers lists every account. Mounted behind the admin role check.
func AllUsers(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := users.All(ctx)
		if err != nil {
			log.Println("[AUTH] [ERROR] all_users listing failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}
