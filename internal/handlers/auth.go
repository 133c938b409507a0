package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trakzone/checkin-service/internal/auth"
	"github.com/trakzone/checkin-service/internal/models"
	"github.com/trakzone/checkin-service/internal/store"
)

// RegisterAuthRoutes registers account endpoints.
//
// POST /register  - create an account (username unique; email per config)
// POST /login     - exchange credentials for a bearer token
// GET  /protected - token probe returning the caller's identity
func RegisterAuthRoutes(public, protected gin.IRoutes, st Store, tokens *auth.JWTManager, uniqueEmail bool) {
	public.POST("/register", func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		// Best-effort pre-check; the rule is configurable so the schema
		// carries no email constraint.
		if uniqueEmail {
			_, err := st.UserByEmail(c.Request.Context(), req.Email)
			if err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "email already exists"})
				return
			}
			if !errors.Is(err, store.ErrUserNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
				return
			}
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "password hashing failed"})
			return
		}

		if _, err := st.CreateUser(c.Request.Context(), req.Username, req.Email, hash); err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	})

	public.POST("/login", func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// Unknown username and wrong password take the same path so the
		// response never confirms whether an account exists.
		user, err := st.UserByUsername(c.Request.Context(), req.Username)
		if err != nil && !errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}
		if err != nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := tokens.Generate(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token})
	})

	protected.GET("/protected", func(c *gin.Context) {
		userID := auth.UserID(c)
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Hello User %d, you have access!", userID),
		})
	})
}
