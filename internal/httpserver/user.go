package httpserver

import (
	"errors"
	"net/http"

	usersvc "github.com/aleksandar-ristic/StarterStore/internal/service/user"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid registration payload"})
			return
		}
		u, token, err := users.Register(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, usersvc.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, toAuthResponse(*u, token))
	}
}

func loginHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email and password required"})
			return
		}
		u, token, err := users.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, usersvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
				return
			}
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, toAuthResponse(*u, token))
	}
}

func profileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toUserResponse(*currentUser(c)))
	}
}
