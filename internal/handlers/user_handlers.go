package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/inventory-api/internal/middleware"
)

type RegisterUserInput struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

type UserLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser is the handler for POST /user/register
func (h *Handlers) RegisterUser(c *gin.Context) {
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Users.Register(c, input.Username, input.Password); err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// LoginUser is the handler for POST /user/login. A successful login
// returns a bearer token for the protected inventory routes.
func (h *Handlers) LoginUser(c *gin.Context) {
	var input UserLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Login(c, input.Username, input.Password)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	token, err := h.Tokens.IssueToken(user.Username)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Protected is the handler for GET /user/protected, a probe for testing
// bearer authorization.
func (h *Handlers) Protected(c *gin.Context) {
	username := c.GetString(middleware.UsernameKey)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("You are authorized! Welcome, %s.", username),
	})
}
