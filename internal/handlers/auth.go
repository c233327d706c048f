package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtour-server/internal/models"
	"medtour-server/internal/utils"
)

// AuthHandler handles admin login.
type AuthHandler struct {
	Admin *models.Admin
	Token string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(admin *models.Admin, token string) *AuthHandler {
	return &AuthHandler{Admin: admin, Token: token}
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the shared admin token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login checks the admin credentials and hands out the static admin token.
// The token is the same for every login and never expires.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !h.Admin.CheckCredentials(req.Username, req.Password) {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: h.Token})
}
