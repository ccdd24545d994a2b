package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
	"github.com/grapplelog/grapplelog-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, 400, "bad_request", err)
		return
	}
	u, token, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.log.Warn("register failed", "error", err)
		RespondCoreError(c, err)
		return
	}
	RespondOK(c, gin.H{"user": u, "token": token})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, 400, "bad_request", err)
		return
	}
	u, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn("login failed", "error", err)
		RespondError(c, 401, "unauthorized", err)
		return
	}
	RespondOK(c, gin.H{"user": u, "token": token})
}
