package handler

import (
	"net/http"

	"artroad/internal/repository"
	"artroad/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statsRepo *repository.StatsRepository
	authSvc   *service.AuthService
}

func NewAdminHandler(statsRepo *repository.StatsRepository, authSvc *service.AuthService) *AdminHandler {
	return &AdminHandler{statsRepo: statsRepo, authSvc: authSvc}
}

// Login handles POST /auth/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, access, refresh, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":          u,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Refresh handles POST /auth/refresh.
func (h *AdminHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	access, err := h.authSvc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

// Stats handles GET /admin/stats - overview counts for the dashboard.
func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsRepo.GetDashboardStats())
}
