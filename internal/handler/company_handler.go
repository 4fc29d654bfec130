package handler

import (
	"errors"
	"net/http"
	"strings"

	"artroad/internal/models"
	"artroad/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	repo *repository.CompanyRepository
}

func NewCompanyHandler(repo *repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

type companyDraft struct {
	LogoURL    *string `json:"logoUrl"`
	OrderIndex *int    `json:"orderIndex"`
	IsActive   *bool   `json:"isActive"`
}

func (h *CompanyHandler) Get(c *gin.Context) {
	if _, present := c.GetQuery("id"); present {
		id, ok := queryID(c)
		if !ok {
			fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
			return
		}
		company, err := h.repo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Trusted company not found", "NOT_FOUND")
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, company)
		return
	}

	list, err := h.repo.List(repository.CompanyFilter{
		IsActive: queryBool(c, "isActive"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
		Limit:    queryInt(c, "limit"),
		Offset:   queryInt(c, "offset"),
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var d companyDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}
	if d.LogoURL == nil {
		fail(c, http.StatusBadRequest, "logoUrl is required and must be a string", "MISSING_LOGO_URL")
		return
	}
	logoURL := strings.TrimSpace(*d.LogoURL)
	if logoURL == "" {
		fail(c, http.StatusBadRequest, "logoUrl cannot be empty", "EMPTY_LOGO_URL")
		return
	}

	company := models.TrustedCompany{LogoURL: logoURL, IsActive: true}
	if d.OrderIndex != nil {
		company.OrderIndex = *d.OrderIndex
	}
	if d.IsActive != nil {
		company.IsActive = *d.IsActive
	}
	if err := h.repo.Create(&company); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Trusted company not found", "NOT_FOUND")
			return
		}
		serverError(c, err)
		return
	}

	var d companyDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}

	updates := map[string]interface{}{}
	if d.LogoURL != nil {
		logoURL := strings.TrimSpace(*d.LogoURL)
		if logoURL == "" {
			fail(c, http.StatusBadRequest, "logoUrl cannot be empty", "EMPTY_LOGO_URL")
			return
		}
		updates["logo_url"] = logoURL
	}
	if d.OrderIndex != nil {
		updates["order_index"] = *d.OrderIndex
	}
	if d.IsActive != nil {
		updates["is_active"] = *d.IsActive
	}

	company, err := h.repo.Update(id, updates)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	company, err := h.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Trusted company not found", "NOT_FOUND")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trusted company deleted successfully", "data": company})
}
