package handler

import (
	"errors"
	"net/http"
	"strings"

	"artroad/internal/domain"
	"artroad/internal/models"
	"artroad/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeadHandler struct {
	repo *repository.LeadRepository
}

func NewLeadHandler(repo *repository.LeadRepository) *LeadHandler {
	return &LeadHandler{repo: repo}
}

type leadDraft struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Message         *string `json:"message"`
	ServiceInterest *string `json:"serviceInterest"`
	Source          *string `json:"source"`
	Status          *string `json:"status"`
}

// looseEmailOK is the deliberately loose shape check the intake pipeline
// uses: both "@" and "." must be present, nothing more.
func looseEmailOK(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func (h *LeadHandler) Get(c *gin.Context) {
	if _, present := c.GetQuery("id"); present {
		id, ok := queryID(c)
		if !ok {
			fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
			return
		}
		l, err := h.repo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Lead not found", "LEAD_NOT_FOUND")
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, l)
		return
	}

	status := c.Query("status")
	if status != "" && !domain.ValidLeadStatus(status) {
		fail(c, http.StatusBadRequest,
			"Invalid status. Must be one of: new, contacted, converted, closed",
			"INVALID_STATUS")
		return
	}
	list, err := h.repo.List(repository.LeadFilter{
		Search: c.Query("search"),
		Status: status,
		Source: c.Query("source"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create is the public contact-form intake. Validation order: presence,
// trim, post-trim emptiness, loose email shape.
func (h *LeadHandler) Create(c *gin.Context) {
	var d leadDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}
	if d.Name == nil || d.Email == nil || d.Phone == nil || d.Message == nil {
		fail(c, http.StatusBadRequest,
			"Missing required fields: name, email, phone, and message are required",
			"MISSING_REQUIRED_FIELDS")
		return
	}

	name := strings.TrimSpace(*d.Name)
	email := strings.ToLower(strings.TrimSpace(*d.Email))
	phone := strings.TrimSpace(*d.Phone)
	message := strings.TrimSpace(*d.Message)
	if name == "" || email == "" || phone == "" || message == "" {
		fail(c, http.StatusBadRequest,
			"Required fields cannot be empty after trimming",
			"EMPTY_REQUIRED_FIELDS")
		return
	}
	if !looseEmailOK(email) {
		fail(c, http.StatusBadRequest,
			"Invalid email format. Email must contain @ and .",
			"INVALID_EMAIL_FORMAT")
		return
	}

	l := models.Lead{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
		Source:  domain.LeadSourceWebsite,
		Status:  domain.LeadStatusNew,
	}
	if d.ServiceInterest != nil {
		if v := strings.TrimSpace(*d.ServiceInterest); v != "" {
			l.ServiceInterest = &v
		}
	}
	if err := h.repo.Create(&l); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Lead not found", "LEAD_NOT_FOUND")
			return
		}
		serverError(c, err)
		return
	}

	var d leadDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}

	if d.Status != nil && !domain.ValidLeadStatus(*d.Status) {
		fail(c, http.StatusBadRequest,
			"Invalid status. Must be one of: new, contacted, converted, closed",
			"INVALID_STATUS")
		return
	}
	if d.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*d.Email))
		if !looseEmailOK(email) {
			fail(c, http.StatusBadRequest,
				"Invalid email format. Email must contain @ and .",
				"INVALID_EMAIL_FORMAT")
			return
		}
		*d.Email = email
	}

	updates := map[string]interface{}{}
	if d.Name != nil {
		updates["name"] = strings.TrimSpace(*d.Name)
	}
	if d.Email != nil {
		updates["email"] = *d.Email
	}
	if d.Phone != nil {
		updates["phone"] = strings.TrimSpace(*d.Phone)
	}
	if d.Message != nil {
		updates["message"] = strings.TrimSpace(*d.Message)
	}
	if d.ServiceInterest != nil {
		if v := strings.TrimSpace(*d.ServiceInterest); v != "" {
			updates["service_interest"] = v
		} else {
			updates["service_interest"] = nil
		}
	}
	if d.Source != nil {
		updates["source"] = strings.TrimSpace(*d.Source)
	}
	if d.Status != nil {
		updates["status"] = *d.Status
	}

	l, err := h.repo.Update(id, updates)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	l, err := h.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Lead not found", "LEAD_NOT_FOUND")
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
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully", "lead": l})
}
