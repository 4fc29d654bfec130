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

type ServiceHandler struct {
	repo *repository.ServiceRepository
}

func NewServiceHandler(repo *repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

type serviceDraft struct {
	TitleEn       *string `json:"titleEn"`
	TitleFr       *string `json:"titleFr"`
	TitleAr       *string `json:"titleAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionFr *string `json:"descriptionFr"`
	DescriptionAr *string `json:"descriptionAr"`
	ImageURL      *string `json:"imageUrl"`
	Icon          *string `json:"icon"`
	PriceStart    *int    `json:"priceStart"`
	Currency      *string `json:"currency"`
	IsFavourite   *bool   `json:"isFavourite"`
	OrderIndex    *int    `json:"orderIndex"`
	IsActive      *bool   `json:"isActive"`
}

func (d *serviceDraft) requiredFields() []requiredField {
	return []requiredField{
		{"titleEn", &d.TitleEn},
		{"titleFr", &d.TitleFr},
		{"titleAr", &d.TitleAr},
		{"descriptionEn", &d.DescriptionEn},
		{"descriptionFr", &d.DescriptionFr},
		{"descriptionAr", &d.DescriptionAr},
		{"imageUrl", &d.ImageURL},
		{"icon", &d.Icon},
	}
}

// Get handles GET /services: a single record when ?id= is present,
// otherwise a filtered, sorted, paginated list.
func (h *ServiceHandler) Get(c *gin.Context) {
	if _, present := c.GetQuery("id"); present {
		id, ok := queryID(c)
		if !ok {
			fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
			return
		}
		s, err := h.repo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Service not found", "SERVICE_NOT_FOUND")
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
		return
	}

	list, err := h.repo.List(repository.ServiceFilter{
		Search:      c.Query("search"),
		IsActive:    queryBool(c, "isActive"),
		IsFavourite: queryBool(c, "isFavourite"),
		Sort:        c.Query("sort"),
		Order:       c.Query("order"),
		Limit:       queryInt(c, "limit"),
		Offset:      queryInt(c, "offset"),
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create handles POST /services.
func (h *ServiceHandler) Create(c *gin.Context) {
	var d serviceDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}
	if field := firstMissingRequired(d.requiredFields()); field != "" {
		fail(c, http.StatusBadRequest, field+" is required and must be a non-empty string", "MISSING_REQUIRED_FIELD")
		return
	}

	priceStart := 0
	if d.PriceStart != nil {
		if *d.PriceStart < 0 {
			fail(c, http.StatusBadRequest, "priceStart must be a non-negative integer", "INVALID_PRICE_START")
			return
		}
		priceStart = *d.PriceStart
	}

	currency := domain.DefaultCurrency
	if d.Currency != nil {
		currency = strings.TrimSpace(*d.Currency)
		if currency == "" {
			currency = domain.DefaultCurrency
		}
		if len(currency) > 10 {
			fail(c, http.StatusBadRequest, "currency must be 10 characters or less", "INVALID_CURRENCY")
			return
		}
	}

	s := models.Service{
		TitleEn:       *d.TitleEn,
		TitleFr:       *d.TitleFr,
		TitleAr:       *d.TitleAr,
		DescriptionEn: *d.DescriptionEn,
		DescriptionFr: *d.DescriptionFr,
		DescriptionAr: *d.DescriptionAr,
		ImageURL:      *d.ImageURL,
		Icon:          *d.Icon,
		PriceStart:    priceStart,
		Currency:      currency,
		IsActive:      true,
	}
	if d.IsFavourite != nil {
		s.IsFavourite = *d.IsFavourite
	}
	if d.OrderIndex != nil {
		s.OrderIndex = *d.OrderIndex
	}
	if d.IsActive != nil {
		s.IsActive = *d.IsActive
	}
	if err := h.repo.Create(&s); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// Update handles PUT /services?id=N with a partial draft. Only supplied
// fields change; updatedAt refreshes on every call.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Service not found", "SERVICE_NOT_FOUND")
			return
		}
		serverError(c, err)
		return
	}

	var d serviceDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}

	updates := map[string]interface{}{}
	stringFields := []struct {
		name  string
		col   string
		value *string
	}{
		{"titleEn", "title_en", d.TitleEn},
		{"titleFr", "title_fr", d.TitleFr},
		{"titleAr", "title_ar", d.TitleAr},
		{"descriptionEn", "description_en", d.DescriptionEn},
		{"descriptionFr", "description_fr", d.DescriptionFr},
		{"descriptionAr", "description_ar", d.DescriptionAr},
		{"imageUrl", "image_url", d.ImageURL},
		{"icon", "icon", d.Icon},
	}
	for _, f := range stringFields {
		if f.value == nil {
			continue
		}
		trimmed := strings.TrimSpace(*f.value)
		if trimmed == "" {
			fail(c, http.StatusBadRequest, f.name+" must be a non-empty string", "INVALID_FIELD_VALUE")
			return
		}
		updates[f.col] = trimmed
	}
	if d.PriceStart != nil {
		if *d.PriceStart < 0 {
			fail(c, http.StatusBadRequest, "priceStart must be a non-negative integer", "INVALID_PRICE_START")
			return
		}
		updates["price_start"] = *d.PriceStart
	}
	if d.Currency != nil {
		currency := strings.TrimSpace(*d.Currency)
		if currency == "" || len(currency) > 10 {
			fail(c, http.StatusBadRequest, "currency must be between 1 and 10 characters", "INVALID_CURRENCY")
			return
		}
		updates["currency"] = currency
	}
	if d.IsFavourite != nil {
		updates["is_favourite"] = *d.IsFavourite
	}
	if d.OrderIndex != nil {
		updates["order_index"] = *d.OrderIndex
	}
	if d.IsActive != nil {
		updates["is_active"] = *d.IsActive
	}

	s, err := h.repo.Update(id, updates)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Delete handles DELETE /services?id=N and returns the deleted record.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	s, err := h.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Service not found", "SERVICE_NOT_FOUND")
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
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully", "service": s})
}
