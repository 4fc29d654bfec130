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

type GalleryHandler struct {
	repo *repository.GalleryRepository
}

func NewGalleryHandler(repo *repository.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{repo: repo}
}

type galleryDraft struct {
	TitleEn        *string `json:"titleEn"`
	TitleFr        *string `json:"titleFr"`
	TitleAr        *string `json:"titleAr"`
	DescriptionEn  *string `json:"descriptionEn"`
	DescriptionFr  *string `json:"descriptionFr"`
	DescriptionAr  *string `json:"descriptionAr"`
	BeforeImageURL *string `json:"beforeImageUrl"`
	AfterImageURL  *string `json:"afterImageUrl"`
	Category       *string `json:"category"`
	OrderIndex     *int    `json:"orderIndex"`
	IsFeatured     *bool   `json:"isFeatured"`
	IsActive       *bool   `json:"isActive"`
	ShowOnHomepage *bool   `json:"showOnHomepage"`
}

func (d *galleryDraft) requiredFields() []requiredField {
	return []requiredField{
		{"titleEn", &d.TitleEn},
		{"titleFr", &d.TitleFr},
		{"titleAr", &d.TitleAr},
		{"descriptionEn", &d.DescriptionEn},
		{"descriptionFr", &d.DescriptionFr},
		{"descriptionAr", &d.DescriptionAr},
		{"beforeImageUrl", &d.BeforeImageURL},
		{"afterImageUrl", &d.AfterImageURL},
		{"category", &d.Category},
	}
}

func (h *GalleryHandler) Get(c *gin.Context) {
	if _, present := c.GetQuery("id"); present {
		id, ok := queryID(c)
		if !ok {
			fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
			return
		}
		g, err := h.repo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Gallery item not found", "NOT_FOUND")
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, g)
		return
	}

	category := c.Query("category")
	if category != "" && !domain.ValidGalleryCategory(category) {
		fail(c, http.StatusBadRequest, "Invalid category", "INVALID_CATEGORY")
		return
	}
	list, err := h.repo.List(repository.GalleryFilter{
		Search:         c.Query("search"),
		Category:       category,
		IsFeatured:     queryBool(c, "featured"),
		IsActive:       queryBool(c, "isActive"),
		ShowOnHomepage: queryBool(c, "showOnHomepage"),
		Sort:           c.Query("sort"),
		Order:          c.Query("order"),
		Limit:          queryInt(c, "limit"),
		Offset:         queryInt(c, "offset"),
	})
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var d galleryDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}
	if field := firstMissingRequired(d.requiredFields()); field != "" {
		fail(c, http.StatusBadRequest, field+" is required", "MISSING_REQUIRED_FIELD")
		return
	}
	if !domain.ValidGalleryCategory(*d.Category) {
		fail(c, http.StatusBadRequest,
			"Invalid category. Must be one of: led-panels, 3d-decoration, events, other",
			"INVALID_CATEGORY")
		return
	}

	g := models.GalleryItem{
		TitleEn:        *d.TitleEn,
		TitleFr:        *d.TitleFr,
		TitleAr:        *d.TitleAr,
		DescriptionEn:  *d.DescriptionEn,
		DescriptionFr:  *d.DescriptionFr,
		DescriptionAr:  *d.DescriptionAr,
		BeforeImageURL: *d.BeforeImageURL,
		AfterImageURL:  *d.AfterImageURL,
		Category:       *d.Category,
		IsActive:       true,
	}
	if d.OrderIndex != nil {
		g.OrderIndex = *d.OrderIndex
	}
	if d.IsFeatured != nil {
		g.IsFeatured = *d.IsFeatured
	}
	if d.IsActive != nil {
		g.IsActive = *d.IsActive
	}
	if d.ShowOnHomepage != nil {
		g.ShowOnHomepage = *d.ShowOnHomepage
	}
	if err := h.repo.Create(&g); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Gallery item not found", "NOT_FOUND")
			return
		}
		serverError(c, err)
		return
	}

	var d galleryDraft
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
		{"beforeImageUrl", "before_image_url", d.BeforeImageURL},
		{"afterImageUrl", "after_image_url", d.AfterImageURL},
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
	if d.Category != nil {
		category := strings.TrimSpace(*d.Category)
		if !domain.ValidGalleryCategory(category) {
			fail(c, http.StatusBadRequest,
				"Invalid category. Must be one of: led-panels, 3d-decoration, events, other",
				"INVALID_CATEGORY")
			return
		}
		updates["category"] = category
	}
	if d.OrderIndex != nil {
		updates["order_index"] = *d.OrderIndex
	}
	if d.IsFeatured != nil {
		updates["is_featured"] = *d.IsFeatured
	}
	if d.IsActive != nil {
		updates["is_active"] = *d.IsActive
	}
	if d.ShowOnHomepage != nil {
		updates["show_on_homepage"] = *d.ShowOnHomepage
	}

	g, err := h.repo.Update(id, updates)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	g, err := h.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Gallery item not found", "NOT_FOUND")
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
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted successfully", "deleted": g})
}
