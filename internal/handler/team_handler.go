package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"artroad/internal/models"
	"artroad/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamHandler struct {
	repo *repository.TeamRepository
}

func NewTeamHandler(repo *repository.TeamRepository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

type teamDraft struct {
	NameEn     *string `json:"nameEn"`
	NameFr     *string `json:"nameFr"`
	NameAr     *string `json:"nameAr"`
	PhotoURL   *string `json:"photoUrl"`
	OrderIndex *int    `json:"orderIndex"`
}

func (h *TeamHandler) Get(c *gin.Context) {
	if _, present := c.GetQuery("id"); present {
		id, ok := queryID(c)
		if !ok {
			fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
			return
		}
		m, err := h.repo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Team member not found", "TEAM_MEMBER_NOT_FOUND")
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
		return
	}

	// Team rejects unknown sort fields instead of falling back.
	sort := c.DefaultQuery("sort", "orderIndex")
	if !repository.ValidTeamSortField(sort) {
		fail(c, http.StatusBadRequest, "Invalid sort field", "INVALID_SORT_FIELD")
		return
	}
	f := repository.TeamFilter{
		Search: c.Query("search"),
		Sort:   sort,
		Order:  c.Query("order"),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}
	if v := c.Query("orderIndex"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.OrderIndex = &n
		}
	}
	list, err := h.repo.List(f)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create validates each required field with its own error code, following
// the per-field style of the team endpoint.
func (h *TeamHandler) Create(c *gin.Context) {
	var d teamDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}

	required := []struct {
		value **string
		msg   string
		code  string
	}{
		{&d.NameEn, "English name is required", "NAME_EN_REQUIRED"},
		{&d.NameFr, "French name is required", "NAME_FR_REQUIRED"},
		{&d.NameAr, "Arabic name is required", "NAME_AR_REQUIRED"},
		{&d.PhotoURL, "Photo URL is required", "PHOTO_URL_REQUIRED"},
	}
	for _, r := range required {
		if *r.value == nil || strings.TrimSpace(**r.value) == "" {
			fail(c, http.StatusBadRequest, r.msg, r.code)
			return
		}
		trimmed := strings.TrimSpace(**r.value)
		**r.value = trimmed
	}

	m := models.TeamMember{
		NameEn:   *d.NameEn,
		NameFr:   *d.NameFr,
		NameAr:   *d.NameAr,
		PhotoURL: *d.PhotoURL,
	}
	if d.OrderIndex != nil {
		m.OrderIndex = *d.OrderIndex
	}
	if err := h.repo.Create(&m); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Team member not found", "TEAM_MEMBER_NOT_FOUND")
			return
		}
		serverError(c, err)
		return
	}

	var d teamDraft
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
		{"nameEn", "name_en", d.NameEn},
		{"nameFr", "name_fr", d.NameFr},
		{"nameAr", "name_ar", d.NameAr},
		{"photoUrl", "photo_url", d.PhotoURL},
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
	if d.OrderIndex != nil {
		updates["order_index"] = *d.OrderIndex
	}

	m, err := h.repo.Update(id, updates)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		fail(c, http.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		return
	}
	m, err := h.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "Team member not found", "TEAM_MEMBER_NOT_FOUND")
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
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully", "teamMember": m})
}
