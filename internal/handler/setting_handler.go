package handler

import (
	"errors"
	"net/http"
	"strings"

	"artroad/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingHandler struct {
	repo *repository.SettingRepository
}

func NewSettingHandler(repo *repository.SettingRepository) *SettingHandler {
	return &SettingHandler{repo: repo}
}

type settingDraft struct {
	Key            *string `json:"key"`
	Value          *string `json:"value"`
	Description    *string `json:"description"`
	ThemeMode      *string `json:"themeMode"`
	HeroBgURL      *string `json:"heroBgUrl"`
	LogoLightURL   *string `json:"logoLightUrl"`
	LogoDarkURL    *string `json:"logoDarkUrl"`
	WhatsappNumber *string `json:"whatsappNumber"`
}

// validate checks key/value and produces the trimmed patch. The empty-value
// rule applies to updates too: there is no way to blank out a setting.
func (d *settingDraft) validate() (key string, patch repository.SettingPatch, msg, code string) {
	if d.Key == nil || strings.TrimSpace(*d.Key) == "" {
		return "", patch, "Key is required", "MISSING_KEY"
	}
	if d.Value == nil || strings.TrimSpace(*d.Value) == "" {
		return "", patch, "Value is required", "MISSING_VALUE"
	}
	key = strings.TrimSpace(*d.Key)
	patch.Value = strings.TrimSpace(*d.Value)
	patch.Description = trimmed(d.Description)
	patch.ThemeMode = trimmed(d.ThemeMode)
	patch.HeroBgURL = trimmed(d.HeroBgURL)
	patch.LogoLightURL = trimmed(d.LogoLightURL)
	patch.LogoDarkURL = trimmed(d.LogoDarkURL)
	patch.WhatsappNumber = trimmed(d.WhatsappNumber)
	return key, patch, "", ""
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

// Get handles GET /settings: single record for ?key=, an existing subset
// for ?keys=a,b,c, or every row when unfiltered.
func (h *SettingHandler) Get(c *gin.Context) {
	if key := c.Query("key"); key != "" {
		s, err := h.repo.GetByKey(key)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Setting not found", "SETTING_NOT_FOUND")
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
		return
	}

	if keysParam, present := c.GetQuery("keys"); present {
		var keys []string
		for _, k := range strings.Split(keysParam, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			fail(c, http.StatusBadRequest, "No valid keys provided", "INVALID_KEYS")
			return
		}
		list, err := h.repo.GetByKeys(keys)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := h.repo.GetAll()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create is the strict insert-only path: an existing key is a conflict.
func (h *SettingHandler) Create(c *gin.Context) {
	var d settingDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}
	key, patch, msg, code := d.validate()
	if code != "" {
		fail(c, http.StatusBadRequest, msg, code)
		return
	}
	s, err := h.repo.Create(key, patch)
	if errors.Is(err, repository.ErrDuplicateKey) {
		fail(c, http.StatusBadRequest, "Setting with this key already exists", "DUPLICATE_KEY")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// Upsert handles PUT /settings. A body with a "settings" array upserts each
// entry in order; the first invalid entry aborts the request but earlier
// upserts stay applied. A plain body upserts a single key.
func (h *SettingHandler) Upsert(c *gin.Context) {
	var body struct {
		settingDraft
		Settings []settingDraft `json:"settings"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "INVALID_BODY")
		return
	}

	if body.Settings != nil {
		upserted := make([]interface{}, 0, len(body.Settings))
		for _, d := range body.Settings {
			key, patch, msg, code := d.validate()
			if code != "" {
				fail(c, http.StatusBadRequest, msg+" for all settings", code)
				return
			}
			s, err := h.repo.Upsert(key, patch)
			if err != nil {
				serverError(c, err)
				return
			}
			upserted = append(upserted, s)
		}
		c.JSON(http.StatusOK, upserted)
		return
	}

	key, patch, msg, code := body.validate()
	if code != "" {
		fail(c, http.StatusBadRequest, msg, code)
		return
	}
	s, err := h.repo.Upsert(key, patch)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
