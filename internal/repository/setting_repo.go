package repository

import (
	"errors"

	"artroad/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateKey = errors.New("setting key already exists")

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// SettingPatch carries the writable columns of a setting. Nil pointers mean
// "leave untouched"; Value is always required by the API so it is not a
// pointer. Supplying an empty auxiliary URL clears the column.
type SettingPatch struct {
	Value          string
	Description    *string
	ThemeMode      *string
	HeroBgURL      *string
	LogoLightURL   *string
	LogoDarkURL    *string
	WhatsappNumber *string
}

func (r *SettingRepository) GetByKey(key string) (*models.SiteSetting, error) {
	var s models.SiteSetting
	if err := r.db.Where("`key` = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) GetByKeys(keys []string) ([]models.SiteSetting, error) {
	var list []models.SiteSetting
	err := r.db.Where("`key` IN ?", keys).Find(&list).Error
	return list, err
}

func (r *SettingRepository) GetAll() ([]models.SiteSetting, error) {
	var list []models.SiteSetting
	err := r.db.Order("`key` ASC").Find(&list).Error
	return list, err
}

// Create is the strict insert-only path used by POST.
func (r *SettingRepository) Create(key string, p SettingPatch) (*models.SiteSetting, error) {
	var count int64
	if err := r.db.Model(&models.SiteSetting{}).Where("`key` = ?", key).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateKey
	}
	s := models.SiteSetting{Key: key, Value: p.Value}
	applyPatch(&s, p)
	if err := r.db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert updates the row with the given key, inserting one if absent. Repeat
// writes to the same key keep the same row id. updated_at refreshes on every
// write.
func (r *SettingRepository) Upsert(key string, p SettingPatch) (*models.SiteSetting, error) {
	var s models.SiteSetting
	err := r.db.Where("`key` = ?", key).First(&s).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s = models.SiteSetting{Key: key, Value: p.Value}
	case err != nil:
		return nil, err
	default:
		s.Value = p.Value
	}
	applyPatch(&s, p)
	if err := r.db.Save(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func applyPatch(s *models.SiteSetting, p SettingPatch) {
	if p.Description != nil {
		s.Description = nilIfEmpty(*p.Description)
	}
	if p.ThemeMode != nil {
		s.ThemeMode = *p.ThemeMode
	}
	if p.HeroBgURL != nil {
		s.HeroBgURL = nilIfEmpty(*p.HeroBgURL)
	}
	if p.LogoLightURL != nil {
		s.LogoLightURL = nilIfEmpty(*p.LogoLightURL)
	}
	if p.LogoDarkURL != nil {
		s.LogoDarkURL = nilIfEmpty(*p.LogoDarkURL)
	}
	if p.WhatsappNumber != nil {
		s.WhatsappNumber = nilIfEmpty(*p.WhatsappNumber)
	}
}

func nilIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
