package models

import "time"

// SiteSetting is a row in the site-wide key/value config bag. The auxiliary
// columns (theme, hero, logos, WhatsApp) are nullable and updated piecemeal
// by the admin dashboard.
type SiteSetting struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Key            string    `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value          string    `gorm:"type:text;not null" json:"value"`
	Description    *string   `gorm:"size:255" json:"description"`
	ThemeMode      string    `gorm:"size:20;not null;default:'dark'" json:"themeMode"`
	HeroBgURL      *string   `gorm:"size:512" json:"heroBgUrl"`
	LogoLightURL   *string   `gorm:"size:512" json:"logoLightUrl"`
	LogoDarkURL    *string   `gorm:"size:512" json:"logoDarkUrl"`
	WhatsappNumber *string   `gorm:"size:50" json:"whatsappNumber"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (SiteSetting) TableName() string { return "site_settings" }
