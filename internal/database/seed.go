package database

import (
	"log"

	"artroad/config"
	"artroad/internal/domain"
	"artroad/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin inserts the dashboard admin account if no account with that
// email exists yet. Password changes require re-seeding or a manual update.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	var count int64
	db.Model(&models.AdminUser{}).Where("email = ?", cfg.Email).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	admin := &models.AdminUser{
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Name:         cfg.Name,
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("seeded admin account %s", cfg.Email)
}

// defaultSettings are inserted once so the public pages have contact info
// before the admin touches the dashboard.
var defaultSettings = []models.SiteSetting{
	{Key: domain.SettingCompanyEmail, Value: "info@artroad.ae", Description: strptr("Company contact email")},
	{Key: domain.SettingCompanyPhone, Value: "+971 4 123 4567", Description: strptr("Company phone number")},
	{Key: domain.SettingWhatsappNumber, Value: "+971501234567", Description: strptr("WhatsApp contact number")},
	{Key: domain.SettingAddressEn, Value: "Dubai Design District, Dubai, UAE", Description: strptr("Company address in English")},
	{Key: domain.SettingAddressFr, Value: "Dubai Design District, Dubaï, EAU", Description: strptr("Company address in French")},
	{Key: domain.SettingAddressAr, Value: "حي دبي للتصميم، دبي، الإمارات", Description: strptr("Company address in Arabic")},
}

// SeedSettings inserts default settings that don't already exist.
func SeedSettings(db *gorm.DB) {
	for _, s := range defaultSettings {
		var count int64
		db.Model(&models.SiteSetting{}).Where("`key` = ?", s.Key).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Printf("seed setting %s: %v", s.Key, err)
		}
	}
}

func strptr(s string) *string { return &s }
