package models

import "time"

// TrustedCompany is a client logo shown in the trust strip.
type TrustedCompany struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LogoURL    string    `gorm:"size:512;not null" json:"logoUrl"`
	OrderIndex int       `gorm:"not null;default:0;index" json:"orderIndex"`
	IsActive   bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (TrustedCompany) TableName() string { return "trusted_companies" }
