package models

import "time"

// Service is a marketing service offering with trilingual copy.
type Service struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TitleEn       string    `gorm:"size:255;not null" json:"titleEn"`
	TitleFr       string    `gorm:"size:255;not null" json:"titleFr"`
	TitleAr       string    `gorm:"size:255;not null" json:"titleAr"`
	DescriptionEn string    `gorm:"type:text;not null" json:"descriptionEn"`
	DescriptionFr string    `gorm:"type:text;not null" json:"descriptionFr"`
	DescriptionAr string    `gorm:"type:text;not null" json:"descriptionAr"`
	ImageURL      string    `gorm:"size:512;not null" json:"imageUrl"`
	Icon          string    `gorm:"size:100;not null" json:"icon"`
	PriceStart    int       `gorm:"not null;default:0" json:"priceStart"`
	Currency      string    `gorm:"size:10;not null;default:'MAD'" json:"currency"`
	IsFavourite   bool      `gorm:"not null;default:false" json:"isFavourite"`
	OrderIndex    int       `gorm:"not null;default:0;index" json:"orderIndex"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Service) TableName() string { return "services" }
