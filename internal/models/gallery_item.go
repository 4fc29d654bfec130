package models

import "time"

// GalleryItem is a before/after showcase entry.
type GalleryItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TitleEn        string    `gorm:"size:255;not null" json:"titleEn"`
	TitleFr        string    `gorm:"size:255;not null" json:"titleFr"`
	TitleAr        string    `gorm:"size:255;not null" json:"titleAr"`
	DescriptionEn  string    `gorm:"type:text;not null" json:"descriptionEn"`
	DescriptionFr  string    `gorm:"type:text;not null" json:"descriptionFr"`
	DescriptionAr  string    `gorm:"type:text;not null" json:"descriptionAr"`
	BeforeImageURL string    `gorm:"size:512;not null" json:"beforeImageUrl"`
	AfterImageURL  string    `gorm:"size:512;not null" json:"afterImageUrl"`
	Category       string    `gorm:"size:50;not null;index" json:"category"`
	OrderIndex     int       `gorm:"not null;default:0;index" json:"orderIndex"`
	IsFeatured     bool      `gorm:"not null;default:false" json:"isFeatured"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"isActive"`
	ShowOnHomepage bool      `gorm:"not null;default:false" json:"showOnHomepage"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (GalleryItem) TableName() string { return "gallery" }
