package models

import "time"

type TeamMember struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	NameEn     string    `gorm:"size:255;not null" json:"nameEn"`
	NameFr     string    `gorm:"size:255;not null" json:"nameFr"`
	NameAr     string    `gorm:"size:255;not null" json:"nameAr"`
	PhotoURL   string    `gorm:"size:512;not null" json:"photoUrl"`
	OrderIndex int       `gorm:"not null;default:0;index" json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (TeamMember) TableName() string { return "team" }
