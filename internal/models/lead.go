package models

import "time"

// Lead is a contact-form submission moving through a simple workflow.
type Lead struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Email           string    `gorm:"size:255;not null" json:"email"`
	Phone           string    `gorm:"size:50;not null" json:"phone"`
	Message         string    `gorm:"type:text;not null" json:"message"`
	ServiceInterest *string   `gorm:"size:255" json:"serviceInterest"`
	Source          string    `gorm:"size:50;not null;default:'website'" json:"source"`
	Status          string    `gorm:"size:20;not null;default:'new';index" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Lead) TableName() string { return "leads" }
