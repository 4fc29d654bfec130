package repository

import (
	"artroad/internal/domain"
	"artroad/internal/models"

	"gorm.io/gorm"
)

// DashboardStats is the flat record shown on the admin dashboard.
type DashboardStats struct {
	TotalServices         int64 `json:"totalServices"`
	ActiveServices        int64 `json:"activeServices"`
	TotalGalleryItems     int64 `json:"totalGalleryItems"`
	TotalLeads            int64 `json:"totalLeads"`
	NewLeads              int64 `json:"newLeads"`
	TotalTeamMembers      int64 `json:"totalTeamMembers"`
	TotalTrustedCompanies int64 `json:"totalTrustedCompanies"`
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetDashboardStats derives counts across the content tables. A failing
// count leaves its field at zero rather than failing the whole aggregation.
func (r *StatsRepository) GetDashboardStats() *DashboardStats {
	var s DashboardStats
	r.db.Model(&models.Service{}).Count(&s.TotalServices)
	r.db.Model(&models.Service{}).Where("is_active = ?", true).Count(&s.ActiveServices)
	r.db.Model(&models.GalleryItem{}).Count(&s.TotalGalleryItems)
	r.db.Model(&models.Lead{}).Count(&s.TotalLeads)
	r.db.Model(&models.Lead{}).Where("status = ?", domain.LeadStatusNew).Count(&s.NewLeads)
	r.db.Model(&models.TeamMember{}).Count(&s.TotalTeamMembers)
	r.db.Model(&models.TrustedCompany{}).Count(&s.TotalTrustedCompanies)
	return &s
}
