package repository

import (
	"testing"

	"artroad/internal/domain"
	"artroad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsCounts(t *testing.T) {
	db := newTestDB(t)
	serviceRepo := NewServiceRepository(db)
	leadRepo := NewLeadRepository(db)

	seedService(t, serviceRepo, "LED Panels", 1, true, false)
	seedService(t, serviceRepo, "Retired", 2, false, false)
	seedLead(t, leadRepo, "Alice", domain.LeadStatusNew)
	seedLead(t, leadRepo, "Bilal", domain.LeadStatusContacted)
	require.NoError(t, db.Create(&models.TrustedCompany{LogoURL: "https://cdn/logo.png", IsActive: true}).Error)

	stats := NewStatsRepository(db).GetDashboardStats()
	assert.EqualValues(t, 2, stats.TotalServices)
	assert.EqualValues(t, 1, stats.ActiveServices)
	assert.EqualValues(t, 2, stats.TotalLeads)
	assert.EqualValues(t, 1, stats.NewLeads)
	assert.EqualValues(t, 1, stats.TotalTrustedCompanies)
	assert.EqualValues(t, 0, stats.TotalGalleryItems)
	assert.EqualValues(t, 0, stats.TotalTeamMembers)
}
