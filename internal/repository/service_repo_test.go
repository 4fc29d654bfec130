package repository

import (
	"fmt"
	"testing"
	"time"

	"artroad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedService(t *testing.T, repo *ServiceRepository, title string, orderIndex int, active, favourite bool) *models.Service {
	t.Helper()
	s := &models.Service{
		TitleEn:       title,
		TitleFr:       title + " FR",
		TitleAr:       title + " AR",
		DescriptionEn: "desc en",
		DescriptionFr: "desc fr",
		DescriptionAr: "desc ar",
		ImageURL:      "https://img.example/s.jpg",
		Icon:          "sparkles",
		Currency:      "MAD",
		OrderIndex:    orderIndex,
		IsActive:      active,
		IsFavourite:   favourite,
	}
	require.NoError(t, repo.Create(s))
	return s
}

func TestServiceListFilters(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	seedService(t, repo, "LED Panels", 1, true, true)
	seedService(t, repo, "3D Decoration", 2, true, false)
	seedService(t, repo, "Retired Offer", 3, false, false)

	list, err := repo.List(ServiceFilter{IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ServiceFilter{IsActive: boolPtr(true), IsFavourite: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "LED Panels", list[0].TitleEn)
}

func TestServiceListSearchAcrossLocales(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	seedService(t, repo, "LED Panels", 1, true, false)
	seedService(t, repo, "Events", 2, true, false)

	list, err := repo.List(ServiceFilter{Search: "LED"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	// The FR column is searched too.
	list, err = repo.List(ServiceFilter{Search: "Events FR"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestServiceListLimitCap(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	for i := 0; i < 105; i++ {
		seedService(t, repo, fmt.Sprintf("Service %03d", i), i, true, false)
	}

	list, err := repo.List(ServiceFilter{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, list, 100, "limit must be capped at 100")

	// Default limit applies when none requested.
	list, err = repo.List(ServiceFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 10)
}

func TestServiceListSortFallbackAndTieBreak(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	a := seedService(t, repo, "A", 5, true, false)
	b := seedService(t, repo, "B", 5, true, false)
	c := seedService(t, repo, "C", 1, true, false)

	// Unknown sort falls back to orderIndex; equal orderIndex breaks ties by id.
	list, err := repo.List(ServiceFilter{Sort: "bogus"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, c.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
	assert.Equal(t, b.ID, list[2].ID)

	list, err = repo.List(ServiceFilter{Sort: "priceStart", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	// All prices equal: id ascending decides.
	assert.Equal(t, a.ID, list[0].ID)
}

func TestServiceUpdatePreservesUntouchedFields(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	s := seedService(t, repo, "LED Panels", 3, true, false)

	time.Sleep(10 * time.Millisecond)
	updated, err := repo.Update(s.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Equal(t, s.TitleEn, updated.TitleEn)
	assert.Equal(t, s.TitleFr, updated.TitleFr)
	assert.Equal(t, s.DescriptionAr, updated.DescriptionAr)
	assert.Equal(t, s.ImageURL, updated.ImageURL)
	assert.Equal(t, s.Icon, updated.Icon)
	assert.Equal(t, s.PriceStart, updated.PriceStart)
	assert.Equal(t, s.Currency, updated.Currency)
	assert.Equal(t, s.OrderIndex, updated.OrderIndex)
	assert.Equal(t, s.IsFavourite, updated.IsFavourite)
	assert.True(t, updated.UpdatedAt.After(s.UpdatedAt), "updatedAt must refresh")
}

func TestServiceUpdateAlwaysRefreshesUpdatedAt(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	s := seedService(t, repo, "LED Panels", 0, true, false)

	time.Sleep(10 * time.Millisecond)
	updated, err := repo.Update(s.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(s.UpdatedAt))
}

func TestServiceDelete(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	s := seedService(t, repo, "LED Panels", 0, true, false)

	require.NoError(t, repo.Delete(s.ID))
	_, err := repo.GetByID(s.ID)
	assert.Error(t, err)
}
