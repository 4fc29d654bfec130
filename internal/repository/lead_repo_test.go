package repository

import (
	"testing"
	"time"

	"artroad/internal/domain"
	"artroad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLead(t *testing.T, repo *LeadRepository, name, status string) *models.Lead {
	t.Helper()
	l := &models.Lead{
		Name:    name,
		Email:   "a@b.c",
		Phone:   "+971500000000",
		Message: "hello",
		Source:  domain.LeadSourceWebsite,
		Status:  status,
	}
	require.NoError(t, repo.Create(l))
	return l
}

func TestLeadListStatusFilter(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	seedLead(t, repo, "Alice", domain.LeadStatusNew)
	seedLead(t, repo, "Bilal", domain.LeadStatusContacted)
	seedLead(t, repo, "Chloe", domain.LeadStatusNew)

	list, err := repo.List(LeadFilter{Status: domain.LeadStatusNew})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLeadListDefaultSortNewestFirst(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	first := seedLead(t, repo, "First", domain.LeadStatusNew)
	time.Sleep(10 * time.Millisecond)
	second := seedLead(t, repo, "Second", domain.LeadStatusNew)

	list, err := repo.List(LeadFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// createdAt desc with id tie-break: the later insert comes first.
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestLeadListSearchNameEmailPhone(t *testing.T) {
	repo := NewLeadRepository(newTestDB(t))
	seedLead(t, repo, "Alice", domain.LeadStatusNew)
	seedLead(t, repo, "Bilal", domain.LeadStatusNew)

	list, err := repo.List(LeadFilter{Search: "Alice"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = repo.List(LeadFilter{Search: "+97150"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
