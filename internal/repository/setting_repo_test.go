package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSettingUpsertInsertsThenUpdatesSameRow(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	first, err := repo.Upsert("phone", SettingPatch{Value: "+1"})
	require.NoError(t, err)
	assert.Equal(t, "+1", first.Value)

	time.Sleep(10 * time.Millisecond)
	second, err := repo.Upsert("phone", SettingPatch{Value: "+2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must reuse the existing row")
	assert.Equal(t, "+2", second.Value)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingUpsertLeavesUnsuppliedColumnsAlone(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Upsert("logo", SettingPatch{Value: "v1", Description: strPtr("site logo"), LogoLightURL: strPtr("https://cdn/light.png")})
	require.NoError(t, err)

	s, err := repo.Upsert("logo", SettingPatch{Value: "v2"})
	require.NoError(t, err)
	require.NotNil(t, s.Description)
	assert.Equal(t, "site logo", *s.Description)
	require.NotNil(t, s.LogoLightURL)
	assert.Equal(t, "https://cdn/light.png", *s.LogoLightURL)
}

func TestSettingUpsertClearsAuxColumnOnEmptyString(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Upsert("hero", SettingPatch{Value: "v", HeroBgURL: strPtr("https://cdn/hero.jpg")})
	require.NoError(t, err)

	s, err := repo.Upsert("hero", SettingPatch{Value: "v", HeroBgURL: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, s.HeroBgURL)
}

func TestSettingCreateRejectsDuplicateKey(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Create("company_email", SettingPatch{Value: "info@artroad.ae"})
	require.NoError(t, err)

	_, err = repo.Create("company_email", SettingPatch{Value: "other@artroad.ae"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestSettingGetByKeysReturnsExistingSubset(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Create("a", SettingPatch{Value: "1"})
	require.NoError(t, err)
	_, err = repo.Create("b", SettingPatch{Value: "2"})
	require.NoError(t, err)

	list, err := repo.GetByKeys([]string{"a", "b", "missing"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
