package router_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"artroad/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpsertFlow(t *testing.T) {
	r, _, token := newTestAPI(t)

	// First PUT inserts.
	w := doJSON(r, http.MethodPut, "/api/v1/settings",
		gin.H{"key": "site_name", "value": "Art Road", "description": "brand"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first models.SiteSetting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, "Art Road", first.Value)
	require.NotNil(t, first.Description)
	assert.Equal(t, "brand", *first.Description)

	// Second PUT updates the same row.
	w = doJSON(r, http.MethodPut, "/api/v1/settings",
		gin.H{"key": "site_name", "value": "Art Road LLC"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var second models.SiteSetting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Art Road LLC", second.Value)

	// Reads back through GET ?key=.
	w = doJSON(r, http.MethodGet, "/api/v1/settings?key=site_name", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.SiteSetting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Art Road LLC", fetched.Value)
}

func TestSettingsCreateDuplicateKey(t *testing.T) {
	r, _, token := newTestAPI(t)

	w := doJSON(r, http.MethodPost, "/api/v1/settings",
		gin.H{"key": "contact_email", "value": "a@b.c"}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/v1/settings",
		gin.H{"key": "contact_email", "value": "other@b.c"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DUPLICATE_KEY", errorCode(t, w))
}

func TestSettingsValueRequired(t *testing.T) {
	r, _, token := newTestAPI(t)

	w := doJSON(r, http.MethodPut, "/api/v1/settings", gin.H{"value": "x"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_KEY", errorCode(t, w))

	w = doJSON(r, http.MethodPut, "/api/v1/settings", gin.H{"key": "k", "value": "   "}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_VALUE", errorCode(t, w))
}

func TestSettingsBulkUpsertPartialApplication(t *testing.T) {
	r, _, token := newTestAPI(t)

	w := doJSON(r, http.MethodPut, "/api/v1/settings", gin.H{
		"settings": []gin.H{
			{"key": "a", "value": "1"},
			{"key": "b", "value": "2"},
			{"key": "c", "value": ""},
		},
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_VALUE", errorCode(t, w))

	// Entries before the invalid one are applied anyway.
	w = doJSON(r, http.MethodGet, "/api/v1/settings?keys=a,b,c", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.SiteSetting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	keys := []string{list[0].Key, list[1].Key}
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestSettingsEmptyKeysParam(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doJSON(r, http.MethodGet, "/api/v1/settings?keys=,%20,", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_KEYS", errorCode(t, w))
}

func TestSettingsClearAuxColumn(t *testing.T) {
	r, _, token := newTestAPI(t)

	w := doJSON(r, http.MethodPut, "/api/v1/settings",
		gin.H{"key": "hero", "value": "on", "heroBgUrl": "https://cdn/h.jpg"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// An explicitly empty aux field clears the column; absence preserves it.
	w = doJSON(r, http.MethodPut, "/api/v1/settings",
		gin.H{"key": "hero", "value": "on", "heroBgUrl": ""}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var s models.SiteSetting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Nil(t, s.HeroBgURL)
}
