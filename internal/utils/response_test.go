package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"value": 42})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
}

func TestErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusInternalServerError, "could not insert events", assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "could not insert events", resp.Error)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestUpgradeRequired(t *testing.T) {
	rec := httptest.NewRecorder()
	UpgradeRequired(rec, "Premium subscription required")

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "premium_required", resp.Error)
	assert.True(t, resp.UpgradeRequired)
	assert.Equal(t, "Premium subscription required", resp.Message)
}

func TestQueryInt(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "25")
	query.Set("bad", "abc")

	assert.Equal(t, 25, QueryInt(query, "limit", 50))
	assert.Equal(t, 50, QueryInt(query, "bad", 50))
	assert.Equal(t, 50, QueryInt(query, "missing", 50))
}
