package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleConvert(t *testing.T) {
	body := `{"text":"salom","conversion":"uzbek-latin-to-cyrillic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handleConvert(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp convertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "салом", resp.Result)
}

func TestHandleConvertUnknownConversion(t *testing.T) {
	body := `{"text":"x","conversion":"not-a-real-id"}`
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handleConvert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "not-a-real-id")
}

func TestHandleConvertMissingConversion(t *testing.T) {
	body := `{"text":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handleConvert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConvertWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/convert", nil)
	rec := httptest.NewRecorder()

	handleConvert(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleAnalyze(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/analyze?text=privet", nil)
	rec := httptest.NewRecorder()

	handleAnalyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Script     string `json:"script"`
		Suggestion string `json:"suggestion"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "latin", resp.Script)
	assert.Equal(t, "to-cyrillic", resp.Suggestion)
}

func TestHandleConverters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/converters", nil)
	rec := httptest.NewRecorder()

	handleConverters(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Converters []string `json:"converters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		"generic-latin-to-cyrillic",
		"generic-cyrillic-to-latin",
		"uzbek-latin-to-cyrillic",
		"uzbek-cyrillic-to-latin",
	}, resp.Converters)
}

func TestHandleTables(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tables?alphabet=uzbek", nil)
	rec := httptest.NewRecorder()

	handleTables(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp tableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "uzbek", resp.Alphabet)
	assert.NotEmpty(t, resp.Mappings)
}

func TestHandleTablesUnknownAlphabet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tables?alphabet=martian", nil)
	rec := httptest.NewRecorder()

	handleTables(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
