package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"animal-shelter-api/internal/platform/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodDelete, "/breeds/x", nil)
	w := httptest.NewRecorder()

	p, err := DecodePayload(w, r)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestDecodePayload_KeepsNumbers(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/dogs", strings.NewReader(`{"weight": 12, "name": "Rex"}`))
	w := httptest.NewRecorder()

	p, err := DecodePayload(w, r)
	require.NoError(t, err)
	assert.Equal(t, json.Number("12"), p["weight"])
	assert.Equal(t, "Rex", p["name"])
}

func TestDecodePayload_InvalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/dogs", strings.NewReader(`[1,2]`))
	w := httptest.NewRecorder()

	_, err := DecodePayload(w, r)
	assert.True(t, errors.Is(err, ErrInvalidJSON))
}

func TestTargetID(t *testing.T) {
	assert.Equal(t, "path", TargetID(" path ", map[string]any{"_id": "body"}))
	assert.Equal(t, "body", TargetID("", map[string]any{"_id": "body"}))
	assert.Equal(t, "alt", TargetID("", map[string]any{"id": "alt"}))
	assert.Equal(t, "", TargetID("", map[string]any{"_id": 10}))
}

func TestWriteValidation(t *testing.T) {
	w := httptest.NewRecorder()
	WriteValidation(w, schema.NewValidationError("dog", "name", "this field is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "this field is required", body.Fields["name"])
}
