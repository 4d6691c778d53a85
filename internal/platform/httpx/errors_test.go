package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFoundf("missing")))
	assert.Equal(t, http.StatusConflict, StatusOf(Duplicatef("taken")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validationf("bad input")))
	assert.Equal(t, http.StatusForbidden, StatusOf(ErrForbidden))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestConstructorsKeepMessageAndKind(t *testing.T) {
	err := NotFoundf("Order %d not found", 7)
	assert.Equal(t, "Order 7 not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRespondErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, Validationf("Invalid page number"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid page number", body["error"])
}

func TestRespondErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}
