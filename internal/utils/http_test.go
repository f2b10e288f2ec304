package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext(t)

	err := SuccessResponse(c, http.StatusOK, "units retrieved", map[string]string{"id": "collar-7"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "units retrieved", response.Message)
	assert.NotNil(t, response.Data)
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext(t)

	err := ErrorResponseHandler(c, http.StatusBadGateway, "upstream unavailable")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "upstream unavailable", response.Error)
	assert.Equal(t, http.StatusBadGateway, response.Code)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		expected int
	}{
		{"bad request", BadRequestResponse, http.StatusBadRequest},
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized},
		{"not found", NotFoundResponse, http.StatusNotFound},
		{"internal error", InternalServerErrorResponse, http.StatusInternalServerError},
		{"service unavailable", ServiceUnavailableResponse, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t)

			err := tt.fn(c, "")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.NotEmpty(t, response.Error)
		})
	}
}
