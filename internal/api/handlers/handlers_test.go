package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("x: %w", domain.ErrValidation), want: http.StatusBadRequest},
		{err: fmt.Errorf("x: %w", domain.ErrForbidden), want: http.StatusForbidden},
		{err: fmt.Errorf("x: %w", domain.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("x: %w", domain.ErrInvalidState), want: http.StatusConflict},
		{err: fmt.Errorf("x: %w", domain.ErrConflict), want: http.StatusConflict},
		{err: fmt.Errorf("x: %w", domain.ErrPricingMismatch), want: http.StatusUnprocessableEntity},
		{err: fmt.Errorf("x: %w", domain.ErrPaymentDeclined), want: http.StatusPaymentRequired},
		{err: fmt.Errorf("x: %w", domain.ErrUnavailable), want: http.StatusServiceUnavailable},
		{err: fmt.Errorf("x: %w", context.DeadlineExceeded), want: http.StatusServiceUnavailable},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestRespondDomainError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	RespondDomainError(rec, r, fmt.Errorf("booking: %w", domain.ErrInvalidState))

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Contains(t, body.Message, "invalid state")
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	RespondDomainError(rec, r, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRespondDomainError_ExpiredRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	RespondDomainError(rec, r, errors.New("bookings: internal error: query canceled"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Status string `json:"status"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"approved","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"approved"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "approved", v.Status)
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"bookingId": "42"})
	id, err := PathInt64(r, "bookingId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"bookingId": "-1"})
	_, err = PathInt64(r, "bookingId")
	assert.Error(t, err)
}
