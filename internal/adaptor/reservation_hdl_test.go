package adaptor_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/dto/response"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReservationService struct {
	createErr error
	cancelErr error
}

func (s *stubReservationService) CreateReservation(_ context.Context, _ string, _ *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &response.ReservationResponse{ID: uuid.New().String()}, nil
}

func (s *stubReservationService) GetUserReservations(_ context.Context, _ string) ([]response.ReservationResponse, error) {
	return nil, nil
}

func (s *stubReservationService) CancelReservation(_ context.Context, _, _ string) error {
	return s.cancelErr
}

// withUser injects an authenticated user the way the session middleware does
func withUser(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := utils.SetUserContext(r.Context(), userID, "customer")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newReservationRouter(service usecase.ReservationService, userID uuid.UUID) *chi.Mux {
	handler := adaptor.NewReservationHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(withUser(userID))
		r.Post("/api/reservations", handler.CreateReservation)
		r.Delete("/api/reservations/{id}", handler.CancelReservation)
	})
	return r
}

func validReservationBody() string {
	return fmt.Sprintf(`{
		"restaurant_id": %q,
		"date": "2026-09-15",
		"time": "19:30",
		"table_type": "twoSeater",
		"number_of_guests": 2
	}`, uuid.New().String())
}

func TestCreateReservationStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"no tables", fmt.Errorf("%w for selected type", usecase.ErrNoTables), http.StatusBadRequest},
		{"restaurant missing", fmt.Errorf("%w: restaurant x", usecase.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("reservation %w", usecase.ErrConflict), http.StatusConflict},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newReservationRouter(&stubReservationService{createErr: tc.serviceErr}, uuid.New())

			req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(validReservationBody()))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestCreateReservationRejectsBadBody(t *testing.T) {
	router := newReservationRouter(&stubReservationService{}, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(`{"table_type": "tenSeater"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestCreateReservationRequiresAuth(t *testing.T) {
	handler := adaptor.NewReservationHandler(&stubReservationService{}, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/reservations", handler.CreateReservation)

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(validReservationBody()))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancelReservationStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not owner", fmt.Errorf("%w to cancel this reservation", usecase.ErrForbidden), http.StatusForbidden},
		{"missing", fmt.Errorf("%w: reservation x", usecase.ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newReservationRouter(&stubReservationService{cancelErr: tc.serviceErr}, uuid.New())

			req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+uuid.New().String(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
