package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/dto/response"
	"restaurant-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID string) ([]response.ReservationResponse, error)
	CancelReservation(ctx context.Context, reservationID, userID string) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", req.RestaurantID, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %s: %w", req.Date, err)
	}

	tableType := entity.TableType(req.TableType)

	// Check if restaurant exists
	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil {
		s.log.Error("Failed to look up restaurant", zap.Error(err))
		return nil, fmt.Errorf("look up restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, req.RestaurantID)
	}

	// Take a table first. The decrement is a single conditional update,
	// so racing bookings for the last table cannot both succeed, and no
	// reservation row exists without a table backing it.
	reserved, err := s.repo.Restaurant.ReserveTable(ctx, restaurantID, tableType)
	if err != nil {
		s.log.Error("Failed to reserve table",
			zap.Error(err),
			zap.String("restaurant_id", req.RestaurantID),
			zap.String("table_type", req.TableType),
		)
		return nil, fmt.Errorf("reserve table: %w", err)
	}
	if !reserved {
		return nil, fmt.Errorf("%w for selected type", ErrNoTables)
	}

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:         userUUID,
		RestaurantID:   restaurantID,
		Date:           date,
		Time:           req.Time,
		TableType:      tableType,
		NumberOfGuests: req.NumberOfGuests,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("restaurant_id", req.RestaurantID),
		)
		// Give the table back so the insert failure does not leak inventory
		if relErr := s.repo.Restaurant.ReleaseTable(ctx, restaurantID, tableType); relErr != nil {
			s.log.Error("Failed to release table after insert failure", zap.Error(relErr))
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", userID),
		zap.String("restaurant_id", req.RestaurantID),
		zap.String("table_type", req.TableType),
		zap.Int("guests", req.NumberOfGuests),
	)

	reservationResp := response.ReservationToResponse(reservation, restaurant.Name)
	return &reservationResp, nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string) ([]response.ReservationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user reservations",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user reservations: %w", err)
	}

	// Resolve restaurant display names
	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		restaurantName := ""
		restaurant, _ := s.repo.Restaurant.FindByID(ctx, reservation.RestaurantID)
		if restaurant != nil {
			restaurantName = restaurant.Name
		}

		reservationResponses[i] = response.ReservationToResponse(reservation, restaurantName)
	}

	s.log.Info("User reservations retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(reservations)),
	)

	return reservationResponses, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID, userID string) error {
	reservationUUID, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, reservationUUID)
	if err != nil {
		s.log.Error("Failed to look up reservation", zap.Error(err))
		return fmt.Errorf("look up reservation: %w", err)
	}
	if reservation == nil {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, reservationID)
	}

	// Only the owner may cancel
	if reservation.UserID != userUUID {
		return fmt.Errorf("%w to cancel this reservation", ErrForbidden)
	}

	if err := s.repo.Reservation.Delete(ctx, reservationUUID); err != nil {
		s.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return fmt.Errorf("delete reservation: %w", err)
	}

	// Give the table back. A missing restaurant is tolerated, the
	// reservation is already gone either way.
	if err := s.repo.Restaurant.ReleaseTable(ctx, reservation.RestaurantID, reservation.TableType); err != nil {
		s.log.Error("Failed to release table",
			zap.Error(err),
			zap.String("restaurant_id", reservation.RestaurantID.String()),
			zap.String("table_type", string(reservation.TableType)),
		)
		return fmt.Errorf("release table: %w", err)
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("user_id", userID),
		zap.String("restaurant_id", reservation.RestaurantID.String()),
	)

	return nil
}
