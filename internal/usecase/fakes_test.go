package usecase_test

import (
	"context"
	"fmt"
	"time"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. Lists come back newest-first, matching the
// ORDER BY created_at DESC the real queries use.

type fakeRestaurantRepo struct {
	restaurants map[uuid.UUID]*entity.Restaurant
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[uuid.UUID]*entity.Restaurant)}
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return f.restaurants[id], nil
}

func (f *fakeRestaurantRepo) FindAll(_ context.Context) ([]*entity.Restaurant, error) {
	var out []*entity.Restaurant
	for _, restaurant := range f.restaurants {
		out = append(out, restaurant)
	}
	return out, nil
}

func (f *fakeRestaurantRepo) ReserveTable(_ context.Context, id uuid.UUID, tableType entity.TableType) (bool, error) {
	restaurant, ok := f.restaurants[id]
	if !ok {
		return false, nil
	}
	switch tableType {
	case entity.TableTypeTwoSeater:
		if restaurant.TwoSeater <= 0 {
			return false, nil
		}
		restaurant.TwoSeater--
	case entity.TableTypeFourSeater:
		if restaurant.FourSeater <= 0 {
			return false, nil
		}
		restaurant.FourSeater--
	default:
		return false, fmt.Errorf("unknown table type %q", string(tableType))
	}
	return true, nil
}

func (f *fakeRestaurantRepo) ReleaseTable(_ context.Context, id uuid.UUID, tableType entity.TableType) error {
	restaurant, ok := f.restaurants[id]
	if !ok {
		// tolerated, same as the real repository
		return nil
	}
	switch tableType {
	case entity.TableTypeTwoSeater:
		restaurant.TwoSeater++
	case entity.TableTypeFourSeater:
		restaurant.FourSeater++
	default:
		return fmt.Errorf("unknown table type %q", string(tableType))
	}
	return nil
}

type fakeReservationRepo struct {
	reservations []*entity.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	f.reservations = append(f.reservations, reservation)
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	for _, reservation := range f.reservations {
		if reservation.ID == id {
			return reservation, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for i := len(f.reservations) - 1; i >= 0; i-- {
		if f.reservations[i].UserID == userID {
			out = append(out, f.reservations[i])
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, reservation := range f.reservations {
		if reservation.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("reservation %s not found", id.String())
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	for _, review := range f.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for i := len(f.reviews) - 1; i >= 0; i-- {
		if f.reviews[i].RestaurantID == restaurantID {
			out = append(out, f.reviews[i])
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByUserAndRestaurant(_ context.Context, userID, restaurantID uuid.UUID) (*entity.Review, error) {
	for _, review := range f.reviews {
		if review.UserID == userID && review.RestaurantID == restaurantID {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, review := range f.reviews {
		if review.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("review %s not found", id.String())
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

// testHarness bundles the fakes with a wired Service
type testHarness struct {
	restaurants  *fakeRestaurantRepo
	reservations *fakeReservationRepo
	reviews      *fakeReviewRepo
	users        *fakeUserRepo
	sessions     *fakeSessionRepo
	service      *usecase.Service
}

func newTestHarness() *testHarness {
	h := &testHarness{
		restaurants:  newFakeRestaurantRepo(),
		reservations: &fakeReservationRepo{},
		reviews:      &fakeReviewRepo{},
		users:        newFakeUserRepo(),
		sessions:     newFakeSessionRepo(),
	}

	repo := &repository.Repository{
		User:        h.users,
		Session:     h.sessions,
		Restaurant:  h.restaurants,
		Reservation: h.reservations,
		Review:      h.reviews,
	}

	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	h.service = usecase.NewService(repo, config, zap.NewNop())
	return h
}

func (h *testHarness) addRestaurant(name string, twoSeater, fourSeater int) *entity.Restaurant {
	restaurant := &entity.Restaurant{
		Base:        entity.Base{ID: uuid.New()},
		Name:        name,
		Description: "test restaurant",
		Image:       "https://example.com/image.jpeg",
		TwoSeater:   twoSeater,
		FourSeater:  fourSeater,
	}
	h.restaurants.restaurants[restaurant.ID] = restaurant
	return restaurant
}

func (h *testHarness) addUser(username string) *entity.User {
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: username,
		Email:    username + "@example.com",
		Role:     entity.RoleCustomer,
	}
	h.users.users[user.ID] = user
	return user
}
