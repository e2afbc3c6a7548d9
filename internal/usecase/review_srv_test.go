package usecase_test

import (
	"context"
	"testing"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewRequest(restaurantID string, rating int) *request.CreateReviewRequest {
	return &request.CreateReviewRequest{
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      "great food",
	}
}

func TestCreateReviewRatingValidation(t *testing.T) {
	h := newTestHarness()
	user := h.addUser("alice")
	restaurant := h.addRestaurant("The Italian Place", 5, 3)

	// Rating out of range is rejected
	_, err := h.service.Review.CreateReview(context.Background(), user.ID.String(),
		reviewRequest(restaurant.ID.String(), 6))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, h.reviews.reviews)

	// Rating in range succeeds
	resp, err := h.service.Review.CreateReview(context.Background(), user.ID.String(),
		reviewRequest(restaurant.ID.String(), 3))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Rating)
	assert.Equal(t, "alice", resp.Username)
}

func TestCreateReviewDuplicate(t *testing.T) {
	h := newTestHarness()
	user := h.addUser("alice")
	restaurant := h.addRestaurant("The Italian Place", 5, 3)

	_, err := h.service.Review.CreateReview(context.Background(), user.ID.String(),
		reviewRequest(restaurant.ID.String(), 4))
	require.NoError(t, err)

	// Second review for the same restaurant by the same user
	_, err = h.service.Review.CreateReview(context.Background(), user.ID.String(),
		reviewRequest(restaurant.ID.String(), 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrConflict)
	assert.Len(t, h.reviews.reviews, 1)

	// A different user may still review it
	other := h.addUser("bob")
	_, err = h.service.Review.CreateReview(context.Background(), other.ID.String(),
		reviewRequest(restaurant.ID.String(), 5))
	require.NoError(t, err)
}

func TestCreateReviewRestaurantNotFound(t *testing.T) {
	h := newTestHarness()
	user := h.addUser("alice")

	_, err := h.service.Review.CreateReview(context.Background(), user.ID.String(),
		reviewRequest(uuid.New().String(), 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestDeleteReviewOwnership(t *testing.T) {
	h := newTestHarness()
	owner := h.addUser("alice")
	other := h.addUser("bob")
	restaurant := h.addRestaurant("Sushi Master", 5, 3)

	created, err := h.service.Review.CreateReview(context.Background(), owner.ID.String(),
		reviewRequest(restaurant.ID.String(), 4))
	require.NoError(t, err)

	// Non-owner cannot delete
	err = h.service.Review.DeleteReview(context.Background(), created.ID, other.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrForbidden)
	assert.Len(t, h.reviews.reviews, 1)

	// Owner can
	err = h.service.Review.DeleteReview(context.Background(), created.ID, owner.ID.String())
	require.NoError(t, err)
	assert.Empty(t, h.reviews.reviews)

	// And deleting again reports not found
	err = h.service.Review.DeleteReview(context.Background(), created.ID, owner.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestGetRestaurantReviewsNewestFirst(t *testing.T) {
	h := newTestHarness()
	alice := h.addUser("alice")
	bob := h.addUser("bob")
	restaurant := h.addRestaurant("Burger House", 5, 3)

	_, err := h.service.Review.CreateReview(context.Background(), alice.ID.String(),
		reviewRequest(restaurant.ID.String(), 4))
	require.NoError(t, err)

	_, err = h.service.Review.CreateReview(context.Background(), bob.ID.String(),
		reviewRequest(restaurant.ID.String(), 2))
	require.NoError(t, err)

	reviews, err := h.service.Review.GetRestaurantReviews(context.Background(), restaurant.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	// Newest first, usernames resolved
	assert.Equal(t, "bob", reviews[0].Username)
	assert.Equal(t, 2, reviews[0].Rating)
	assert.Equal(t, "alice", reviews[1].Username)
}
