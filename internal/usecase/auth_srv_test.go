package usecase_test

import (
	"context"
	"testing"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	h := newTestHarness()

	user, err := h.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "customer", user.Role)

	// Duplicate email is rejected
	_, err = h.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "another-pass",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrConflict)

	// Wrong password fails
	_, err = h.service.Auth.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	// Correct password yields a session token
	login, err := h.service.Auth.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, user.ID, login.User.ID)

	session, err := h.sessions.FindValidSession(context.Background(), login.Token)
	require.NoError(t, err)
	require.NotNil(t, session)

	// Logout revokes the session
	err = h.service.Auth.Logout(context.Background(), login.Token)
	require.NoError(t, err)

	session, err = h.sessions.FindValidSession(context.Background(), login.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRegisterValidation(t *testing.T) {
	h := newTestHarness()

	_, err := h.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "al",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoginUnknownUser(t *testing.T) {
	h := newTestHarness()

	_, err := h.service.Auth.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}
