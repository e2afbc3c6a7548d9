package repository_test

import (
	"context"
	"testing"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.RestaurantRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repository.NewRestaurantRepository(mock, zap.NewNop())
}

func TestReserveTableDecrementsWhenAvailable(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE restaurants`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	reserved, err := repo.ReserveTable(context.Background(), id, entity.TableTypeTwoSeater)
	require.NoError(t, err)
	assert.True(t, reserved)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveTableExhausted(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	// count > 0 guard filtered the row out: nothing updated, no table taken
	mock.ExpectExec(`UPDATE restaurants`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	reserved, err := repo.ReserveTable(context.Background(), id, entity.TableTypeFourSeater)
	require.NoError(t, err)
	assert.False(t, reserved)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveTableRejectsUnknownType(t *testing.T) {
	mock, repo := newMockRepo(t)

	// No SQL may run for a type outside the known column set
	_, err := repo.ReserveTable(context.Background(), uuid.New(), entity.TableType("sixSeater"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown table type")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseTableMissingRestaurantTolerated(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE restaurants`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.ReleaseTable(context.Background(), id, entity.TableTypeTwoSeater)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM restaurants`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	restaurant, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, restaurant)

	require.NoError(t, mock.ExpectationsWereMet())
}
