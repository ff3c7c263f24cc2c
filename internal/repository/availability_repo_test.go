package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "groomstation/internal/errors"
)

func setupAvailabilityRepo(t *testing.T) (*PostgresAvailabilityRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewPostgresAvailabilityRepository(conn), mock
}

func TestListSlots(t *testing.T) {
	repo, mock := setupAvailabilityRepo(t)

	t.Run("published date", func(t *testing.T) {
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-15").
			WillReturnRows(sqlmock.NewRows([]string{"times"}).AddRow("{09:00,10:00}"))

		slots, err := repo.ListSlots("S1", "2025-01-15")
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00"}, slots)
	})

	t.Run("absent date is an empty pool", func(t *testing.T) {
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-16").
			WillReturnError(sql.ErrNoRows)

		slots, err := repo.ListSlots("S1", "2025-01-16")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishSlots(t *testing.T) {
	repo, mock := setupAvailabilityRepo(t)

	mock.ExpectExec("INSERT INTO station_availability").
		WithArgs("S1", "2025-01-15", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.PublishSlots("S1", "2025-01-15", []string{"09:00", "10:00"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSlot(t *testing.T) {
	t.Run("open slot is removed and held", func(t *testing.T) {
		repo, mock := setupAvailabilityRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-15").
			WillReturnRows(sqlmock.NewRows([]string{"times"}).AddRow("{09:00,10:00}"))
		mock.ExpectExec("UPDATE station_availability").
			WithArgs("S1", "2025-01-15", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO slot_holds").
			WithArgs("S1", "2025-01-15", "09:00").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ReserveSlot("S1", "2025-01-15", "09:00"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken slot leaves the pool untouched", func(t *testing.T) {
		repo, mock := setupAvailabilityRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-15").
			WillReturnRows(sqlmock.NewRows([]string{"times"}).AddRow("{10:00}"))
		mock.ExpectRollback()

		err := repo.ReserveSlot("S1", "2025-01-15", "09:00")
		assert.ErrorIs(t, err, apperr.ErrSlotUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unpublished date", func(t *testing.T) {
		repo, mock := setupAvailabilityRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-16").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.ReserveSlot("S1", "2025-01-16", "09:00")
		assert.ErrorIs(t, err, apperr.ErrSlotUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReleaseSlot(t *testing.T) {
	t.Run("re-inserts into existing pool", func(t *testing.T) {
		repo, mock := setupAvailabilityRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-15").
			WillReturnRows(sqlmock.NewRows([]string{"times"}).AddRow("{10:00}"))
		mock.ExpectExec("UPDATE station_availability").
			WithArgs("S1", "2025-01-15", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ReleaseSlot("S1", "2025-01-15", "09:00"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("idempotent when already present", func(t *testing.T) {
		repo, mock := setupAvailabilityRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-15").
			WillReturnRows(sqlmock.NewRows([]string{"times"}).AddRow("{09:00,10:00}"))
		mock.ExpectCommit()

		require.NoError(t, repo.ReleaseSlot("S1", "2025-01-15", "09:00"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("creates the pool row when absent", func(t *testing.T) {
		repo, mock := setupAvailabilityRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT times FROM station_availability").
			WithArgs("S1", "2025-01-16").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO station_availability").
			WithArgs("S1", "2025-01-16", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ReleaseSlot("S1", "2025-01-16", "09:00"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClearHold(t *testing.T) {
	repo, mock := setupAvailabilityRepo(t)

	mock.ExpectExec("DELETE FROM slot_holds").
		WithArgs("S1", "2025-01-15", "09:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ClearHold("S1", "2025-01-15", "09:00"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotLabelHelpers(t *testing.T) {
	remaining, found := removeLabel([]string{"09:00", "10:00"}, "09:00")
	assert.True(t, found)
	assert.Equal(t, []string{"10:00"}, remaining)

	_, found = removeLabel([]string{"10:00"}, "09:00")
	assert.False(t, found)

	updated, changed := insertLabel([]string{"09:00", "14:00"}, "10:00")
	assert.True(t, changed)
	assert.Equal(t, []string{"09:00", "10:00", "14:00"}, updated)

	same, changed := insertLabel([]string{"09:00"}, "09:00")
	assert.False(t, changed)
	assert.Equal(t, []string{"09:00"}, same)
}
