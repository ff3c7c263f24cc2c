package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groomstation/internal/db"
	apperr "groomstation/internal/errors"
	"groomstation/internal/repository"
)

func newAvailabilityTestEnv() (*AvailabilityService, *repository.MemoryAvailabilityRepository) {
	stations := repository.NewMemoryStationRepository()
	stations.SaveStation(&db.Station{ID: "S1", Name: "Premium Grooming Hub", OwnerID: "o1"})
	availability := repository.NewMemoryAvailabilityRepository()
	return NewAvailabilityService(stations, availability), availability
}

func TestPublishSlotsNormalizes(t *testing.T) {
	svc, _ := newAvailabilityTestEnv()

	err := svc.PublishSlots("o1", "S1", "2025-01-15", []string{"14:00", "09:00", "14:00", "10:00"})
	require.NoError(t, err)

	slots, err := svc.ListSlots("S1", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "14:00"}, slots)
}

func TestPublishSlotsIsFullReplace(t *testing.T) {
	svc, _ := newAvailabilityTestEnv()

	require.NoError(t, svc.PublishSlots("o1", "S1", "2025-01-15", []string{"09:00", "10:00"}))
	require.NoError(t, svc.PublishSlots("o1", "S1", "2025-01-15", []string{"16:00"}))

	slots, err := svc.ListSlots("S1", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"16:00"}, slots)

	// Publishing an empty set makes the date unbookable.
	require.NoError(t, svc.PublishSlots("o1", "S1", "2025-01-15", nil))
	slots, err = svc.ListSlots("S1", "2025-01-15")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestPublishSlotsValidation(t *testing.T) {
	svc, _ := newAvailabilityTestEnv()

	for _, label := range []string{"24:00", "9:00", "09:60", "morning", "09:00:00"} {
		err := svc.PublishSlots("o1", "S1", "2025-01-15", []string{label})
		assert.ErrorIs(t, err, apperr.ErrValidation, "label %q", label)
	}

	err := svc.PublishSlots("o1", "S1", "Jan 15", []string{"09:00"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestPublishSlotsAuthorization(t *testing.T) {
	svc, _ := newAvailabilityTestEnv()

	err := svc.PublishSlots("o2", "S1", "2025-01-15", []string{"09:00"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = svc.PublishSlots("o1", "ghost", "2025-01-15", []string{"09:00"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListSlotsEmptyAndInvalid(t *testing.T) {
	svc, _ := newAvailabilityTestEnv()

	slots, err := svc.ListSlots("S1", "2025-01-20")
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = svc.ListSlots("S1", "someday")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMonthGrid(t *testing.T) {
	svc, _ := newAvailabilityTestEnv()
	require.NoError(t, svc.PublishSlots("o1", "S1", "2025-01-15", []string{"09:00"}))
	require.NoError(t, svc.PublishSlots("o1", "S1", "2025-01-05", []string{"10:00"}))

	today := time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC)
	grid, err := svc.MonthGrid("S1", 2025, time.January, today)
	require.NoError(t, err)
	require.Equal(t, 35, len(grid))

	// Leading placeholders for Wednesday the 1st.
	for i := 0; i < 3; i++ {
		assert.Empty(t, grid[i].Date)
		assert.False(t, grid[i].Bookable)
	}
	// Day 15 has slots and lies in the future.
	assert.Equal(t, "2025-01-15", grid[2+15].Date)
	assert.True(t, grid[2+15].Bookable)
	// Day 5 has slots but already passed.
	assert.Equal(t, "2025-01-05", grid[2+5].Date)
	assert.False(t, grid[2+5].Bookable)
	// Day 16 has no slots.
	assert.False(t, grid[2+16].Bookable)

	_, err = svc.MonthGrid("ghost", 2025, time.January, today)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
