package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groomstation/internal/db"
	"groomstation/internal/entities"
	"groomstation/internal/repository"
)

type stubJobRepo struct {
	holds   []db.SlotHold
	deleted []int64
}

func (r *stubJobRepo) GetOrphanedHolds(before time.Time) ([]db.SlotHold, error) {
	return r.holds, nil
}

func (r *stubJobRepo) DeleteHolds(ids []int64) error {
	r.deleted = append(r.deleted, ids...)
	return nil
}

func TestReleaseOrphanedHolds(t *testing.T) {
	availability := repository.NewMemoryAvailabilityRepository()
	require.NoError(t, availability.PublishSlots("S1", "2025-01-15", []string{"10:00"}))

	jobs := &stubJobRepo{holds: []db.SlotHold{
		{ID: 7, StationID: "S1", Date: "2025-01-15", Time: "09:00"},
	}}
	svc := NewJobService(jobs, availability, NewDraftStore(time.Minute), 10*time.Minute)

	require.NoError(t, svc.ReleaseOrphanedHolds())

	slots, err := availability.ListSlots("S1", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, slots, "orphaned hold returned to the pool")
	assert.Equal(t, []int64{7}, jobs.deleted)
}

func TestReleaseOrphanedHoldsNothingToDo(t *testing.T) {
	availability := repository.NewMemoryAvailabilityRepository()
	jobs := &stubJobRepo{}
	svc := NewJobService(jobs, availability, NewDraftStore(time.Minute), 10*time.Minute)

	require.NoError(t, svc.ReleaseOrphanedHolds())
	assert.Empty(t, jobs.deleted)
}

func TestPurgeExpiredDrafts(t *testing.T) {
	drafts := NewDraftStore(10 * time.Minute)
	current := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	drafts.now = func() time.Time { return current }
	drafts.Put("c1", &entities.DraftSelection{})

	svc := NewJobService(&stubJobRepo{}, repository.NewMemoryAvailabilityRepository(), drafts, 10*time.Minute)

	current = current.Add(11 * time.Minute)
	svc.PurgeExpiredDrafts()

	_, ok := drafts.Get("c1")
	assert.False(t, ok)
}
