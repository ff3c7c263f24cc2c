package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"groomstation/internal/repository"
)

// JobService runs the periodic maintenance work: releasing slot holds that
// never got a booking (at-least-once compensation for crashes between
// reserving a slot and persisting the booking) and purging expired drafts.
type JobService struct {
	Jobs         repository.JobRepository
	Availability repository.AvailabilityRepository
	Drafts       *DraftStore
	HoldTimeout  time.Duration
}

func NewJobService(jobs repository.JobRepository, availability repository.AvailabilityRepository, drafts *DraftStore, holdTimeout time.Duration) *JobService {
	return &JobService{
		Jobs:         jobs,
		Availability: availability,
		Drafts:       drafts,
		HoldTimeout:  holdTimeout,
	}
}

// ReleaseOrphanedHolds returns slots held longer than the timeout without a
// matching confirmed booking back into their pools.
func (s *JobService) ReleaseOrphanedHolds() error {
	cutoff := time.Now().UTC().Add(-s.HoldTimeout)
	holds, err := s.Jobs.GetOrphanedHolds(cutoff)
	if err != nil {
		return fmt.Errorf("recovery sweep: failed to query orphaned holds: %w", err)
	}
	if len(holds) == 0 {
		return nil
	}

	logrus.Infof("Recovery sweep: releasing %d orphaned slot holds", len(holds))
	var released []int64
	for _, h := range holds {
		if err := s.Availability.ReleaseSlot(h.StationID, h.Date, h.Time); err != nil {
			logrus.WithFields(logrus.Fields{
				"station_id": h.StationID,
				"date":       h.Date,
				"time":       h.Time,
			}).Errorf("Recovery sweep: release failed, keeping hold for next run: %v", err)
			continue
		}
		released = append(released, h.ID)
	}
	if err := s.Jobs.DeleteHolds(released); err != nil {
		return fmt.Errorf("recovery sweep: failed to delete released holds: %w", err)
	}
	return nil
}

// PurgeExpiredDrafts drops staged selections past their TTL.
func (s *JobService) PurgeExpiredDrafts() {
	if purged := s.Drafts.PurgeExpired(); purged > 0 {
		logrus.Infof("Purged %d expired draft selections", purged)
	}
}
