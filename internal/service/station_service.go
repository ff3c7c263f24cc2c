package service

import (
	"fmt"

	"groomstation/internal/db"
	apperr "groomstation/internal/errors"
	"groomstation/internal/repository"
)

type StationService struct {
	Repo repository.StationRepository
}

func NewStationService(repo repository.StationRepository) *StationService {
	return &StationService{Repo: repo}
}

func (s *StationService) ListStations() ([]db.Station, error) {
	return s.Repo.ListStations()
}

func (s *StationService) GetStation(id string) (*db.Station, error) {
	station, err := s.Repo.GetStation(id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, fmt.Errorf("%w: station '%s'", apperr.ErrNotFound, id)
	}
	return station, nil
}

func (s *StationService) ListStationsByOwner(ownerID string) ([]db.Station, error) {
	return s.Repo.ListStationsByOwner(ownerID)
}
