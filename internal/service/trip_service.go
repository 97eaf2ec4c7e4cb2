package service

import (
	"taxi-dashboard/internal/models"
	"taxi-dashboard/internal/repository"
)

// TripService handles business logic for trips
type TripService struct {
	repo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository) *TripService {
	return &TripService{repo: repo}
}

// GetTrips retrieves trips with filtering and pagination
func (s *TripService) GetTrips(filter models.TripFilter) ([]models.TripRecord, int64, error) {
	if err := ValidateFilter(filter.StartDate, filter.EndDate, filter.Hours); err != nil {
		return nil, 0, err
	}
	return s.repo.GetTrips(filter)
}
