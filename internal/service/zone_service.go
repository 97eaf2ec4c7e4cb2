package service

import (
	"taxi-dashboard/internal/models"
	"taxi-dashboard/internal/repository"
)

// ZoneService handles business logic for reference data
type ZoneService struct {
	repo *repository.ZoneRepository
}

// NewZoneService creates a new zone service
func NewZoneService(repo *repository.ZoneRepository) *ZoneService {
	return &ZoneService{repo: repo}
}

// GetZones retrieves the zone lookup table
func (s *ZoneService) GetZones() ([]models.Zone, error) {
	return s.repo.GetZones()
}

// GetPaymentTypes retrieves the payment codes present in the dataset
func (s *ZoneService) GetPaymentTypes() ([]models.PaymentTypeOption, error) {
	return s.repo.GetPaymentTypes()
}
