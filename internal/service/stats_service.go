package service

import (
	"taxi-dashboard/internal/models"
	"taxi-dashboard/internal/repository"
)

// StatsService handles business logic for dashboard aggregates
type StatsService struct {
	repo          *repository.StatsRepository
	topZonesLimit int
}

// NewStatsService creates a new stats service. topZonesLimit is the
// default size of the pickup zone ranking when the request does not set
// one.
func NewStatsService(repo *repository.StatsRepository, topZonesLimit int) *StatsService {
	return &StatsService{repo: repo, topZonesLimit: topZonesLimit}
}

func (s *StatsService) validate(filter models.StatsFilter) error {
	return ValidateFilter(filter.StartDate, filter.EndDate, filter.Hours)
}

// GetSummary computes the key metrics row
func (s *StatsService) GetSummary(filter models.StatsFilter) (models.SummaryMetrics, error) {
	if err := s.validate(filter); err != nil {
		return models.SummaryMetrics{}, err
	}
	return s.repo.GetSummary(filter)
}

// GetTripsByHour computes the trips-by-hour distribution
func (s *StatsService) GetTripsByHour(filter models.StatsFilter) ([]models.HourBucket, error) {
	if err := s.validate(filter); err != nil {
		return nil, err
	}
	return s.repo.GetTripsByHour(filter)
}

// GetFareDistribution computes the fare histogram
func (s *StatsService) GetFareDistribution(filter models.StatsFilter) ([]models.HistogramBucket, error) {
	if err := s.validate(filter); err != nil {
		return nil, err
	}
	return s.repo.GetFareDistribution(filter)
}

// GetDistanceDistribution computes the trip distance histogram
func (s *StatsService) GetDistanceDistribution(filter models.StatsFilter) ([]models.HistogramBucket, error) {
	if err := s.validate(filter); err != nil {
		return nil, err
	}
	return s.repo.GetDistanceDistribution(filter)
}

// GetPaymentBreakdown computes the payment type breakdown
func (s *StatsService) GetPaymentBreakdown(filter models.StatsFilter) ([]models.PaymentShare, error) {
	if err := s.validate(filter); err != nil {
		return nil, err
	}
	return s.repo.GetPaymentBreakdown(filter)
}

// GetTopZones computes the pickup zone popularity ranking
func (s *StatsService) GetTopZones(filter models.StatsFilter) ([]models.ZoneCount, error) {
	if err := s.validate(filter); err != nil {
		return nil, err
	}
	if filter.Limit < 1 {
		filter.Limit = s.topZonesLimit
	}
	return s.repo.GetTopZones(filter)
}

// GetHeatmap computes the day-of-week by hour trip volume heatmap
func (s *StatsService) GetHeatmap(filter models.StatsFilter) ([]models.HeatmapCell, error) {
	if err := s.validate(filter); err != nil {
		return nil, err
	}
	return s.repo.GetHeatmap(filter)
}
