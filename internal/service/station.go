package service

import (
	"context"
	"fmt"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/sirupsen/logrus"
)

// StationRepository defines the storage contract for stations.
type StationRepository interface {
	ListStations(ctx context.Context, isActive *bool) ([]models.StationSummary, error)
}

// StationService defines the station query surface.
type StationService interface {
	ListStations(ctx context.Context, isActive *bool) ([]models.StationSummary, error)
}

type stationService struct {
	repo   StationRepository
	logger *logrus.Logger
}

func NewStationService(repo StationRepository, logger *logrus.Logger) StationService {
	return &stationService{
		repo:   repo,
		logger: logger,
	}
}

// ListStations returns stations ordered by station code, optionally
// filtered on the active flag.
func (s *stationService) ListStations(ctx context.Context, isActive *bool) ([]models.StationSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "station",
		"method":  "ListStations",
	})

	stations, err := s.repo.ListStations(ctx, isActive)
	if err != nil {
		log.WithError(err).Error("Failed to list stations from repository")
		return nil, fmt.Errorf("service: could not list stations: %w", err)
	}

	log.WithField("count", len(stations)).Debug("Stations listed successfully")
	return stations, nil
}
