package v1

import "github.com/firewatch/incident-map/internal/models"

// StationListResponse is the stations endpoint envelope.
type StationListResponse struct {
	Data []models.StationSummary `json:"data"`
}
