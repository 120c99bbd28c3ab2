package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/firewatch/incident-map/internal/service"
)

type StationRepository struct {
	db DB
}

func NewStationRepository(db DB) service.StationRepository {
	return &StationRepository{db: db}
}

// ListStations returns stations ordered by station code, with the
// response-zone boundary already in wire geometry encoding.
func (r *StationRepository) ListStations(ctx context.Context, isActive *bool) ([]models.StationSummary, error) {
	query := `
		SELECT
			s.station_code,
			s.name,
			s.battalion,
			s.phone,
			s.address_line_1,
			s.address_line_2,
			s.city,
			s.region,
			s.postal_code,
			s.is_active,
			s.commissioned_on::text,
			s.decommissioned_on::text,
			s.coverage_radius_meters::float8,
			ST_AsGeoJSON(s.location)::text,
			rz.zone_code,
			rz.name,
			ST_AsGeoJSON(rz.boundary)::text
		FROM stations s
		LEFT JOIN response_zones rz ON s.response_zone_id = rz.id`

	var args []any
	if isActive != nil {
		query += " WHERE s.is_active = $1"
		args = append(args, *isActive)
	}
	query += " ORDER BY s.station_code ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	stations := make([]models.StationSummary, 0)
	for rows.Next() {
		var (
			station      models.StationSummary
			address      models.StationAddress
			locationJSON string
			zoneCode     *string
			zoneName     *string
			boundaryJSON *string
		)

		err := rows.Scan(
			&station.StationCode,
			&station.Name,
			&station.Battalion,
			&station.Phone,
			&address.Line1,
			&address.Line2,
			&address.City,
			&address.Region,
			&address.PostalCode,
			&station.IsActive,
			&station.CommissionedOn,
			&station.DecommissionedOn,
			&station.CoverageRadiusMeters,
			&locationJSON,
			&zoneCode,
			&zoneName,
			&boundaryJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}

		station.Address = &address

		var geometry models.PointGeometry
		if err := json.Unmarshal([]byte(locationJSON), &geometry); err != nil {
			return nil, fmt.Errorf("failed to decode station %s location geometry: %w", station.StationCode, err)
		}
		station.Location = models.PointFeature{Type: "Feature", Geometry: &geometry, Properties: map[string]any{}}

		if zoneCode != nil {
			if boundaryJSON == nil {
				return nil, fmt.Errorf("response zone %s is missing boundary geometry", *zoneCode)
			}
			var boundary models.MultiPolygonGeometry
			if err := json.Unmarshal([]byte(*boundaryJSON), &boundary); err != nil {
				return nil, fmt.Errorf("failed to decode response zone %s boundary: %w", *zoneCode, err)
			}

			zone := models.ResponseZone{
				ZoneCode: *zoneCode,
				Name:     *zoneCode,
				Boundary: models.MultiPolygonFeature{Type: "Feature", Geometry: &boundary, Properties: map[string]any{}},
			}
			if zoneName != nil {
				zone.Name = *zoneName
			}
			station.ResponseZone = &zone
		}

		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station rows: %w", err)
	}

	return stations, nil
}
