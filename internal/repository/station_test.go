package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stationColumns = []string{
	"station_code", "name", "battalion", "phone",
	"address_line_1", "address_line_2", "city", "region", "postal_code",
	"is_active", "commissioned_on", "decommissioned_on", "coverage_radius_meters",
	"location_geojson", "zone_code", "zone_name", "boundary_geojson",
}

const stationBoundaryJSON = `{"type":"MultiPolygon","coordinates":[[[[-122.5,37.7],[-122.3,37.7],[-122.3,37.8],[-122.5,37.8],[-122.5,37.7]]]]}`

func newTestStationRepository(t *testing.T) (*StationRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewStationRepository(mock)
	return repo.(*StationRepository), mock
}

func TestListStations_WithResponseZone(t *testing.T) {
	repo, mock := newTestStationRepository(t)

	commissionedOn := "1998-06-15"
	line1 := "100 Main St"
	city := "San Francisco"
	zoneCode := "RZ-1"
	zoneName := "Downtown"
	boundary := stationBoundaryJSON
	radius := 2500.0

	mock.ExpectQuery(`ORDER BY s\.station_code ASC`).
		WillReturnRows(pgxmock.NewRows(stationColumns).AddRow(
			"ST-01", "Central", nil, nil,
			&line1, nil, &city, nil, nil,
			true, &commissionedOn, nil, &radius,
			`{"type":"Point","coordinates":[-122.42,37.78]}`,
			&zoneCode, &zoneName, &boundary,
		))

	stations, err := repo.ListStations(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, stations, 1)

	station := stations[0]
	assert.Equal(t, "ST-01", station.StationCode)
	assert.True(t, station.IsActive)
	require.NotNil(t, station.CommissionedOn)
	assert.Equal(t, "1998-06-15", *station.CommissionedOn)
	require.NotNil(t, station.CoverageRadiusMeters)
	assert.Equal(t, 2500.0, *station.CoverageRadiusMeters)
	require.NotNil(t, station.Address)
	require.NotNil(t, station.Address.Line1)
	assert.Equal(t, "100 Main St", *station.Address.Line1)
	require.NotNil(t, station.Location.Geometry)
	assert.Equal(t, []float64{-122.42, 37.78}, station.Location.Geometry.Coordinates)

	require.NotNil(t, station.ResponseZone)
	assert.Equal(t, "RZ-1", station.ResponseZone.ZoneCode)
	assert.Equal(t, "Downtown", station.ResponseZone.Name)
	require.NotNil(t, station.ResponseZone.Boundary.Geometry)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListStations_ZoneNameFallsBackToCode(t *testing.T) {
	repo, mock := newTestStationRepository(t)

	zoneCode := "RZ-9"
	boundary := stationBoundaryJSON

	mock.ExpectQuery(`ORDER BY s\.station_code ASC`).
		WillReturnRows(pgxmock.NewRows(stationColumns).AddRow(
			"ST-09", "Outer", nil, nil,
			nil, nil, nil, nil, nil,
			true, nil, nil, nil,
			`{"type":"Point","coordinates":[-122.5,37.7]}`,
			&zoneCode, nil, &boundary,
		))

	stations, err := repo.ListStations(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, stations, 1)
	require.NotNil(t, stations[0].ResponseZone)
	assert.Equal(t, "RZ-9", stations[0].ResponseZone.Name)
}

func TestListStations_ActiveFilter(t *testing.T) {
	repo, mock := newTestStationRepository(t)
	isActive := true

	mock.ExpectQuery(`WHERE s\.is_active = \$1 ORDER BY s\.station_code ASC`).
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows(stationColumns))

	stations, err := repo.ListStations(context.Background(), &isActive)

	require.NoError(t, err)
	assert.Empty(t, stations)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListStations_NoZone(t *testing.T) {
	repo, mock := newTestStationRepository(t)

	mock.ExpectQuery(`ORDER BY s\.station_code ASC`).
		WillReturnRows(pgxmock.NewRows(stationColumns).AddRow(
			"ST-02", "Bayside", nil, nil,
			nil, nil, nil, nil, nil,
			false, nil, nil, nil,
			`{"type":"Point","coordinates":[-122.39,37.76]}`,
			nil, nil, nil,
		))

	stations, err := repo.ListStations(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Nil(t, stations[0].ResponseZone)
	assert.False(t, stations[0].IsActive)
}
