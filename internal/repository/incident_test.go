package repository

import (
	"context"
	"testing"
	"time"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/firewatch/incident-map/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var incidentColumns = []string{
	"incident_number", "external_reference", "title",
	"occurrence_at", "reported_at", "dispatch_at", "arrival_at", "resolved_at",
	"is_active", "casualty_count", "responder_injuries", "estimated_damage_amount",
	"location_geohash", "location_geojson",
	"type_code", "type_name", "type_description",
	"severity_code", "severity_name", "severity_description", "priority", "color_hex",
	"status_code", "status_name", "status_description", "is_terminal",
	"source_code", "source_name", "source_description",
	"condition_code", "condition_name", "condition_description",
	"station_code", "station_name",
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

// incidentRow returns a complete row with required lookups populated and
// every optional column NULL. Columns the repository scans into pointer
// fields carry pointer values, as pgxmock requires assignable types.
func incidentRow(incidentNumber string, reportedAt time.Time) []any {
	return []any{
		incidentNumber, nil, "Kitchen fire",
		reportedAt.Add(-10 * time.Minute), reportedAt, nil, nil, nil,
		true, 0, 0, nil,
		nil, `{"type":"Point","coordinates":[-122.41,37.77]}`,
		strPtr("STRUCTURE_FIRE"), strPtr("Structure Fire"), nil,
		strPtr("CRITICAL"), strPtr("Critical"), nil, intPtr(5), strPtr("#d32f2f"),
		strPtr("ON_SCENE"), strPtr("On Scene"), nil, boolPtr(false),
		nil, nil, nil,
		nil, nil, nil,
		nil, nil,
	}
}

func newTestIncidentRepository(t *testing.T) (service.IncidentRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	// No redis client: cache operations are no-ops.
	return NewIncidentRepository(mock, nil, 0), mock
}

func TestListIncidents_NoFilters(t *testing.T) {
	repo, mock := newTestIncidentRepository(t)
	reportedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT i\.id\)`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY i\.reported_at DESC, i\.incident_number ASC LIMIT \$1 OFFSET \$2`).
		WithArgs(25, 0).
		WillReturnRows(pgxmock.NewRows(incidentColumns).AddRow(incidentRow("F-2024-000001", reportedAt)...))

	page, err := repo.ListIncidents(context.Background(), service.IncidentListOptions{
		Page:          1,
		PageSize:      25,
		SortBy:        models.SortByReportedAt,
		SortDirection: models.SortDesc,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Data, 1)

	item := page.Data[0]
	assert.Equal(t, "F-2024-000001", item.IncidentNumber)
	assert.Equal(t, "STRUCTURE_FIRE", item.Type.Code)
	assert.Equal(t, "Critical", item.Severity.Name)
	assert.Equal(t, 5, item.Severity.Priority)
	assert.Equal(t, "#d32f2f", item.Severity.ColorHex)
	assert.False(t, item.Status.IsTerminal)
	assert.Nil(t, item.Source)
	assert.Nil(t, item.PrimaryStation)
	require.NotNil(t, item.Location.Geometry)
	assert.Equal(t, []float64{-122.41, 37.77}, item.Location.Geometry.Coordinates)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListIncidents_FiltersAndOffset(t *testing.T) {
	repo, mock := newTestIncidentRepository(t)
	isActive := true
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT i\.id\).*WHERE isv\.severity_code = ANY\(\$1\) AND i\.is_active = \$2 AND i\.occurrence_at >= \$3`).
		WithArgs([]string{"CRITICAL", "HIGH"}, true, startDate).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(120))
	mock.ExpectQuery(`ORDER BY isv\.priority ASC, i\.incident_number ASC LIMIT \$4 OFFSET \$5`).
		WithArgs([]string{"CRITICAL", "HIGH"}, true, startDate, 50, 100).
		WillReturnRows(pgxmock.NewRows(incidentColumns))

	page, err := repo.ListIncidents(context.Background(), service.IncidentListOptions{
		Page:          3,
		PageSize:      50,
		SeverityCodes: []string{"CRITICAL", "HIGH"},
		IsActive:      &isActive,
		StartDate:     &startDate,
		SortBy:        models.SortBySeverityPriority,
		SortDirection: models.SortAsc,
	})

	require.NoError(t, err)
	assert.Equal(t, 120, page.Total)
	assert.Empty(t, page.Data)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 50, page.PageSize)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListIncidents_MissingRequiredLookup(t *testing.T) {
	repo, mock := newTestIncidentRepository(t)
	reportedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	row := incidentRow("F-2024-000002", reportedAt)
	row[17] = nil // severity_code
	row[18] = nil
	row[20] = nil
	row[21] = nil

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT i\.id\)`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`LIMIT \$1 OFFSET \$2`).
		WithArgs(25, 0).
		WillReturnRows(pgxmock.NewRows(incidentColumns).AddRow(row...))

	_, err := repo.ListIncidents(context.Background(), service.IncidentListOptions{Page: 1, PageSize: 25})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing lookup data")
}

func TestGetIncidentDetail_NotFound(t *testing.T) {
	repo, mock := newTestIncidentRepository(t)

	mock.ExpectQuery(`WHERE i\.incident_number = \$1`).
		WithArgs("F-0000-000000").
		WillReturnError(pgx.ErrNoRows)

	detail, err := repo.GetIncidentDetail(context.Background(), "F-0000-000000")

	require.NoError(t, err)
	assert.Nil(t, detail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIncidentDetail_FullRecord(t *testing.T) {
	repo, mock := newTestIncidentRepository(t)
	reportedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	dispatchedAt := reportedAt.Add(4 * time.Minute)

	narrative := "Two-story residential structure, fire contained to kitchen."
	detailColumns := append([]string{"id", "narrative", "metadata"}, incidentColumns...)
	detailRow := append([]any{int64(42), &narrative, []byte(`{"alarmLevel":2}`)}, incidentRow("F-2024-000123", reportedAt)...)

	mock.ExpectQuery(`WHERE i\.incident_number = \$1`).
		WithArgs("F-2024-000123").
		WillReturnRows(pgxmock.NewRows(detailColumns).AddRow(detailRow...))
	mock.ExpectQuery(`FROM incident_units`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"station_code", "name", "assignment_role", "dispatched_at", "cleared_at"}).
			AddRow("ST-01", "Central", strPtr("first_due"), &dispatchedAt, nil))
	mock.ExpectQuery(`FROM incident_assets`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"asset_identifier", "asset_type", "status", "notes"}).
			AddRow("ENG-101", "engine", strPtr("committed"), nil))
	mock.ExpectQuery(`FROM incident_notes`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"author", "note", "created_at"}).
			AddRow("dispatcher_7", "Caller reports smoke from first floor.", reportedAt))

	detail, err := repo.GetIncidentDetail(context.Background(), "F-2024-000123")

	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "F-2024-000123", detail.IncidentNumber)
	require.NotNil(t, detail.Narrative)
	assert.Equal(t, narrative, *detail.Narrative)
	assert.Equal(t, map[string]any{"alarmLevel": float64(2)}, detail.Metadata)

	require.Len(t, detail.Units, 1)
	assert.Equal(t, "ST-01", detail.Units[0].StationCode)
	require.Len(t, detail.Assets, 1)
	assert.Equal(t, "ENG-101", detail.Assets[0].AssetIdentifier)
	require.Len(t, detail.Notes, 1)
	assert.Equal(t, "dispatcher_7", detail.Notes[0].Author)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailCache_NoRedisIsNoop(t *testing.T) {
	repo, _ := newTestIncidentRepository(t)
	ctx := context.Background()

	cached, err := repo.GetDetailFromCache(ctx, "F-2024-000123")
	require.NoError(t, err)
	assert.Nil(t, cached)

	require.NoError(t, repo.SetDetailCache(ctx, &models.IncidentDetail{}))
}
