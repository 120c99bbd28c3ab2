package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/firewatch/incident-map/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

// DB is the subset of pgxpool.Pool the repositories use. It is satisfied
// by both *pgxpool.Pool and pgxmock pools.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const defaultDetailCacheTTL = 5 * time.Minute

// listColumns is shared between the list and detail queries; the detail
// query appends narrative and metadata.
const listColumns = `
	i.incident_number,
	i.external_reference,
	i.title,
	i.occurrence_at,
	i.reported_at,
	i.dispatch_at,
	i.arrival_at,
	i.resolved_at,
	i.is_active,
	i.casualty_count,
	i.responder_injuries,
	i.estimated_damage_amount::text,
	i.location_geohash,
	ST_AsGeoJSON(i.location)::text,
	it.type_code, it.name, it.description,
	isv.severity_code, isv.name, isv.description, isv.priority, isv.color_hex,
	ist.status_code, ist.name, ist.description, ist.is_terminal,
	iso.source_code, iso.name, iso.description,
	iwc.condition_code, iwc.name, iwc.description,
	ps.station_code, ps.name`

const incidentJoins = `
	FROM incidents i
	LEFT JOIN incident_types it ON i.type_id = it.id
	LEFT JOIN incident_severities isv ON i.severity_id = isv.id
	LEFT JOIN incident_statuses ist ON i.status_id = ist.id
	LEFT JOIN incident_sources iso ON i.source_id = iso.id
	LEFT JOIN weather_conditions iwc ON i.weather_condition_id = iwc.id
	LEFT JOIN stations ps ON i.primary_station_id = ps.id`

type IncidentRepository struct {
	db          DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db DB, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	if cacheTTL <= 0 {
		cacheTTL = defaultDetailCacheTTL
	}
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// buildFilters renders WHERE conditions for the validated options.
// Input is already normalized by the service, so only set filters appear.
func buildFilters(opts service.IncidentListOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(opts.TypeCodes) > 0 {
		add("it.type_code = ANY($%d)", opts.TypeCodes)
	}
	if len(opts.SeverityCodes) > 0 {
		add("isv.severity_code = ANY($%d)", opts.SeverityCodes)
	}
	if len(opts.StatusCodes) > 0 {
		add("ist.status_code = ANY($%d)", opts.StatusCodes)
	}
	if opts.IsActive != nil {
		add("i.is_active = $%d", *opts.IsActive)
	}
	if opts.StartDate != nil {
		add("i.occurrence_at >= $%d", *opts.StartDate)
	}
	if opts.EndDate != nil {
		add("i.occurrence_at <= $%d", *opts.EndDate)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause maps the validated sort token to a SQL ORDER BY with a
// stable incident_number tie-break.
func orderClause(sortBy models.SortField, direction models.SortDirection) string {
	column := "i.reported_at"
	switch sortBy {
	case models.SortByOccurrenceAt:
		column = "i.occurrence_at"
	case models.SortBySeverityPriority:
		column = "isv.priority"
	}

	dir := "DESC"
	if direction == models.SortAsc {
		dir = "ASC"
	}

	return fmt.Sprintf(" ORDER BY %s %s, i.incident_number ASC", column, dir)
}

// ListIncidents returns one page of incidents plus the unclamped total
// match count.
func (r *IncidentRepository) ListIncidents(ctx context.Context, opts service.IncidentListOptions) (*service.IncidentPage, error) {
	where, args := buildFilters(opts)

	countQuery := "SELECT COUNT(DISTINCT i.id)" + incidentJoins + where
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}

	listArgs := append(args, opts.PageSize, (opts.Page-1)*opts.PageSize)
	listQuery := fmt.Sprintf(
		"SELECT %s%s%s%s LIMIT $%d OFFSET $%d",
		listColumns, incidentJoins, where, orderClause(opts.SortBy, opts.SortDirection),
		len(args)+1, len(args)+2,
	)

	rows, err := r.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.IncidentListItem, 0)
	for rows.Next() {
		item, err := scanIncidentRow(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident rows: %w", err)
	}

	return &service.IncidentPage{
		Data:     incidents,
		Page:     opts.Page,
		PageSize: opts.PageSize,
		Total:    total,
	}, nil
}

// incidentScanTarget collects the nullable lookup columns before
// assembly into the wire model.
type incidentScanTarget struct {
	item            models.IncidentListItem
	locationJSON    string
	typeCode        *string
	typeName        *string
	typeDesc        *string
	severityCode    *string
	severityName    *string
	severityDesc    *string
	severityPrio    *int
	severityColor   *string
	statusCode      *string
	statusName      *string
	statusDesc      *string
	statusTerminal  *bool
	sourceCode      *string
	sourceName      *string
	sourceDesc      *string
	weatherCode     *string
	weatherName     *string
	weatherDesc     *string
	primaryStnCode  *string
	primaryStnName  *string
}

func (t *incidentScanTarget) fields() []any {
	return []any{
		&t.item.IncidentNumber,
		&t.item.ExternalReference,
		&t.item.Title,
		&t.item.OccurrenceAt,
		&t.item.ReportedAt,
		&t.item.DispatchAt,
		&t.item.ArrivalAt,
		&t.item.ResolvedAt,
		&t.item.IsActive,
		&t.item.CasualtyCount,
		&t.item.ResponderInjuries,
		&t.item.EstimatedDamageAmount,
		&t.item.LocationGeohash,
		&t.locationJSON,
		&t.typeCode, &t.typeName, &t.typeDesc,
		&t.severityCode, &t.severityName, &t.severityDesc, &t.severityPrio, &t.severityColor,
		&t.statusCode, &t.statusName, &t.statusDesc, &t.statusTerminal,
		&t.sourceCode, &t.sourceName, &t.sourceDesc,
		&t.weatherCode, &t.weatherName, &t.weatherDesc,
		&t.primaryStnCode, &t.primaryStnName,
	}
}

func lookupFrom(code, name, description *string) models.LookupValue {
	lookup := models.LookupValue{Code: *code, Name: *code, Description: description}
	if name != nil {
		lookup.Name = *name
	}
	return lookup
}

func (t *incidentScanTarget) assemble() (models.IncidentListItem, error) {
	item := t.item

	if t.typeCode == nil || t.severityCode == nil || t.statusCode == nil {
		return item, fmt.Errorf("incident %s is missing lookup data", item.IncidentNumber)
	}

	var geometry models.PointGeometry
	if err := json.Unmarshal([]byte(t.locationJSON), &geometry); err != nil {
		return item, fmt.Errorf("failed to decode incident %s location geometry: %w", item.IncidentNumber, err)
	}
	item.Location = models.PointFeature{Type: "Feature", Geometry: &geometry, Properties: map[string]any{}}

	item.Type = lookupFrom(t.typeCode, t.typeName, t.typeDesc)

	severity := models.Severity{LookupValue: lookupFrom(t.severityCode, t.severityName, t.severityDesc), ColorHex: "#000000"}
	if t.severityPrio != nil {
		severity.Priority = *t.severityPrio
	}
	if t.severityColor != nil {
		severity.ColorHex = *t.severityColor
	}
	item.Severity = severity

	status := models.Status{LookupValue: lookupFrom(t.statusCode, t.statusName, t.statusDesc)}
	if t.statusTerminal != nil {
		status.IsTerminal = *t.statusTerminal
	}
	item.Status = status

	if t.sourceCode != nil {
		source := lookupFrom(t.sourceCode, t.sourceName, t.sourceDesc)
		item.Source = &source
	}
	if t.weatherCode != nil {
		weather := lookupFrom(t.weatherCode, t.weatherName, t.weatherDesc)
		item.Weather = &weather
	}
	if t.primaryStnCode != nil {
		ref := models.StationRef{StationCode: *t.primaryStnCode, Name: *t.primaryStnCode}
		if t.primaryStnName != nil {
			ref.Name = *t.primaryStnName
		}
		item.PrimaryStation = &ref
	}

	return item, nil
}

func scanIncidentRow(rows pgx.Rows) (models.IncidentListItem, error) {
	var target incidentScanTarget
	if err := rows.Scan(target.fields()...); err != nil {
		return models.IncidentListItem{}, fmt.Errorf("failed to scan incident row: %w", err)
	}
	return target.assemble()
}

// GetIncidentDetail returns the full detail record, or nil when no
// incident matches.
func (r *IncidentRepository) GetIncidentDetail(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error) {
	query := "SELECT i.id, i.narrative, i.metadata, " + strings.TrimLeft(listColumns, "\n\t") +
		incidentJoins + " WHERE i.incident_number = $1"

	var (
		incidentID   int64
		target       incidentScanTarget
		narrative    *string
		metadataJSON []byte
	)
	scanFields := append([]any{&incidentID, &narrative, &metadataJSON}, target.fields()...)

	if err := r.db.QueryRow(ctx, query, incidentNumber).Scan(scanFields...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident detail: %w", err)
	}

	item, err := target.assemble()
	if err != nil {
		return nil, err
	}

	metadata := map[string]any{}
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode incident %s metadata: %w", incidentNumber, err)
		}
	}

	detail := &models.IncidentDetail{
		IncidentListItem: item,
		Narrative:        narrative,
		Metadata:         metadata,
	}

	if detail.Units, err = r.listUnits(ctx, incidentID); err != nil {
		return nil, err
	}
	if detail.Assets, err = r.listAssets(ctx, incidentID); err != nil {
		return nil, err
	}
	if detail.Notes, err = r.listNotes(ctx, incidentID); err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *IncidentRepository) listUnits(ctx context.Context, incidentID int64) ([]models.IncidentUnit, error) {
	query := `
		SELECT s.station_code, s.name, iu.assignment_role, iu.dispatched_at, iu.cleared_at
		FROM incident_units iu
		JOIN stations s ON iu.station_id = s.id
		WHERE iu.incident_id = $1
		ORDER BY iu.created_at ASC`

	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident units: %w", err)
	}
	defer rows.Close()

	units := make([]models.IncidentUnit, 0)
	for rows.Next() {
		var unit models.IncidentUnit
		if err := rows.Scan(&unit.StationCode, &unit.StationName, &unit.AssignmentRole, &unit.DispatchedAt, &unit.ClearedAt); err != nil {
			return nil, fmt.Errorf("failed to scan incident unit row: %w", err)
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

func (r *IncidentRepository) listAssets(ctx context.Context, incidentID int64) ([]models.IncidentAsset, error) {
	query := `
		SELECT asset_identifier, asset_type, status, notes
		FROM incident_assets
		WHERE incident_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident assets: %w", err)
	}
	defer rows.Close()

	assets := make([]models.IncidentAsset, 0)
	for rows.Next() {
		var asset models.IncidentAsset
		if err := rows.Scan(&asset.AssetIdentifier, &asset.AssetType, &asset.Status, &asset.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan incident asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *IncidentRepository) listNotes(ctx context.Context, incidentID int64) ([]models.IncidentNote, error) {
	query := `
		SELECT author, note, created_at
		FROM incident_notes
		WHERE incident_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.IncidentNote, 0)
	for rows.Next() {
		var note models.IncidentNote
		if err := rows.Scan(&note.Author, &note.Note, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan incident note row: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func detailCacheKey(incidentNumber string) string {
	return fmt.Sprintf("incident-detail:%s", incidentNumber)
}

// GetDetailFromCache returns a cached detail record, or nil on a miss.
func (r *IncidentRepository) GetDetailFromCache(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error) {
	if r.redisClient == nil {
		return nil, nil
	}

	val, err := r.redisClient.Get(ctx, detailCacheKey(incidentNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident detail from cache: %w", err)
	}

	detail := &models.IncidentDetail{}
	if err := json.Unmarshal(val, detail); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident detail from cache: %w", err)
	}
	return detail, nil
}

// SetDetailCache stores a detail record with a short TTL.
func (r *IncidentRepository) SetDetailCache(ctx context.Context, detail *models.IncidentDetail) error {
	if r.redisClient == nil {
		return nil
	}

	val, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal incident detail for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, detailCacheKey(detail.IncidentNumber), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident detail in cache: %w", err)
	}
	return nil
}
