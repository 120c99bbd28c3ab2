package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/firewatch/incident-map/internal/httperr"
	"github.com/firewatch/incident-map/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100

	// MaxTotalResults is the hard ceiling on the queryable result window.
	// Totals are clamped to it and page/pageSize combinations reaching
	// past it are rejected.
	MaxTotalResults = 5000
)

var sortableFields = []models.SortField{
	models.SortByReportedAt,
	models.SortByOccurrenceAt,
	models.SortBySeverityPriority,
}

// Accepted layouts for startDate/endDate query parameters.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// IncidentListOptions is the strict, normalized query shape produced by
// BuildListOptions. No downstream component sees the raw query values.
type IncidentListOptions struct {
	Page          int
	PageSize      int
	TypeCodes     []string
	SeverityCodes []string
	StatusCodes   []string
	StartDate     *time.Time
	EndDate       *time.Time
	IsActive      *bool
	SortBy        models.SortField
	SortDirection models.SortDirection
}

// IncidentPage is one repository page plus the true, unclamped match count.
type IncidentPage struct {
	Data     []models.IncidentListItem
	Page     int
	PageSize int
	Total    int
}

// IncidentListResponse is the list endpoint envelope.
type IncidentListResponse struct {
	Data       []models.IncidentListItem `json:"data"`
	Pagination models.PaginationMeta     `json:"pagination"`
}

// IncidentRepository defines the storage contract for incidents.
type IncidentRepository interface {
	ListIncidents(ctx context.Context, opts IncidentListOptions) (*IncidentPage, error)
	GetIncidentDetail(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error)
	GetDetailFromCache(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error)
	SetDetailCache(ctx context.Context, detail *models.IncidentDetail) error
}

// IncidentService defines the incident query surface.
type IncidentService interface {
	BuildListOptions(query url.Values) (IncidentListOptions, error)
	ListIncidents(ctx context.Context, opts IncidentListOptions) (*IncidentListResponse, error)
	GetIncidentDetail(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error)
}

type incidentService struct {
	repo   IncidentRepository
	logger *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:   repo,
		logger: logger,
	}
}

// normalizeValue collapses a string/string-list query value to its first entry.
func normalizeValue(query url.Values, field string) (string, bool) {
	values, ok := query[field]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func parseInteger(query url.Values, field string, min int, max int) (int, bool, error) {
	raw, ok := normalizeValue(query, field)
	if !ok {
		return 0, false, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, httperr.BadRequest("Query parameter '%s' must be an integer.", field)
	}

	if parsed < min {
		return 0, false, httperr.BadRequest("Query parameter '%s' must be greater than or equal to %d.", field, min)
	}

	if max > 0 && parsed > max {
		return 0, false, httperr.BadRequest("Query parameter '%s' must be less than or equal to %d.", field, max)
	}

	return parsed, true, nil
}

// ParseBoolean accepts the boolean tokens true/false/1/0, case-insensitive.
func ParseBoolean(query url.Values, field string) (bool, error) {
	raw, ok := normalizeValue(query, field)
	if !ok {
		return false, httperr.BadRequest("Query parameter '%s' must be a boolean.", field)
	}

	switch strings.ToLower(raw) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}

	return false, httperr.BadRequest("Query parameter '%s' must be a boolean.", field)
}

// parseStringList flattens repeated and comma-separated entries, trimming
// each and dropping empties. An all-empty result normalizes to nil so the
// filter is treated as unset rather than matches-nothing.
func parseStringList(query url.Values, field string) []string {
	values, ok := query[field]
	if !ok {
		return nil
	}

	var results []string
	for _, entry := range values {
		for _, part := range strings.Split(entry, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			results = append(results, trimmed)
		}
	}

	return results
}

func parseDate(query url.Values, field string) (*time.Time, error) {
	raw, ok := normalizeValue(query, field)
	if !ok {
		return nil, nil
	}

	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			normalized := parsed.UTC()
			return &normalized, nil
		}
	}

	return nil, httperr.BadRequest("Query parameter '%s' must be an ISO-8601 date string.", field)
}

func parseSortBy(query url.Values) (models.SortField, error) {
	raw, ok := normalizeValue(query, "sortBy")
	if !ok || raw == "" {
		return models.SortByReportedAt, nil
	}

	for _, field := range sortableFields {
		if raw == string(field) {
			return field, nil
		}
	}

	return "", httperr.BadRequest("Query parameter 'sortBy' must be one of: reportedAt, occurrenceAt, severityPriority.")
}

func parseSortDirection(query url.Values) (models.SortDirection, error) {
	raw, ok := normalizeValue(query, "sortDirection")
	if !ok || raw == "" {
		return models.SortDesc, nil
	}

	switch strings.ToLower(raw) {
	case "asc":
		return models.SortAsc, nil
	case "desc":
		return models.SortDesc, nil
	}

	return "", httperr.BadRequest("Query parameter 'sortDirection' must be 'asc' or 'desc'.")
}

// BuildListOptions validates and normalizes a raw query into the strict
// options shape. All validation lives here; the repository is never
// reached with malformed input.
func (s *incidentService) BuildListOptions(query url.Values) (IncidentListOptions, error) {
	var opts IncidentListOptions

	page, ok, err := parseInteger(query, "page", 1, 0)
	if err != nil {
		return opts, err
	}
	if !ok {
		page = DefaultPage
	}

	pageSize, ok, err := parseInteger(query, "pageSize", 1, MaxPageSize)
	if err != nil {
		return opts, err
	}
	if !ok {
		pageSize = DefaultPageSize
	}

	// Boundary-inclusive: page == ceil(MaxTotalResults/pageSize) is accepted.
	maxPage := (MaxTotalResults + pageSize - 1) / pageSize
	if page > maxPage {
		return opts, httperr.BadRequest(
			"The combination of page=%d and pageSize=%d exceeds the maximum supported range of %d records.",
			page, pageSize, MaxTotalResults,
		)
	}

	startDate, err := parseDate(query, "startDate")
	if err != nil {
		return opts, err
	}
	endDate, err := parseDate(query, "endDate")
	if err != nil {
		return opts, err
	}

	sortBy, err := parseSortBy(query)
	if err != nil {
		return opts, err
	}
	sortDirection, err := parseSortDirection(query)
	if err != nil {
		return opts, err
	}

	var isActive *bool
	if _, present := query["isActive"]; present {
		value, err := ParseBoolean(query, "isActive")
		if err != nil {
			return opts, err
		}
		isActive = &value
	}

	opts = IncidentListOptions{
		Page:          page,
		PageSize:      pageSize,
		TypeCodes:     parseStringList(query, "typeCodes"),
		SeverityCodes: parseStringList(query, "severityCodes"),
		StatusCodes:   parseStringList(query, "statusCodes"),
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      isActive,
		SortBy:        sortBy,
		SortDirection: sortDirection,
	}
	return opts, nil
}

// ListIncidents delegates to the repository and derives pagination
// metadata, clamping the total to MaxTotalResults first.
func (s *incidentService) ListIncidents(ctx context.Context, opts IncidentListOptions) (*IncidentListResponse, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      opts.Page,
		"page_size": opts.PageSize,
	})

	result, err := s.repo.ListIncidents(ctx, opts)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	total := result.Total
	if total > MaxTotalResults {
		total = MaxTotalResults
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + result.PageSize - 1) / result.PageSize
	}

	log.WithField("count", len(result.Data)).Debug("Incidents listed successfully")

	return &IncidentListResponse{
		Data: result.Data,
		Pagination: models.PaginationMeta{
			Page:          result.Page,
			PageSize:      result.PageSize,
			Total:         total,
			TotalPages:    totalPages,
			HasNext:       totalPages > 0 && result.Page < totalPages,
			HasPrevious:   result.Page > 1,
			SortBy:        opts.SortBy,
			SortDirection: opts.SortDirection,
		},
	}, nil
}

// GetIncidentDetail returns the full detail record for an incident,
// consulting the cache before the database.
func (s *incidentService) GetIncidentDetail(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error) {
	normalized := strings.TrimSpace(incidentNumber)
	if normalized == "" {
		return nil, httperr.BadRequest("Incident number is required.")
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":         "incident",
		"method":          "GetIncidentDetail",
		"incident_number": normalized,
	})

	cached, err := s.repo.GetDetailFromCache(ctx, normalized)
	if err != nil {
		log.WithError(err).Warn("Detail cache lookup failed, falling back to database")
	}
	if cached != nil {
		log.Debug("Incident detail served from cache")
		return cached, nil
	}

	detail, err := s.repo.GetIncidentDetail(ctx, normalized)
	if err != nil {
		log.WithError(err).Error("Failed to get incident detail from repository")
		return nil, fmt.Errorf("service: could not get incident detail: %w", err)
	}
	if detail == nil {
		return nil, httperr.NotFound("Incident '%s' was not found.", normalized)
	}

	if err := s.repo.SetDetailCache(ctx, detail); err != nil {
		log.WithError(err).Warn("Failed to cache incident detail")
	}

	return detail, nil
}
