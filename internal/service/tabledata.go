package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentTableParams is the typed filter object used by table consumers.
type IncidentTableParams struct {
	Page          *int
	PageSize      *int
	SortBy        models.SortField
	SortDirection models.SortDirection
	TypeCodes     []string
	SeverityCodes []string
	StatusCodes   []string
	StartDate     string
	EndDate       string
	IsActive      *bool
}

// IncidentTableResult is one page of table rows plus cursor-enriched
// pagination.
type IncidentTableResult struct {
	Rows       []models.IncidentListItem `json:"rows"`
	Pagination models.TablePagination    `json:"pagination"`
}

// TableDataService adapts typed table params onto the incident query
// service. It performs no validation of its own: every correctness rule
// lives in IncidentService.BuildListOptions.
type TableDataService struct {
	incidents IncidentService
	logger    *logrus.Logger
}

func NewTableDataService(incidents IncidentService, logger *logrus.Logger) *TableDataService {
	return &TableDataService{
		incidents: incidents,
		logger:    logger,
	}
}

// joinList trims entries, drops empties and comma-joins the rest.
func joinList(values []string) string {
	var cleaned []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return strings.Join(cleaned, ",")
}

// BuildQuery translates typed params into the raw query shape the
// incident service normalizes.
func (s *TableDataService) BuildQuery(params IncidentTableParams) url.Values {
	query := url.Values{}

	if params.Page != nil {
		query.Set("page", strconv.Itoa(*params.Page))
	}
	if params.PageSize != nil {
		query.Set("pageSize", strconv.Itoa(*params.PageSize))
	}
	if params.SortBy != "" {
		query.Set("sortBy", string(params.SortBy))
	}
	if params.SortDirection != "" {
		query.Set("sortDirection", string(params.SortDirection))
	}

	if joined := joinList(params.TypeCodes); joined != "" {
		query.Set("typeCodes", joined)
	}
	if joined := joinList(params.SeverityCodes); joined != "" {
		query.Set("severityCodes", joined)
	}
	if joined := joinList(params.StatusCodes); joined != "" {
		query.Set("statusCodes", joined)
	}

	if startDate := strings.TrimSpace(params.StartDate); startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate := strings.TrimSpace(params.EndDate); endDate != "" {
		query.Set("endDate", endDate)
	}

	if params.IsActive != nil {
		query.Set("isActive", strconv.FormatBool(*params.IsActive))
	}

	return query
}

// BuildTablePagination derives the cursor helpers from raw page math.
func BuildTablePagination(meta models.PaginationMeta) models.TablePagination {
	remainder := meta.Total - meta.Page*meta.PageSize
	if remainder < 0 {
		remainder = 0
	}

	pagination := models.TablePagination{
		PaginationMeta: meta,
		Remainder:      remainder,
	}

	if meta.HasNext {
		next := meta.Page + 1
		pagination.NextPage = &next
	}
	if meta.HasPrevious {
		previous := meta.Page - 1
		if previous < 1 {
			previous = 1
		}
		pagination.PreviousPage = &previous
	}

	return pagination
}

// FetchTableData runs the full adapter pipeline: typed params → raw
// query → normalized options → service call → cursor enrichment.
func (s *TableDataService) FetchTableData(ctx context.Context, params IncidentTableParams) (*IncidentTableResult, error) {
	query := s.BuildQuery(params)

	opts, err := s.incidents.BuildListOptions(query)
	if err != nil {
		return nil, err
	}

	response, err := s.incidents.ListIncidents(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &IncidentTableResult{
		Rows:       response.Data,
		Pagination: BuildTablePagination(response.Pagination),
	}, nil
}
