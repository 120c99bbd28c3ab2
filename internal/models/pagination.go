package models

// SortField enumerates the incident list sort keys.
type SortField string

const (
	SortByReportedAt       SortField = "reportedAt"
	SortByOccurrenceAt     SortField = "occurrenceAt"
	SortBySeverityPriority SortField = "severityPriority"
)

// SortDirection is the sort order of the incident list.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PaginationMeta describes one page of a clamped result window.
// Total is always clamped to the system-wide result ceiling before
// it reaches this struct.
type PaginationMeta struct {
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
	Total         int           `json:"total"`
	TotalPages    int           `json:"totalPages"`
	HasNext       bool          `json:"hasNext"`
	HasPrevious   bool          `json:"hasPrevious"`
	SortBy        SortField     `json:"sortBy"`
	SortDirection SortDirection `json:"sortDirection"`
}

// TablePagination is PaginationMeta enriched with the cursor helpers
// consumed by table pagination controls.
type TablePagination struct {
	PaginationMeta
	NextPage     *int `json:"nextPage"`
	PreviousPage *int `json:"previousPage"`
	Remainder    int  `json:"remainder"`
}
