package client

import (
	"context"
	"sync"
	"time"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// bulkPageSize is the fixed page size used while aggregating.
	bulkPageSize = 100

	// RenderCap is the hard ceiling on incidents materialized for map
	// rendering, independent of the page-level size limit.
	RenderCap = 5000
)

// incidentLister is the slice of Client the bulk fetcher needs.
type incidentLister interface {
	FetchIncidents(ctx context.Context, page, pageSize int) (*IncidentListResponse, error)
}

// BulkResult is one completed aggregation run.
type BulkResult struct {
	Incidents []models.IncidentListItem
	// TotalCount is the server-declared true total, pre-cap.
	TotalCount int
	// RenderedCount is the number of records actually kept, post-cap.
	RenderedCount int
	// Remainder is max(TotalCount-RenderedCount, 0).
	Remainder   int
	LastUpdated time.Time
}

// BulkFetcher accumulates the incident list page by page for map
// rendering. A new run supersedes and cancels any in-flight one;
// superseded runs never write state.
type BulkFetcher struct {
	api    incidentLister
	logger *logrus.Logger

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	result  *BulkResult
	loadErr error
	loading bool

	observers observers
}

func NewBulkFetcher(api incidentLister, logger *logrus.Logger) *BulkFetcher {
	return &BulkFetcher{
		api:    api,
		logger: logger,
	}
}

// Subscribe registers a callback invoked whenever the fetcher's state
// changes. It returns the unsubscribe function.
func (f *BulkFetcher) Subscribe(fn func()) func() {
	return f.observers.subscribe(fn)
}

// Snapshot returns the current aggregation state.
func (f *BulkFetcher) Snapshot() (result *BulkResult, loading bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.loading, f.loadErr
}

// Refresh starts a new aggregation from page 1, cancelling any run
// still in flight.
func (f *BulkFetcher) Refresh(ctx context.Context) {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.seq++
	seq := f.seq
	f.loading = true
	f.loadErr = nil
	f.mu.Unlock()
	f.observers.notify()

	go func() {
		defer cancel()
		result, err := f.fetchAll(runCtx)

		f.mu.Lock()
		// A newer run owns the state now; drop this result on the floor.
		if seq != f.seq || runCtx.Err() != nil {
			f.mu.Unlock()
			return
		}
		f.loading = false
		f.cancel = nil
		if err != nil {
			f.result = nil
			f.loadErr = err
		} else {
			f.result = result
			f.loadErr = nil
		}
		f.mu.Unlock()
		f.observers.notify()
	}()
}

// FetchAll aggregates pages synchronously, honoring ctx cancellation.
// It stops when the render cap is reached, the server reports no next
// page, or a page comes back empty. On failure the partial accumulation
// is discarded.
func (f *BulkFetcher) FetchAll(ctx context.Context) (*BulkResult, error) {
	return f.fetchAll(ctx)
}

func (f *BulkFetcher) fetchAll(ctx context.Context) (*BulkResult, error) {
	log := f.logger.WithField("component", "bulk_fetcher")

	incidents := make([]models.IncidentListItem, 0, bulkPageSize)
	totalCount := 0

	for page := 1; ; page++ {
		response, err := f.api.FetchIncidents(ctx, page, bulkPageSize)
		if err != nil {
			log.WithError(err).WithField("page", page).Warn("Bulk incident fetch failed")
			return nil, err
		}

		totalCount = response.Pagination.Total
		incidents = append(incidents, response.Data...)

		if len(incidents) >= RenderCap {
			incidents = incidents[:RenderCap]
			break
		}
		if !response.Pagination.HasNext || len(response.Data) == 0 {
			break
		}
	}

	rendered := len(incidents)
	remainder := totalCount - rendered
	if remainder < 0 {
		remainder = 0
	}

	log.WithFields(logrus.Fields{
		"total_count":    totalCount,
		"rendered_count": rendered,
		"remainder":      remainder,
	}).Debug("Bulk incident aggregation completed")

	return &BulkResult{
		Incidents:     incidents,
		TotalCount:    totalCount,
		RenderedCount: rendered,
		Remainder:     remainder,
		LastUpdated:   time.Now(),
	}, nil
}
