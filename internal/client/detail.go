package client

import (
	"context"
	"strings"
	"sync"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/sirupsen/logrus"
)

// detailFetcher is the slice of Client the detail store needs.
type detailFetcher interface {
	FetchIncidentDetail(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error)
}

// DetailStore memoizes incident detail per incident number and tracks
// the currently selected incident for the detail modal. At most one
// detail fetch is in flight at a time; starting a new one supersedes
// the previous, and superseded fetches never mutate state. Each fetch
// carries a sequence number checked against the store's current one
// before any result is applied.
type DetailStore struct {
	api    detailFetcher
	logger *logrus.Logger

	mu       sync.Mutex
	cache    map[string]*models.IncidentDetail
	selected *models.IncidentListItem
	isOpen   bool
	pending  string
	errMsg   string
	seq      uint64
	cancel   context.CancelFunc

	observers observers
}

func NewDetailStore(api detailFetcher, logger *logrus.Logger) *DetailStore {
	return &DetailStore{
		api:    api,
		logger: logger,
		cache:  make(map[string]*models.IncidentDetail),
	}
}

// Subscribe registers a callback invoked on every state change.
func (s *DetailStore) Subscribe(fn func()) func() {
	return s.observers.subscribe(fn)
}

// Selected returns the currently selected incident and open flag.
func (s *DetailStore) Selected() (*models.IncidentListItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.isOpen
}

// Detail returns the memoized detail for an incident number, if any.
func (s *DetailStore) Detail(incidentNumber string) (*models.IncidentDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	detail, ok := s.cache[incidentNumber]
	return detail, ok
}

// Pending returns the incident number with a fetch in flight, or "".
func (s *DetailStore) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Err returns the surfaced fetch error message, or "".
func (s *DetailStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// OpenIncident selects an incident and fetches its detail unless it is
// already cached or already being fetched.
func (s *DetailStore) OpenIncident(ctx context.Context, item models.IncidentListItem) {
	s.mu.Lock()
	selected := item
	s.selected = &selected
	s.isOpen = true

	if _, cached := s.cache[item.IncidentNumber]; cached {
		s.errMsg = ""
		s.mu.Unlock()
		s.observers.notify()
		return
	}
	if s.pending == item.IncidentNumber {
		// Same fetch already in flight; opening again is a no-op.
		s.mu.Unlock()
		s.observers.notify()
		return
	}

	s.startFetchLocked(ctx, item.IncidentNumber)
}

// RefreshIncidentDetail forces a re-fetch for the given incident
// number, or for the currently selected incident when empty.
func (s *DetailStore) RefreshIncidentDetail(ctx context.Context, incidentNumber string) {
	s.mu.Lock()
	target := strings.TrimSpace(incidentNumber)
	if target == "" && s.selected != nil {
		target = s.selected.IncidentNumber
	}
	if target == "" {
		s.mu.Unlock()
		return
	}

	s.startFetchLocked(ctx, target)
}

// CloseIncident clears the selection and cancels any in-flight fetch.
func (s *DetailStore) CloseIncident() {
	s.mu.Lock()
	s.selected = nil
	s.isOpen = false
	s.pending = ""
	s.errMsg = ""
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.observers.notify()
}

// startFetchLocked begins a fetch for incidentNumber, superseding any
// in-flight one. Called with s.mu held; releases it and notifies.
func (s *DetailStore) startFetchLocked(ctx context.Context, incidentNumber string) {
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	seq := s.seq
	s.pending = incidentNumber
	s.errMsg = ""
	s.mu.Unlock()
	s.observers.notify()

	go func() {
		defer cancel()
		detail, err := s.api.FetchIncidentDetail(runCtx, incidentNumber)

		s.mu.Lock()
		// Only the latest fetch may touch state.
		if seq != s.seq || runCtx.Err() != nil {
			s.mu.Unlock()
			return
		}
		s.cancel = nil
		if err != nil {
			s.logger.WithError(err).WithField("incident_number", incidentNumber).Warn("Incident detail fetch failed")
			s.pending = ""
			s.errMsg = err.Error()
		} else {
			s.cache[incidentNumber] = detail
			if s.pending == incidentNumber {
				s.pending = ""
				s.errMsg = ""
			}
		}
		s.mu.Unlock()
		s.observers.notify()
	}()
}
