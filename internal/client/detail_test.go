package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDetailFetcher records detail fetches and can park them until released.
type fakeDetailFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
	block chan struct{}
}

func newFakeDetailFetcher() *fakeDetailFetcher {
	return &fakeDetailFetcher{calls: map[string]int{}}
}

func (f *fakeDetailFetcher) FetchIncidentDetail(ctx context.Context, incidentNumber string) (*models.IncidentDetail, error) {
	f.mu.Lock()
	f.calls[incidentNumber]++
	block := f.block
	err := f.err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	detail := &models.IncidentDetail{}
	detail.IncidentNumber = incidentNumber
	detail.Title = fmt.Sprintf("Incident %s", incidentNumber)
	return detail, nil
}

func (f *fakeDetailFetcher) callCount(incidentNumber string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[incidentNumber]
}

func waitForDetail(t *testing.T, store *DetailStore, incidentNumber string) *models.IncidentDetail {
	t.Helper()
	var detail *models.IncidentDetail
	require.Eventually(t, func() bool {
		d, ok := store.Detail(incidentNumber)
		detail = d
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	return detail
}

func TestOpenIncident_FetchesAndMemoizes(t *testing.T) {
	api := newFakeDetailFetcher()
	store := NewDetailStore(api, testLogger())
	item := models.IncidentListItem{IncidentNumber: "F-2024-000001"}

	store.OpenIncident(context.Background(), item)

	detail := waitForDetail(t, store, "F-2024-000001")
	assert.Equal(t, "Incident F-2024-000001", detail.Title)

	selected, isOpen := store.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "F-2024-000001", selected.IncidentNumber)
	assert.True(t, isOpen)
	assert.Empty(t, store.Pending())
	assert.Empty(t, store.Err())
	assert.Equal(t, 1, api.callCount("F-2024-000001"))
}

func TestOpenIncident_CachedOpenSkipsFetch(t *testing.T) {
	api := newFakeDetailFetcher()
	store := NewDetailStore(api, testLogger())
	item := models.IncidentListItem{IncidentNumber: "F-2024-000001"}

	store.OpenIncident(context.Background(), item)
	waitForDetail(t, store, "F-2024-000001")

	store.CloseIncident()
	store.OpenIncident(context.Background(), item)

	// Memoized detail is reused; no second round-trip.
	assert.Equal(t, 1, api.callCount("F-2024-000001"))
	_, isOpen := store.Selected()
	assert.True(t, isOpen)
}

func TestOpenIncident_DoubleOpenIsSingleFlight(t *testing.T) {
	api := newFakeDetailFetcher()
	block := make(chan struct{})
	api.block = block
	store := NewDetailStore(api, testLogger())
	item := models.IncidentListItem{IncidentNumber: "F-2024-000001"}

	store.OpenIncident(context.Background(), item)
	store.OpenIncident(context.Background(), item)
	close(block)

	waitForDetail(t, store, "F-2024-000001")
	assert.Equal(t, 1, api.callCount("F-2024-000001"))
}

func TestRefreshIncidentDetail_ForcesFetch(t *testing.T) {
	api := newFakeDetailFetcher()
	store := NewDetailStore(api, testLogger())
	item := models.IncidentListItem{IncidentNumber: "F-2024-000001"}

	store.OpenIncident(context.Background(), item)
	waitForDetail(t, store, "F-2024-000001")

	store.RefreshIncidentDetail(context.Background(), "F-2024-000001")

	require.Eventually(t, func() bool {
		return api.callCount("F-2024-000001") == 2 && store.Pending() == ""
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRefreshIncidentDetail_DefaultsToSelected(t *testing.T) {
	api := newFakeDetailFetcher()
	store := NewDetailStore(api, testLogger())
	item := models.IncidentListItem{IncidentNumber: "F-2024-000002"}

	store.OpenIncident(context.Background(), item)
	waitForDetail(t, store, "F-2024-000002")

	store.RefreshIncidentDetail(context.Background(), "  ")

	require.Eventually(t, func() bool {
		return api.callCount("F-2024-000002") == 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestOpenIncident_SupersededFetchNeverWrites(t *testing.T) {
	api := newFakeDetailFetcher()
	block := make(chan struct{})
	api.block = block
	store := NewDetailStore(api, testLogger())

	// First fetch parks; the second supersedes it.
	store.OpenIncident(context.Background(), models.IncidentListItem{IncidentNumber: "F-2024-000001"})

	api.mu.Lock()
	api.block = nil
	api.mu.Unlock()
	store.OpenIncident(context.Background(), models.IncidentListItem{IncidentNumber: "F-2024-000002"})
	close(block)

	waitForDetail(t, store, "F-2024-000002")

	// The parked fetch was cancelled and its result discarded.
	_, cached := store.Detail("F-2024-000001")
	assert.False(t, cached)
	assert.Empty(t, store.Err())
}

func TestOpenIncident_ErrorSurfaced(t *testing.T) {
	api := newFakeDetailFetcher()
	api.err = errors.New("detail fetch failed")
	store := NewDetailStore(api, testLogger())

	store.OpenIncident(context.Background(), models.IncidentListItem{IncidentNumber: "F-2024-000003"})

	require.Eventually(t, func() bool {
		return store.Err() != ""
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "detail fetch failed", store.Err())
	assert.Empty(t, store.Pending())

	_, cached := store.Detail("F-2024-000003")
	assert.False(t, cached)
}

func TestCloseIncident_ClearsStateAndCancelsFetch(t *testing.T) {
	api := newFakeDetailFetcher()
	block := make(chan struct{})
	api.block = block
	store := NewDetailStore(api, testLogger())

	store.OpenIncident(context.Background(), models.IncidentListItem{IncidentNumber: "F-2024-000004"})
	store.CloseIncident()
	close(block)

	selected, isOpen := store.Selected()
	assert.Nil(t, selected)
	assert.False(t, isOpen)
	assert.Empty(t, store.Pending())

	// The cancelled fetch never lands in the cache.
	time.Sleep(50 * time.Millisecond)
	_, cached := store.Detail("F-2024-000004")
	assert.False(t, cached)
}
