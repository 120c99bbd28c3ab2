package cluster

import (
	"sync"

	"github.com/firewatch/incident-map/internal/models"
	"github.com/sirupsen/logrus"
)

// Viewport is the visible map region and zoom used to compute markers.
type Viewport struct {
	West  float64
	South float64
	East  float64
	North float64
	Zoom  int
}

// Marker is a rendered map marker: a cluster bubble or a single
// incident pin.
type Marker struct {
	// ClusterID is non-zero for cluster markers.
	ClusterID int
	// Count is the number of incidents the marker represents.
	Count int
	Lng   float64
	Lat   float64
	// Incident is set for single-incident markers only.
	Incident *models.IncidentListItem
}

// Layer owns a clustering index over the current incident set and
// derives the markers for the current viewport. Incidents without a
// usable point location are excluded from clustering; every incident
// with one lands in exactly one marker.
type Layer struct {
	logger *logrus.Logger

	mu        sync.Mutex
	index     *Index
	incidents []models.IncidentListItem
	viewport  Viewport
	markers   []Marker

	// maxMapZoom caps cluster expansion so a zoom request never
	// exceeds what the map can display.
	maxMapZoom int

	observers observersList
}

// observersList mirrors the subscription mechanics of the client
// stores without importing them.
type observersList struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func (o *observersList) subscribe(fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.subs == nil {
		o.subs = make(map[int]func())
	}
	id := o.next
	o.next++
	o.subs[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

func (o *observersList) notify() {
	o.mu.Lock()
	fns := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func NewLayer(logger *logrus.Logger, maxMapZoom int) *Layer {
	if maxMapZoom <= 0 {
		maxMapZoom = DefaultOptions().MaxZoom
	}
	return &Layer{
		logger:     logger,
		index:      NewIndex(DefaultOptions()),
		viewport:   Viewport{West: -180, South: -85, East: 180, North: 85, Zoom: 0},
		maxMapZoom: maxMapZoom,
	}
}

// Subscribe registers a callback invoked when the marker set changes.
func (l *Layer) Subscribe(fn func()) func() {
	return l.observers.subscribe(fn)
}

// SetIncidents replaces the incident set and rebuilds the index.
func (l *Layer) SetIncidents(incidents []models.IncidentListItem) {
	l.mu.Lock()

	kept := make([]models.IncidentListItem, 0, len(incidents))
	points := make([]Point, 0, len(incidents))
	skipped := 0
	for _, incident := range incidents {
		lng, lat, ok := incident.Location.LngLat()
		if !ok {
			skipped++
			continue
		}
		kept = append(kept, incident)
		points = append(points, Point{Lng: lng, Lat: lat})
	}

	if skipped > 0 {
		l.logger.WithField("skipped", skipped).Debug("Incidents without a usable location excluded from clustering")
	}

	l.incidents = kept
	l.index.Load(points)
	l.recomputeLocked()
	l.mu.Unlock()
	l.observers.notify()
}

// SetViewport updates the visible region and recomputes markers
// without rebuilding the index.
func (l *Layer) SetViewport(viewport Viewport) {
	l.mu.Lock()
	l.viewport = viewport
	l.recomputeLocked()
	l.mu.Unlock()
	l.observers.notify()
}

// Markers returns the current marker set.
func (l *Layer) Markers() []Marker {
	l.mu.Lock()
	defer l.mu.Unlock()
	markers := make([]Marker, len(l.markers))
	copy(markers, l.markers)
	return markers
}

// ResolveClusterZoom returns the zoom to move the map to when a
// cluster marker is activated, clamped to the map's max zoom.
func (l *Layer) ResolveClusterZoom(clusterID int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	zoom := l.index.GetClusterExpansionZoom(clusterID)
	if zoom > l.maxMapZoom {
		zoom = l.maxMapZoom
	}
	return zoom
}

func (l *Layer) recomputeLocked() {
	bbox := [4]float64{l.viewport.West, l.viewport.South, l.viewport.East, l.viewport.North}
	features := l.index.GetClusters(bbox, l.viewport.Zoom)

	markers := make([]Marker, 0, len(features))
	for _, f := range features {
		marker := Marker{
			ClusterID: f.ClusterID,
			Count:     f.Count,
			Lng:       f.Lng,
			Lat:       f.Lat,
		}
		if !f.IsCluster() && f.PointIndex >= 0 && f.PointIndex < len(l.incidents) {
			marker.Incident = &l.incidents[f.PointIndex]
		}
		markers = append(markers, marker)
	}
	l.markers = markers
}
