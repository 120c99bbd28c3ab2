package models

import "math"

// PointGeometry is a GeoJSON Point geometry. Coordinates are [lng, lat].
type PointGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// PointFeature is a GeoJSON Feature wrapping a point geometry.
type PointFeature struct {
	Type       string         `json:"type"`
	Geometry   *PointGeometry `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// MultiPolygonGeometry is a GeoJSON MultiPolygon geometry.
type MultiPolygonGeometry struct {
	Type        string          `json:"type"`
	Coordinates [][][][]float64 `json:"coordinates"`
}

// MultiPolygonFeature is a GeoJSON Feature wrapping a multi-polygon geometry.
type MultiPolygonFeature struct {
	Type       string                `json:"type"`
	Geometry   *MultiPolygonGeometry `json:"geometry"`
	Properties map[string]any        `json:"properties"`
}

// NewPointFeature wraps a coordinate pair in the wire feature encoding.
func NewPointFeature(lng, lat float64) PointFeature {
	return PointFeature{
		Type: "Feature",
		Geometry: &PointGeometry{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
		Properties: map[string]any{},
	}
}

// LngLat returns the feature's coordinate pair. ok is false when the
// geometry is missing, incomplete or non-numeric.
func (f PointFeature) LngLat() (lng, lat float64, ok bool) {
	if f.Geometry == nil || len(f.Geometry.Coordinates) < 2 {
		return 0, 0, false
	}
	lng = f.Geometry.Coordinates[0]
	lat = f.Geometry.Coordinates[1]
	if math.IsNaN(lng) || math.IsNaN(lat) || math.IsInf(lng, 0) || math.IsInf(lat, 0) {
		return 0, 0, false
	}
	return lng, lat, true
}
