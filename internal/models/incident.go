package models

import "time"

// LookupValue is a coded reference entity (type/severity/status/source/weather).
type LookupValue struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Severity extends a lookup with priority and display color.
type Severity struct {
	LookupValue
	Priority int    `json:"priority"`
	ColorHex string `json:"colorHex"`
}

// Status extends a lookup with a terminal flag.
type Status struct {
	LookupValue
	IsTerminal bool `json:"isTerminal"`
}

// StationRef is the primary-station association on an incident.
type StationRef struct {
	StationCode string `json:"stationCode"`
	Name        string `json:"name"`
}

// IncidentListItem is a single incident row as served by the list endpoint.
type IncidentListItem struct {
	IncidentNumber        string       `json:"incidentNumber"`
	ExternalReference     *string      `json:"externalReference"`
	Title                 string       `json:"title"`
	OccurrenceAt          time.Time    `json:"occurrenceAt"`
	ReportedAt            time.Time    `json:"reportedAt"`
	DispatchAt            *time.Time   `json:"dispatchAt"`
	ArrivalAt             *time.Time   `json:"arrivalAt"`
	ResolvedAt            *time.Time   `json:"resolvedAt"`
	IsActive              bool         `json:"isActive"`
	CasualtyCount         int          `json:"casualtyCount"`
	ResponderInjuries     int          `json:"responderInjuries"`
	EstimatedDamageAmount *string      `json:"estimatedDamageAmount"`
	Location              PointFeature `json:"location"`
	LocationGeohash       *string      `json:"locationGeohash,omitempty"`
	Type                  LookupValue  `json:"type"`
	Severity              Severity     `json:"severity"`
	Status                Status       `json:"status"`
	Source                *LookupValue `json:"source"`
	Weather               *LookupValue `json:"weather"`
	PrimaryStation        *StationRef  `json:"primaryStation"`
}

// IncidentUnit is a responding unit assignment on an incident.
type IncidentUnit struct {
	StationCode    string     `json:"stationCode"`
	StationName    string     `json:"stationName"`
	AssignmentRole *string    `json:"assignmentRole"`
	DispatchedAt   *time.Time `json:"dispatchedAt"`
	ClearedAt      *time.Time `json:"clearedAt"`
}

// IncidentAsset is a piece of equipment committed to an incident.
type IncidentAsset struct {
	AssetIdentifier string  `json:"assetIdentifier"`
	AssetType       string  `json:"assetType"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

// IncidentNote is a free-text annotation on an incident.
type IncidentNote struct {
	Author    string    `json:"author"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// IncidentDetail extends the list item with narrative, metadata and
// the child collections served by the detail endpoint.
type IncidentDetail struct {
	IncidentListItem
	Narrative *string         `json:"narrative"`
	Metadata  map[string]any  `json:"metadata"`
	Units     []IncidentUnit  `json:"units"`
	Assets    []IncidentAsset `json:"assets"`
	Notes     []IncidentNote  `json:"notes"`
}
