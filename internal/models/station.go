package models

// StationAddress is the postal address block of a station.
type StationAddress struct {
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city"`
	Region     *string `json:"region"`
	PostalCode *string `json:"postalCode"`
}

// ResponseZone is the coverage polygon a station is responsible for.
type ResponseZone struct {
	ZoneCode string              `json:"zoneCode"`
	Name     string              `json:"name"`
	Boundary MultiPolygonFeature `json:"boundary"`
}

// StationSummary is a fire station as served by the stations endpoint.
type StationSummary struct {
	StationCode          string          `json:"stationCode"`
	Name                 string          `json:"name"`
	Battalion            *string         `json:"battalion"`
	Phone                *string         `json:"phone"`
	Address              *StationAddress `json:"address,omitempty"`
	IsActive             bool            `json:"isActive"`
	CommissionedOn       *string         `json:"commissionedOn"`
	DecommissionedOn     *string         `json:"decommissionedOn"`
	CoverageRadiusMeters *float64        `json:"coverageRadiusMeters"`
	Location             PointFeature    `json:"location"`
	ResponseZone         *ResponseZone   `json:"responseZone"`
}
