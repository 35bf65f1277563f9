package model

// Coordinate is an immutable geographic position.
// Latitude is in [-90, 90], longitude in [-180, 180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCoordinate is used whenever the client position is unavailable
// (Karachi, DHA Phase 6 — matches the bundled dataset).
var DefaultCoordinate = Coordinate{Latitude: 24.8015, Longitude: 67.0785}

// Valid reports whether the coordinate is inside the WGS84 range.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
