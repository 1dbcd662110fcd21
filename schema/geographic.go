package schema

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint returns a GeoJSON point. Coordinates are stored in [lng, lat] order.
func NewGeoPoint(longitude, latitude float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// Longitude returns the first coordinate of a point
func (g *GeoJSON) Longitude() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Latitude returns the second coordinate of a point
func (g *GeoJSON) Latitude() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// NearFilter narrows a query to documents within Radius meters of a point
type NearFilter struct {
	Location
	Radius int
}
