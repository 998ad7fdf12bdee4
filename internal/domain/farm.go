package domain

import "time"

// Farm is the root of the containment hierarchy. Area is in hectares.
type Farm struct {
	ID        string
	Name      string
	Location  string
	Area      float64
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Plot belongs to a Farm. Area is in square meters; Coordinates and Polygon
// are free text (Polygon may hold GeoJSON).
type Plot struct {
	ID          string
	Name        string
	Area        float64
	Coordinates string
	Polygon     string
	FarmID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Row belongs to a Plot. Length and Width are in meters.
type Row struct {
	ID        string
	Name      string
	Length    float64
	Width     float64
	PlotID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FarmCreate holds the fields sent when creating a farm.
type FarmCreate struct {
	Name     string
	Location string
	Area     float64
}

// PlotCreate holds the fields sent when creating a plot.
type PlotCreate struct {
	FarmID      string
	Name        string
	Area        float64
	Coordinates string
	Polygon     *string // nil = not sent
}

// PlotUpdate is a partial update; nil fields are left untouched.
type PlotUpdate struct {
	Name        *string
	Area        *float64
	Coordinates *string
	Polygon     *string // ptr("") clears the polygon
}

// IsEmpty reports whether the update carries no fields.
func (u PlotUpdate) IsEmpty() bool {
	return u.Name == nil && u.Area == nil && u.Coordinates == nil && u.Polygon == nil
}

// RowCreate holds the fields sent when creating a row.
type RowCreate struct {
	PlotID string
	Name   string
	Length float64
	Width  float64
}

// RowUpdate is a partial update; nil fields are left untouched.
type RowUpdate struct {
	Name   *string
	Length *float64
	Width  *float64
}

// IsEmpty reports whether the update carries no fields.
func (u RowUpdate) IsEmpty() bool {
	return u.Name == nil && u.Length == nil && u.Width == nil
}
