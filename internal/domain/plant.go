package domain

import "time"

// Batch creation bounds, inclusive.
const (
	MinBatchPlants = 1
	MaxBatchPlants = 100
)

// Plant is the leaf of the hierarchy. Species names are denormalized copies
// of the referenced Species.
type Plant struct {
	ID                    string
	Identifier            string
	Status                PlantStatus
	Position              int
	SpeciesID             string
	SpeciesCommonName     string
	SpeciesScientificName string
	RowID                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Species is a global catalog entry referenced by plants.
type Species struct {
	ID             string
	CommonName     string
	ScientificName string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PlantCreate holds the fields sent when creating a single plant.
type PlantCreate struct {
	RowID     string
	SpeciesID string
	Position  int
	Status    PlantStatus
}

// PlantBatchCreate requests Count plants of one species in a row.
type PlantBatchCreate struct {
	RowID     string
	SpeciesID string
	Count     int
}

// PlantUpdate is a partial update; nil fields are left untouched.
type PlantUpdate struct {
	Status   *PlantStatus
	Position *int
}
