package dialog

import (
	"context"
	"math"
	"strings"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// PlantForm holds the raw inputs of the create-plant dialog.
type PlantForm struct {
	SpeciesID string
	Position  string
	Status    string
}

// NewCreatePlant builds the create-plant dialog for a row. The status starts,
// and resets after each success, at HEALTHY. species returns the catalog the
// view loaded; when it is non-empty the chosen species must be in it.
func NewCreatePlant(api Mutator, rowID string, species func() []domain.Species) *Dialog[PlantForm, *domain.Plant] {
	return New(Config[PlantForm, *domain.Plant]{
		Name:     NameCreatePlant,
		Fallback: "Failed to create plant",
		Blank:    func() PlantForm { return PlantForm{Status: domain.PlantStatusHealthy.String()} },
		Submit: func(ctx context.Context, f PlantForm) (*domain.Plant, error) {
			var fe fieldErrors
			speciesID := fe.species(f.SpeciesID, species)
			position := fe.integer("position", f.Position, 0, math.MaxInt32)
			status, err := domain.ParsePlantStatus(strings.TrimSpace(f.Status))
			if err != nil {
				fe.add("status", "must be HEALTHY, DISEASED or NEEDSATTENTION")
			}
			if err := fe.err(); err != nil {
				return nil, err
			}
			return api.CreatePlant(ctx, domain.PlantCreate{
				RowID:     rowID,
				SpeciesID: speciesID,
				Position:  position,
				Status:    status,
			})
		},
	})
}

// BatchForm holds the raw inputs of the batch-create dialog.
type BatchForm struct {
	SpeciesID string
	Count     string
}

// NewBatchCreatePlants builds the batch-create dialog for a row. Its form
// starts and resets empty. The count is re-checked against
// [MinBatchPlants, MaxBatchPlants] on every submit.
func NewBatchCreatePlants(api Mutator, rowID string, species func() []domain.Species) *Dialog[BatchForm, []domain.Plant] {
	return New(Config[BatchForm, []domain.Plant]{
		Name:     NameCreatePlants,
		Fallback: "Failed to create plants",
		Submit: func(ctx context.Context, f BatchForm) ([]domain.Plant, error) {
			var fe fieldErrors
			in := domain.PlantBatchCreate{
				RowID:     rowID,
				SpeciesID: fe.species(f.SpeciesID, species),
				Count:     fe.integer("count", f.Count, domain.MinBatchPlants, domain.MaxBatchPlants),
			}
			if err := fe.err(); err != nil {
				return nil, err
			}
			return api.BatchCreatePlants(ctx, in)
		},
	})
}

func (fe *fieldErrors) species(raw string, catalog func() []domain.Species) string {
	id := fe.required("species_id", raw)
	if id == "" || catalog == nil {
		return id
	}
	list := catalog()
	if len(list) == 0 {
		return id
	}
	for _, s := range list {
		if s.ID == id {
			return id
		}
	}
	fe.add("species_id", "unknown species")
	return id
}
