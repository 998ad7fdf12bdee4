// Package view holds the in-memory state of each dashboard screen. Views
// read through to the API on load and splice mutation results into their
// lists without re-fetching.
package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
)

// API defines every remote call a view or its dialogs can make.
type API interface {
	dialog.Mutator

	ListFarms(ctx context.Context) ([]domain.Farm, error)
	ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error)
	ListRows(ctx context.Context, plotID string) ([]domain.Row, error)
	ListPlants(ctx context.Context, rowID string) ([]domain.Plant, error)
	ListPlotActions(ctx context.Context, plotID string) ([]domain.Action, error)
	ListRowActions(ctx context.Context, rowID string) ([]domain.Action, error)
	ListPlantActions(ctx context.Context, plantID string) ([]domain.Action, error)
	ListPossibleActions(ctx context.Context) ([]domain.PossibleAction, error)
	ListSpecies(ctx context.Context) ([]domain.Species, error)
	UpdatePlant(ctx context.Context, id string, in domain.PlantUpdate) (*domain.Plant, error)
}

// Deps are shared by every view.
type Deps struct {
	API   API
	Log   *slog.Logger
	Clock clockwork.Clock
	// FlashDuration is how long the plant page shows its success message.
	FlashDuration time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.FlashDuration <= 0 {
		d.FlashDuration = 3 * time.Second
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return d
}
