package view

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
)

// Messages shown by the plant detail form.
const (
	PlantSavedMessage  = "Plant updated successfully"
	PlantFailedMessage = "Failed to update plant"
)

// PlantView shows one plant, an inline status/position form and the plant's
// action log.
type PlantView struct {
	lifecycle
	api      API
	clock    clockwork.Clock
	flashFor time.Duration

	plantID         string
	farm            *domain.Farm
	plot            *domain.Plot
	row             *domain.Row
	plant           *domain.Plant
	actions         []domain.Action
	possibleActions []domain.PossibleAction

	// form state, guarded by formMu
	formMu   sync.Mutex
	status   string
	position string
	saving   bool
	err      string
	flash    string
	flashGen int
	flashT   clockwork.Timer

	AddAction *dialog.Dialog[dialog.ActionForm, *domain.Action]
}

// NewPlantView creates an unloaded view of plant. The form is seeded from
// plant here and never re-synced with it.
func NewPlantView(deps Deps, farm *domain.Farm, plot *domain.Plot, row *domain.Row, plant *domain.Plant) *PlantView {
	deps = deps.withDefaults()
	v := &PlantView{
		lifecycle:       newLifecycle(deps, "plant"),
		api:             deps.API,
		clock:           deps.Clock,
		flashFor:        deps.FlashDuration,
		plantID:         plant.ID,
		farm:            farm,
		plot:            plot,
		row:             row,
		plant:           plant,
		actions:         []domain.Action{},
		possibleActions: []domain.PossibleAction{},
		status:          plant.Status.String(),
		position:        strconv.Itoa(plant.Position),
	}

	v.AddAction = dialog.NewAddAction(deps.API,
		domain.ActionTarget{Type: domain.TargetPlant, ID: plant.ID},
		v.PossibleActions)
	v.AddAction.OnSuccess(func(a *domain.Action) {
		v.mu.Lock()
		if v.alive() {
			v.actions = append(v.actions, *a)
		}
		v.mu.Unlock()
		v.AddAction.Close()
	})
	return v
}

func (v *PlantView) Load(ctx context.Context) error {
	var (
		actions  []domain.Action
		possible []domain.PossibleAction
	)
	return v.load(ctx, []fetch{
		list("plant_actions", &actions, func(ctx context.Context) ([]domain.Action, error) {
			return v.api.ListPlantActions(ctx, v.plantID)
		}),
		list("possible_actions", &possible, v.api.ListPossibleActions),
	}, func() {
		v.actions = actions
		v.possibleActions = possible
	})
}

func (v *PlantView) Refresh(ctx context.Context) error { return v.Load(ctx) }

// Close unmounts the view and cancels a pending flash timer.
func (v *PlantView) Close() {
	v.lifecycle.Close()
	v.formMu.Lock()
	if v.flashT != nil {
		v.flashT.Stop()
		v.flashT = nil
	}
	v.formMu.Unlock()
}

// SetStatus updates the form-bound status. Ignored while saving.
func (v *PlantView) SetStatus(s string) bool {
	v.formMu.Lock()
	defer v.formMu.Unlock()
	if v.saving {
		return false
	}
	v.status = s
	return true
}

// SetPosition updates the form-bound position text. Ignored while saving.
func (v *PlantView) SetPosition(p string) bool {
	v.formMu.Lock()
	defer v.formMu.Unlock()
	if v.saving {
		return false
	}
	v.position = p
	return true
}

// StatusInput returns the form-bound status.
func (v *PlantView) StatusInput() string {
	v.formMu.Lock()
	defer v.formMu.Unlock()
	return v.status
}

// PositionInput returns the form-bound position text.
func (v *PlantView) PositionInput() string {
	v.formMu.Lock()
	defer v.formMu.Unlock()
	return v.position
}

// Saving reports whether an update is in flight.
func (v *PlantView) Saving() bool {
	v.formMu.Lock()
	defer v.formMu.Unlock()
	return v.saving
}

// Error returns the last save failure, or "".
func (v *PlantView) Error() string {
	v.formMu.Lock()
	defer v.formMu.Unlock()
	return v.err
}

// Flash returns the success message while it is visible, or "".
func (v *PlantView) Flash() string {
	v.formMu.Lock()
	defer v.formMu.Unlock()
	return v.flash
}

// Save sends the status and position as a partial update. On failure the
// error is kept and the form is left as typed.
func (v *PlantView) Save(ctx context.Context) (*domain.Plant, error) {
	if v.closed() {
		return nil, ErrClosed
	}

	v.formMu.Lock()
	if v.saving {
		v.formMu.Unlock()
		return nil, dialog.ErrBusy
	}
	v.err = ""
	v.clearFlashLocked()
	update, err := v.updateLocked()
	if err != nil {
		v.err = domain.UserMessage(err, PlantFailedMessage)
		v.formMu.Unlock()
		return nil, err
	}
	v.saving = true
	v.formMu.Unlock()

	ctx, done := v.scope(ctx)
	defer done()
	plant, err := v.api.UpdatePlant(ctx, v.plantID, update)

	v.formMu.Lock()
	defer v.formMu.Unlock()
	v.saving = false
	if err != nil {
		v.err = domain.UserMessage(err, PlantFailedMessage)
		return nil, err
	}
	if v.closed() {
		return plant, nil
	}

	v.mu.Lock()
	v.plant = plant
	v.mu.Unlock()
	v.showFlashLocked(PlantSavedMessage)
	return plant, nil
}

func (v *PlantView) updateLocked() (domain.PlantUpdate, error) {
	var errs []domain.FieldError

	status, err := domain.ParsePlantStatus(strings.TrimSpace(v.status))
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of HEALTHY, DISEASED, NEEDSATTENTION"})
	}
	position, err := strconv.Atoi(strings.TrimSpace(v.position))
	if err != nil || position < 0 || position > math.MaxInt32 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be a non-negative integer"})
	}
	if len(errs) > 0 {
		return domain.PlantUpdate{}, domain.NewValidationErrors(errs)
	}
	return domain.PlantUpdate{Status: &status, Position: &position}, nil
}

func (v *PlantView) showFlashLocked(msg string) {
	v.clearFlashLocked()
	v.flash = msg
	v.flashGen++
	gen := v.flashGen
	v.flashT = v.clock.AfterFunc(v.flashFor, func() {
		v.formMu.Lock()
		defer v.formMu.Unlock()
		if v.flashGen == gen {
			v.flash = ""
			v.flashT = nil
		}
	})
}

func (v *PlantView) clearFlashLocked() {
	if v.flashT != nil {
		v.flashT.Stop()
		v.flashT = nil
	}
	v.flash = ""
	v.flashGen++
}

// Farm returns the ancestor farm.
func (v *PlantView) Farm() domain.Farm { return *v.farm }

// Plot returns the ancestor plot.
func (v *PlantView) Plot() domain.Plot { return *v.plot }

// Row returns the ancestor row.
func (v *PlantView) Row() domain.Row { return *v.row }

// Plant returns the last saved plant record.
func (v *PlantView) Plant() domain.Plant {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return *v.plant
}

// Actions returns a copy of the plant's action log.
func (v *PlantView) Actions() []domain.Action {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.actions)
}

// PossibleActions returns a copy of the action catalog.
func (v *PlantView) PossibleActions() []domain.PossibleAction {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.possibleActions)
}
