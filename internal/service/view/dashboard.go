package view

import (
	"context"
	"slices"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
)

// Dashboard lists the user's farms.
type Dashboard struct {
	lifecycle
	api API

	farms []domain.Farm

	CreateFarm *dialog.Dialog[dialog.FarmForm, *domain.Farm]
}

// NewDashboard creates an unloaded dashboard.
func NewDashboard(deps Deps) *Dashboard {
	deps = deps.withDefaults()
	v := &Dashboard{
		lifecycle:  newLifecycle(deps, "dashboard"),
		api:        deps.API,
		farms:      []domain.Farm{},
		CreateFarm: dialog.NewCreateFarm(deps.API),
	}
	v.CreateFarm.OnSuccess(func(f *domain.Farm) {
		v.mu.Lock()
		if v.alive() {
			v.farms = append(v.farms, *f)
		}
		v.mu.Unlock()
		v.CreateFarm.Close()
	})
	return v
}

func (v *Dashboard) Load(ctx context.Context) error {
	var farms []domain.Farm
	return v.load(ctx, []fetch{
		list("farms", &farms, v.api.ListFarms),
	}, func() {
		v.farms = farms
	})
}

func (v *Dashboard) Refresh(ctx context.Context) error { return v.Load(ctx) }

// Farms returns a copy of the farm list.
func (v *Dashboard) Farms() []domain.Farm {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.farms)
}
