package dialog

import (
	"context"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// FarmForm holds the raw inputs of the create-farm dialog.
type FarmForm struct {
	Name     string
	Location string
	Area     string
}

// NewCreateFarm builds the create-farm dialog.
func NewCreateFarm(api Mutator) *Dialog[FarmForm, *domain.Farm] {
	return New(Config[FarmForm, *domain.Farm]{
		Name:     NameCreateFarm,
		Fallback: "Failed to create farm",
		Submit: func(ctx context.Context, f FarmForm) (*domain.Farm, error) {
			var fe fieldErrors
			in := domain.FarmCreate{
				Name:     fe.required("name", f.Name),
				Location: fe.required("location", f.Location),
				Area:     fe.number("area", f.Area),
			}
			if err := fe.err(); err != nil {
				return nil, err
			}
			return api.CreateFarm(ctx, in)
		},
	})
}

// PlotForm holds the raw inputs of the plot dialogs.
type PlotForm struct {
	Name        string
	Area        string
	Coordinates string
	Polygon     string
}

// NewCreatePlot builds the create-plot dialog for a farm. An empty polygon is
// not sent.
func NewCreatePlot(api Mutator, farmID string) *Dialog[PlotForm, *domain.Plot] {
	return New(Config[PlotForm, *domain.Plot]{
		Name:     NameCreatePlot,
		Fallback: "Failed to create plot",
		Submit: func(ctx context.Context, f PlotForm) (*domain.Plot, error) {
			var fe fieldErrors
			in := domain.PlotCreate{
				FarmID:      farmID,
				Name:        fe.required("name", f.Name),
				Area:        fe.number("area", f.Area),
				Coordinates: fe.required("coordinates", f.Coordinates),
			}
			if err := fe.err(); err != nil {
				return nil, err
			}
			if f.Polygon != "" {
				poly := f.Polygon
				in.Polygon = &poly
			}
			return api.CreatePlot(ctx, in)
		},
	})
}

// NewEditPlot builds the edit-plot dialog. current returns the plot as the
// view holds it now; the form is seeded from it on every Open.
func NewEditPlot(api Mutator, current func() *domain.Plot) *Dialog[PlotForm, *domain.Plot] {
	return New(Config[PlotForm, *domain.Plot]{
		Name:           NameEditPlot,
		Fallback:       "Failed to update plot",
		CloseOnSuccess: true,
		Seed: func() PlotForm {
			p := current()
			if p == nil {
				return PlotForm{}
			}
			return PlotForm{
				Name:        p.Name,
				Area:        formatNumber(p.Area),
				Coordinates: p.Coordinates,
				Polygon:     p.Polygon,
			}
		},
		Submit: func(ctx context.Context, f PlotForm) (*domain.Plot, error) {
			p := current()
			if p == nil {
				return nil, domain.ErrNotFound
			}
			var fe fieldErrors
			name := fe.required("name", f.Name)
			area := fe.number("area", f.Area)
			coords := fe.required("coordinates", f.Coordinates)
			if err := fe.err(); err != nil {
				return nil, err
			}
			poly := f.Polygon
			return api.UpdatePlot(ctx, p.ID, domain.PlotUpdate{
				Name:        &name,
				Area:        &area,
				Coordinates: &coords,
				Polygon:     &poly,
			})
		},
	})
}

// RowForm holds the raw inputs of the row dialogs.
type RowForm struct {
	Name   string
	Length string
	Width  string
}

// NewCreateRow builds the create-row dialog for a plot.
func NewCreateRow(api Mutator, plotID string) *Dialog[RowForm, *domain.Row] {
	return New(Config[RowForm, *domain.Row]{
		Name:     NameCreateRow,
		Fallback: "Failed to create row",
		Submit: func(ctx context.Context, f RowForm) (*domain.Row, error) {
			var fe fieldErrors
			in := domain.RowCreate{
				PlotID: plotID,
				Name:   fe.required("name", f.Name),
				Length: fe.number("length", f.Length),
				Width:  fe.number("width", f.Width),
			}
			if err := fe.err(); err != nil {
				return nil, err
			}
			return api.CreateRow(ctx, in)
		},
	})
}

// NewEditRow builds the edit-row dialog, seeded from current on every Open.
func NewEditRow(api Mutator, current func() *domain.Row) *Dialog[RowForm, *domain.Row] {
	return New(Config[RowForm, *domain.Row]{
		Name:           NameEditRow,
		Fallback:       "Failed to update row",
		CloseOnSuccess: true,
		Seed: func() RowForm {
			r := current()
			if r == nil {
				return RowForm{}
			}
			return RowForm{Name: r.Name, Length: formatNumber(r.Length), Width: formatNumber(r.Width)}
		},
		Submit: func(ctx context.Context, f RowForm) (*domain.Row, error) {
			r := current()
			if r == nil {
				return nil, domain.ErrNotFound
			}
			var fe fieldErrors
			name := fe.required("name", f.Name)
			length := fe.number("length", f.Length)
			width := fe.number("width", f.Width)
			if err := fe.err(); err != nil {
				return nil, err
			}
			return api.UpdateRow(ctx, r.ID, domain.RowUpdate{Name: &name, Length: &length, Width: &width})
		},
	})
}
