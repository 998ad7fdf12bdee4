// Package cli renders dashboard pages and entities for the command line.
package cli

import (
	"time"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/view"
)

// The *Out types are the json/yaml shape of CLI output.

type FarmOut struct {
	ID        string    `json:"id"                  yaml:"id"`
	Name      string    `json:"name"                yaml:"name"`
	Location  string    `json:"location"            yaml:"location"`
	Area      float64   `json:"area"                yaml:"area"`
	CreatedAt time.Time `json:"createdAt,omitzero"  yaml:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"  yaml:"updatedAt,omitempty"`
}

type PlotOut struct {
	ID          string    `json:"id"                 yaml:"id"`
	Name        string    `json:"name"               yaml:"name"`
	Area        float64   `json:"area"               yaml:"area"`
	Coordinates string    `json:"coordinates"        yaml:"coordinates"`
	Polygon     string    `json:"polygon,omitempty"  yaml:"polygon,omitempty"`
	FarmID      string    `json:"farmId"             yaml:"farmId"`
	CreatedAt   time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

type RowOut struct {
	ID        string    `json:"id"                 yaml:"id"`
	Name      string    `json:"name"               yaml:"name"`
	Length    float64   `json:"length"             yaml:"length"`
	Width     float64   `json:"width"              yaml:"width"`
	PlotID    string    `json:"plotId"             yaml:"plotId"`
	CreatedAt time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

type PlantOut struct {
	ID                    string    `json:"id"                              yaml:"id"`
	Identifier            string    `json:"identifier"                      yaml:"identifier"`
	Status                string    `json:"status"                          yaml:"status"`
	Position              int       `json:"position"                        yaml:"position"`
	SpeciesID             string    `json:"speciesId"                       yaml:"speciesId"`
	SpeciesCommonName     string    `json:"speciesCommonName,omitempty"     yaml:"speciesCommonName,omitempty"`
	SpeciesScientificName string    `json:"speciesScientificName,omitempty" yaml:"speciesScientificName,omitempty"`
	RowID                 string    `json:"rowId"                           yaml:"rowId"`
	CreatedAt             time.Time `json:"createdAt,omitzero"              yaml:"createdAt,omitempty"`
	UpdatedAt             time.Time `json:"updatedAt,omitzero"              yaml:"updatedAt,omitempty"`
}

type ActionOut struct {
	ID          string    `json:"id"                    yaml:"id"`
	Action      string    `json:"action"                yaml:"action"`
	ActionID    string    `json:"possibleActionId"      yaml:"possibleActionId"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	TargetType  string    `json:"targetType"            yaml:"targetType"`
	TargetID    string    `json:"targetId"              yaml:"targetId"`
	CreatedAt   time.Time `json:"createdAt,omitzero"    yaml:"createdAt,omitempty"`
}

type UserOut struct {
	ID    string `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// PageOut is one rendered screen. Only the fields of its kind are set.
type PageOut struct {
	Path   string     `json:"path"             yaml:"path"`
	Kind   string     `json:"kind"             yaml:"kind"`
	Farm   *FarmOut   `json:"farm,omitempty"   yaml:"farm,omitempty"`
	Plot   *PlotOut   `json:"plot,omitempty"   yaml:"plot,omitempty"`
	Row    *RowOut    `json:"row,omitempty"    yaml:"row,omitempty"`
	Plant  *PlantOut  `json:"plant,omitempty"  yaml:"plant,omitempty"`
	Farms  []FarmOut  `json:"farms,omitempty"  yaml:"farms,omitempty"`
	Plots  []PlotOut  `json:"plots,omitempty"  yaml:"plots,omitempty"`
	Rows   []RowOut   `json:"rows,omitempty"   yaml:"rows,omitempty"`
	Plants []PlantOut `json:"plants,omitempty" yaml:"plants,omitempty"`

	Actions []ActionOut `json:"actions,omitempty" yaml:"actions,omitempty"`
}

func farmOut(f domain.Farm) FarmOut {
	return FarmOut{ID: f.ID, Name: f.Name, Location: f.Location, Area: f.Area, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt}
}

func plotOut(p domain.Plot) PlotOut {
	return PlotOut{ID: p.ID, Name: p.Name, Area: p.Area, Coordinates: p.Coordinates, Polygon: p.Polygon,
		FarmID: p.FarmID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

func rowOut(r domain.Row) RowOut {
	return RowOut{ID: r.ID, Name: r.Name, Length: r.Length, Width: r.Width, PlotID: r.PlotID,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func plantOut(p domain.Plant) PlantOut {
	return PlantOut{
		ID: p.ID, Identifier: p.Identifier, Status: p.Status.String(), Position: p.Position,
		SpeciesID: p.SpeciesID, SpeciesCommonName: p.SpeciesCommonName, SpeciesScientificName: p.SpeciesScientificName,
		RowID: p.RowID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func actionOut(a domain.Action) ActionOut {
	name := a.PossibleActionName
	if name == "" {
		name = a.PossibleActionID
	}
	return ActionOut{ID: a.ID, Action: name, ActionID: a.PossibleActionID, Description: a.Description,
		TargetType: a.Target.Type.String(), TargetID: a.Target.ID, CreatedAt: a.CreatedAt}
}

func mapAll[T, O any](in []T, fn func(T) O) []O {
	out := make([]O, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// NewPageOut flattens a mounted page.
func NewPageOut(p *view.Page) PageOut {
	out := PageOut{Path: p.Route.Path(), Kind: p.Route.Kind().String()}
	switch v := p.View.(type) {
	case *view.Dashboard:
		out.Farms = mapAll(v.Farms(), farmOut)
	case *view.FarmView:
		f := farmOut(v.Farm())
		out.Farm = &f
		out.Plots = mapAll(v.Plots(), plotOut)
	case *view.PlotView:
		f, pl := farmOut(v.Farm()), plotOut(v.Plot())
		out.Farm, out.Plot = &f, &pl
		out.Rows = mapAll(v.Rows(), rowOut)
		out.Actions = mapAll(v.Actions(), actionOut)
	case *view.RowView:
		f, pl, r := farmOut(v.Farm()), plotOut(v.Plot()), rowOut(v.Row())
		out.Farm, out.Plot, out.Row = &f, &pl, &r
		out.Plants = mapAll(v.Plants(), plantOut)
		out.Actions = mapAll(v.Actions(), actionOut)
	case *view.PlantView:
		f, pl, r, pt := farmOut(v.Farm()), plotOut(v.Plot()), rowOut(v.Row()), plantOut(v.Plant())
		out.Farm, out.Plot, out.Row, out.Plant = &f, &pl, &r, &pt
		out.Actions = mapAll(v.Actions(), actionOut)
	}
	return out
}
