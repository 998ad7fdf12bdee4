package farmapi

import (
	"bytes"
	"time"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ---------------------------------------------------------------------------
// Wire types. Field names follow the API exactly: parent IDs of farms, plots
// and rows are snake case, everything on plants and actions is camel case.
// ---------------------------------------------------------------------------

// wireTime accepts RFC 3339 timestamps and tolerates empty or unknown formats
// as the zero time.
type wireTime time.Time

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *wireTime) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*t = wireTime{}
		return nil
	}
	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, string(b)); err == nil {
			*t = wireTime(parsed)
			return nil
		}
	}
	*t = wireTime{}
	return nil
}

type apiUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	CreatedAt wireTime `json:"createdAt"`
	UpdatedAt wireTime `json:"updatedAt"`
}

type apiLogin struct {
	Token   string   `json:"token"`
	User    *apiUser `json:"user"`
	Message string   `json:"message"`
}

type apiFarm struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Area      float64  `json:"area"`
	UserID    string   `json:"user_id"`
	CreatedAt wireTime `json:"createdAt"`
	UpdatedAt wireTime `json:"updatedAt"`
}

type apiPlot struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Area        float64  `json:"area"`
	Coordinates string   `json:"coordinates"`
	Polygon     string   `json:"polygon"`
	FarmID      string   `json:"farm_id"`
	CreatedAt   wireTime `json:"createdAt"`
	UpdatedAt   wireTime `json:"updatedAt"`
}

type apiRow struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Length    float64  `json:"length"`
	Width     float64  `json:"width"`
	PlotID    string   `json:"plot_id"`
	CreatedAt wireTime `json:"createdAt"`
	UpdatedAt wireTime `json:"updatedAt"`
}

type apiPlant struct {
	ID                    string   `json:"id"`
	Identifier            string   `json:"identifier"`
	Status                string   `json:"status"`
	Position              int      `json:"position"`
	RowID                 string   `json:"plotRowId"`
	SpeciesID             string   `json:"speciesId"`
	SpeciesCommonName     string   `json:"speciesCommonName"`
	SpeciesScientificName string   `json:"speciesScientificName"`
	CreatedAt             wireTime `json:"createdAt"`
	UpdatedAt             wireTime `json:"updatedAt"`
}

type apiSpecies struct {
	ID             string   `json:"id"`
	CommonName     string   `json:"commonName"`
	ScientificName string   `json:"scientificName"`
	CreatedAt      wireTime `json:"createdAt"`
	UpdatedAt      wireTime `json:"updatedAt"`
}

type apiPossibleAction struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt wireTime `json:"createdAt"`
	UpdatedAt wireTime `json:"updatedAt"`
}

type apiAction struct {
	ID                 string   `json:"id"`
	PossibleActionID   string   `json:"possibleActionId"`
	PossibleActionName string   `json:"possibleActionName"`
	Description        string   `json:"description"`
	PlotID             string   `json:"plotId"`
	RowID              string   `json:"plotRowId"`
	PlantID            string   `json:"plantId"`
	CreatedAt          wireTime `json:"createdAt"`
	UpdatedAt          wireTime `json:"updatedAt"`
}

// Request bodies.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type farmCreateRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Area     float64 `json:"area"`
}

type plotCreateRequest struct {
	Name        string  `json:"name"`
	Area        float64 `json:"area"`
	Coordinates string  `json:"coordinates"`
	Polygon     *string `json:"polygon,omitempty"`
	FarmID      string  `json:"farm_id"`
}

type plotUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Area        *float64 `json:"area,omitempty"`
	Coordinates *string  `json:"coordinates,omitempty"`
	Polygon     *string  `json:"polygon,omitempty"`
}

type rowCreateRequest struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	PlotID string  `json:"plot_id"`
}

type rowUpdateRequest struct {
	Name   *string  `json:"name,omitempty"`
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
}

type plantCreateRequest struct {
	SpeciesID string `json:"speciesId"`
	Position  int    `json:"position"`
	Status    string `json:"status"`
	RowID     string `json:"plotRowId"`
}

type plantBatchRequest struct {
	RowID     string `json:"row_id"`
	SpeciesID string `json:"species_id"`
	Count     int    `json:"count"`
}

type plantUpdateRequest struct {
	Status   *string `json:"status,omitempty"`
	Position *int    `json:"position,omitempty"`
}

type actionCreateRequest struct {
	PossibleActionID string `json:"possibleActionId"`
	Description      string `json:"description,omitempty"`
	PlotID           string `json:"plotId,omitempty"`
	RowID            string `json:"plotRowId,omitempty"`
	PlantID          string `json:"plantId,omitempty"`
}

// ---------------------------------------------------------------------------
// Mapping to domain.
// ---------------------------------------------------------------------------

func (u *apiUser) toDomain() *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: time.Time(u.CreatedAt),
		UpdatedAt: time.Time(u.UpdatedAt),
	}
}

func (f apiFarm) toDomain() domain.Farm {
	return domain.Farm{
		ID:        f.ID,
		Name:      f.Name,
		Location:  f.Location,
		Area:      f.Area,
		UserID:    f.UserID,
		CreatedAt: time.Time(f.CreatedAt),
		UpdatedAt: time.Time(f.UpdatedAt),
	}
}

func (p apiPlot) toDomain() domain.Plot {
	return domain.Plot{
		ID:          p.ID,
		Name:        p.Name,
		Area:        p.Area,
		Coordinates: p.Coordinates,
		Polygon:     p.Polygon,
		FarmID:      p.FarmID,
		CreatedAt:   time.Time(p.CreatedAt),
		UpdatedAt:   time.Time(p.UpdatedAt),
	}
}

func (r apiRow) toDomain() domain.Row {
	return domain.Row{
		ID:        r.ID,
		Name:      r.Name,
		Length:    r.Length,
		Width:     r.Width,
		PlotID:    r.PlotID,
		CreatedAt: time.Time(r.CreatedAt),
		UpdatedAt: time.Time(r.UpdatedAt),
	}
}

func (p apiPlant) toDomain() domain.Plant {
	return domain.Plant{
		ID:                    p.ID,
		Identifier:            p.Identifier,
		Status:                domain.PlantStatus(p.Status),
		Position:              p.Position,
		SpeciesID:             p.SpeciesID,
		SpeciesCommonName:     p.SpeciesCommonName,
		SpeciesScientificName: p.SpeciesScientificName,
		RowID:                 p.RowID,
		CreatedAt:             time.Time(p.CreatedAt),
		UpdatedAt:             time.Time(p.UpdatedAt),
	}
}

func (s apiSpecies) toDomain() domain.Species {
	return domain.Species{
		ID:             s.ID,
		CommonName:     s.CommonName,
		ScientificName: s.ScientificName,
		CreatedAt:      time.Time(s.CreatedAt),
		UpdatedAt:      time.Time(s.UpdatedAt),
	}
}

func (pa apiPossibleAction) toDomain() domain.PossibleAction {
	return domain.PossibleAction{
		ID:        pa.ID,
		Name:      pa.Name,
		CreatedAt: time.Time(pa.CreatedAt),
		UpdatedAt: time.Time(pa.UpdatedAt),
	}
}

// toDomain picks the action target from whichever parent ID is set, most
// specific first. An action with no parent ID keeps a zero target.
func (a apiAction) toDomain() domain.Action {
	var target domain.ActionTarget
	switch {
	case a.PlantID != "":
		target = domain.ActionTarget{Type: domain.TargetPlant, ID: a.PlantID}
	case a.RowID != "":
		target = domain.ActionTarget{Type: domain.TargetRow, ID: a.RowID}
	case a.PlotID != "":
		target = domain.ActionTarget{Type: domain.TargetPlot, ID: a.PlotID}
	}
	return domain.Action{
		ID:                 a.ID,
		PossibleActionID:   a.PossibleActionID,
		PossibleActionName: a.PossibleActionName,
		Description:        a.Description,
		Target:             target,
		CreatedAt:          time.Time(a.CreatedAt),
		UpdatedAt:          time.Time(a.UpdatedAt),
	}
}

func mapSlice[W any, D any](in []W, fn func(W) D) []D {
	out := make([]D, 0, len(in))
	for _, w := range in {
		out = append(out, fn(w))
	}
	return out
}
