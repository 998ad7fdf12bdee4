package domain

import (
	"strings"
	"time"
)

// PossibleAction is a catalog entry naming a kind of Action.
type PossibleAction struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActionTarget points at exactly one plot, row or plant.
type ActionTarget struct {
	Type TargetType
	ID   string
}

// NewActionTarget builds a target from the three mutually exclusive ids.
// Exactly one of them must be non-empty.
func NewActionTarget(plotID, rowID, plantID string) (ActionTarget, error) {
	var (
		target ActionTarget
		set    int
	)
	if id := strings.TrimSpace(plotID); id != "" {
		target = ActionTarget{Type: TargetPlot, ID: id}
		set++
	}
	if id := strings.TrimSpace(rowID); id != "" {
		target = ActionTarget{Type: TargetRow, ID: id}
		set++
	}
	if id := strings.TrimSpace(plantID); id != "" {
		target = ActionTarget{Type: TargetPlant, ID: id}
		set++
	}
	if set != 1 {
		return ActionTarget{}, NewValidationError("target", "exactly one of plot, row or plant is required")
	}
	return target, nil
}

// Validate checks that the target names a known level and an id.
func (t ActionTarget) Validate() error {
	var errs []FieldError
	if !t.Type.IsValid() {
		errs = append(errs, FieldError{Field: "target", Message: "must be plot, row or plant"})
	}
	if strings.TrimSpace(t.ID) == "" {
		errs = append(errs, FieldError{Field: "target_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// PlotID returns the id when the target is a plot, otherwise "".
func (t ActionTarget) PlotID() string { return t.idIf(TargetPlot) }

// RowID returns the id when the target is a row, otherwise "".
func (t ActionTarget) RowID() string { return t.idIf(TargetRow) }

// PlantID returns the id when the target is a plant, otherwise "".
func (t ActionTarget) PlantID() string { return t.idIf(TargetPlant) }

func (t ActionTarget) idIf(want TargetType) string {
	if t.Type == want {
		return t.ID
	}
	return ""
}

// Action is a logged event attached to exactly one plot, row or plant.
type Action struct {
	ID                 string
	PossibleActionID   string
	PossibleActionName string
	Description        string
	Target             ActionTarget
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ActionCreate holds the fields sent when logging an action.
type ActionCreate struct {
	PossibleActionID string
	Description      string
	Target           ActionTarget
}

// Validate checks all fields and collects all errors.
func (c ActionCreate) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(c.PossibleActionID) == "" {
		errs = append(errs, FieldError{Field: "possible_action_id", Message: "required"})
	}
	if err := c.Target.Validate(); err != nil {
		errs = append(errs, err.(*ValidationError).Errors...)
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
