package dialog

import (
	"context"
	"strings"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ActionForm holds the raw inputs of the add-action dialog.
type ActionForm struct {
	PossibleActionID string
	Description      string
}

// NewAddAction builds the add-action dialog for exactly one target.
// possible returns the catalog the view loaded; when it is non-empty the
// chosen action must be in it.
func NewAddAction(api Mutator, target domain.ActionTarget, possible func() []domain.PossibleAction) *Dialog[ActionForm, *domain.Action] {
	return New(Config[ActionForm, *domain.Action]{
		Name:     NameAddAction,
		Fallback: "Failed to add action",
		Submit: func(ctx context.Context, f ActionForm) (*domain.Action, error) {
			in := domain.ActionCreate{
				PossibleActionID: strings.TrimSpace(f.PossibleActionID),
				Description:      strings.TrimSpace(f.Description),
				Target:           target,
			}
			if err := in.Validate(); err != nil {
				return nil, err
			}
			if !knownAction(in.PossibleActionID, possible) {
				return nil, domain.NewValidationError("possible_action_id", "unknown action")
			}
			return api.CreateAction(ctx, in)
		},
	})
}

func knownAction(id string, possible func() []domain.PossibleAction) bool {
	if possible == nil {
		return true
	}
	list := possible()
	if len(list) == 0 {
		return true
	}
	for _, pa := range list {
		if pa.ID == id {
			return true
		}
	}
	return false
}
