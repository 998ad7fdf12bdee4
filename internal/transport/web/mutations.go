package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/view"
)

// mutate reuses the mounted page, applies one form submission to it and
// renders the spliced result. A failed submission re-renders with the dialog
// open and its error shown. When another request unmounted the page during
// the submission the splice is lost, so the client is sent to reload it.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, p *view.Page) (bool, error)) {
	page, err := s.open(r.Context(), route.FromRequest(r), s.nav.Ensure)
	if !s.pageUsable(w, r, page, err) {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	ok, err := apply(r.Context(), page)
	switch {
	case !ok:
		s.notFound(w, r)
	case errors.Is(err, dialog.ErrBusy):
		s.renderMounted(w, r, http.StatusConflict, page)
	case err != nil:
		if r.Context().Err() != nil {
			return
		}
		s.renderMounted(w, r, http.StatusUnprocessableEntity, page)
	case !s.nav.Mounted(page):
		http.Redirect(w, r, page.Route.Path(), http.StatusSeeOther)
	default:
		s.renderMounted(w, r, http.StatusOK, page)
	}
}

// submit opens d, so a failure stays visible, and posts form through it.
func submit[F, R any](ctx context.Context, d *dialog.Dialog[F, R], form F) error {
	d.Open()
	_, err := d.SubmitForm(ctx, form)
	return err
}

func (s *Server) createFarm(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Dashboard()
		if v == nil {
			return false, nil
		}
		return true, submit(ctx, v.CreateFarm, dialog.FarmForm{
			Name:     r.PostForm.Get("name"),
			Location: r.PostForm.Get("location"),
			Area:     r.PostForm.Get("area"),
		})
	})
}

func (s *Server) createPlot(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Farm()
		if v == nil {
			return false, nil
		}
		return true, submit(ctx, v.CreatePlot, plotForm(r))
	})
}

func (s *Server) editPlot(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Plot()
		if v == nil {
			return false, nil
		}
		return true, submit(ctx, v.EditPlot, plotForm(r))
	})
}

func (s *Server) createRow(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Plot()
		if v == nil {
			return false, nil
		}
		return true, submit(ctx, v.CreateRow, rowForm(r))
	})
}

func (s *Server) editRow(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Row()
		if v == nil {
			return false, nil
		}
		return true, submit(ctx, v.EditRow, rowForm(r))
	})
}

func (s *Server) createPlant(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Row()
		if v == nil {
			return false, nil
		}
		return true, submit(ctx, v.CreatePlant, dialog.PlantForm{
			SpeciesID: r.PostForm.Get("speciesId"),
			Position:  r.PostForm.Get("position"),
			Status:    r.PostForm.Get("status"),
		})
	})
}

func (s *Server) createPlants(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Row()
		if v == nil {
			return false, nil
		}
		return true, submit(ctx, v.CreatePlants, dialog.BatchForm{
			SpeciesID: r.PostForm.Get("speciesId"),
			Count:     r.PostForm.Get("count"),
		})
	})
}

// addAction serves the action dialog of plot, row and plant pages alike.
func (s *Server) addAction(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		var d *dialog.Dialog[dialog.ActionForm, *domain.Action]
		switch v := p.View.(type) {
		case *view.PlotView:
			d = v.AddAction
		case *view.RowView:
			d = v.AddAction
		case *view.PlantView:
			d = v.AddAction
		default:
			return false, nil
		}
		return true, submit(ctx, d, dialog.ActionForm{
			PossibleActionID: r.PostForm.Get("possibleActionId"),
			Description:      r.PostForm.Get("description"),
		})
	})
}

func (s *Server) savePlant(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ctx context.Context, p *view.Page) (bool, error) {
		v := p.Plant()
		if v == nil {
			return false, nil
		}
		v.SetStatus(r.PostForm.Get("status"))
		v.SetPosition(r.PostForm.Get("position"))
		_, err := v.Save(ctx)
		return true, err
	})
}

func plotForm(r *http.Request) dialog.PlotForm {
	return dialog.PlotForm{
		Name:        r.PostForm.Get("name"),
		Area:        r.PostForm.Get("area"),
		Coordinates: r.PostForm.Get("coordinates"),
		Polygon:     r.PostForm.Get("polygon"),
	}
}

func rowForm(r *http.Request) dialog.RowForm {
	return dialog.RowForm{
		Name:   r.PostForm.Get("name"),
		Length: r.PostForm.Get("length"),
		Width:  r.PostForm.Get("width"),
	}
}
