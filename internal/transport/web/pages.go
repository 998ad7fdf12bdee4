package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/farmdash/internal/service/dialog"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/view"
	"github.com/heartmarshall/farmdash/internal/transport/middleware"
)

// showPage mounts the view for the requested route, always re-fetching, and
// renders it. ?dialog=<name> opens one of the page's dialogs.
func (s *Server) showPage(w http.ResponseWriter, r *http.Request) {
	page, err := s.open(r.Context(), route.FromRequest(r), s.nav.Open)
	if !s.pageUsable(w, r, page, err) {
		return
	}
	openDialog(page, r.URL.Query().Get("dialog"))
	s.renderMounted(w, r, http.StatusOK, page)
}

// maxOpenAttempts bounds how often a load unmounted by a concurrent request
// is retried.
const maxOpenAttempts = 3

// open mounts rt, loading it again when another request navigated away
// before it finished.
func (s *Server) open(ctx context.Context, rt route.Route, mount func(context.Context, route.Route) (*view.Page, error)) (*view.Page, error) {
	var (
		page *view.Page
		err  error
	)
	for range maxOpenAttempts {
		page, err = mount(ctx, rt)
		if !errors.Is(err, view.ErrNavigatedAway) || ctx.Err() != nil {
			break
		}
		s.log.DebugContext(ctx, "page replaced while loading, retrying", slog.String("path", rt.Path()))
	}
	return page, err
}

// pageUsable writes the response for a page that cannot be shown and reports
// whether the caller may go on.
func (s *Server) pageUsable(w http.ResponseWriter, r *http.Request, page *view.Page, err error) bool {
	switch {
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || r.Context().Err() != nil):
		return false
	case errors.Is(err, view.ErrNavigatedAway):
		s.renderError(w, r, http.StatusConflict, "The page changed while it was loading.")
		return false
	case err != nil:
		s.log.ErrorContext(r.Context(), "open page", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		s.renderError(w, r, http.StatusBadGateway, "Failed to load page.")
		return false
	case page.NotFound:
		s.renderPage(w, r, http.StatusNotFound, tmplNotFound, pageData{Title: "Not found", Path: page.Route.Path()})
		return false
	}
	return true
}

func (s *Server) renderMounted(w http.ResponseWriter, r *http.Request, status int, page *view.Page) {
	name, data := pageFor(middleware.CurrentUser(r.Context()), page)
	s.renderPage(w, r, status, name, data)
}

func openDialog(page *view.Page, name string) {
	if name == "" {
		return
	}
	switch v := page.View.(type) {
	case *view.Dashboard:
		if name == dialog.NameCreateFarm {
			v.CreateFarm.Open()
		}
	case *view.FarmView:
		if name == dialog.NameCreatePlot {
			v.CreatePlot.Open()
		}
	case *view.PlotView:
		switch name {
		case dialog.NameCreateRow:
			v.CreateRow.Open()
		case dialog.NameEditPlot:
			v.EditPlot.Open()
		case dialog.NameAddAction:
			v.AddAction.Open()
		}
	case *view.RowView:
		switch name {
		case dialog.NameCreatePlant:
			v.CreatePlant.Open()
		case dialog.NameCreatePlants:
			v.CreatePlants.Open()
		case dialog.NameEditRow:
			v.EditRow.Open()
		case dialog.NameAddAction:
			v.AddAction.Open()
		}
	case *view.PlantView:
		if name == dialog.NameAddAction {
			v.AddAction.Open()
		}
	}
}
