package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/guard"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/session"
)

// root sends signed-in users to the dashboard and everyone else to login.
func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessions.Resolve(r.Context())
	if err != nil {
		return
	}
	if state == session.StateAuthenticated {
		http.Redirect(w, r, route.PatternDashboard, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, route.PatternLogin, http.StatusSeeOther)
}

// loginPage shows the sign-in form, or forwards an already signed-in user to
// the sanitised next target.
func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	state, err := s.sessions.Resolve(r.Context())
	if err != nil {
		return
	}
	if state == session.StateAuthenticated {
		http.Redirect(w, r, guard.SafeNext(next), http.StatusSeeOther)
		return
	}
	s.renderPage(w, r, http.StatusOK, tmplLogin, pageData{Title: "Sign in", Next: next})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, tmplLogin, pageData{Title: "Sign in", LoginError: "Invalid form submission"})
		return
	}
	input := session.LoginInput{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	next := r.PostForm.Get("next")

	if _, err := s.sessions.Login(r.Context(), input); err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, domain.ErrValidation):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
			status = http.StatusUnauthorized
		}
		s.log.InfoContext(r.Context(), "login failed", slog.Int("status", status), slog.String("error", err.Error()))
		s.renderPage(w, r, status, tmplLogin, pageData{
			Title:      "Sign in",
			Next:       next,
			Email:      input.Email,
			LoginError: domain.UserMessage(err, "Login failed"),
		})
		return
	}
	http.Redirect(w, r, guard.SafeNext(next), http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(r.Context()); err != nil {
		s.log.WarnContext(r.Context(), "logout", slog.String("error", err.Error()))
	}
	s.nav.Close()
	http.Redirect(w, r, route.PatternLogin, http.StatusSeeOther)
}
