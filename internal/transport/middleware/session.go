package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/guard"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/pkg/ctxutil"
)

// sessionGuard defines the guard check applied to protected pages.
type sessionGuard interface {
	Check(ctx context.Context, requestedPath string) (guard.Decision, error)
}

type userKey struct{}

type holderKey struct{}

// userHolder lets an outer middleware observe the user resolved further in.
type userHolder struct{ id string }

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

// RequireSession admits requests with a valid session and answers 303 to the
// login page otherwise. The signed-in user is stored in the context. A form
// post is sent back to its page after login, since the post route itself
// only accepts POST.
func RequireSession(g sessionGuard, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				path = route.FromRequest(r).Path()
			}
			decision, err := g.Check(r.Context(), path)
			if err != nil {
				logger.WarnContext(r.Context(), "session check aborted", slog.String("error", err.Error()))
				http.Error(w, "Request cancelled.", http.StatusServiceUnavailable)
				return
			}
			if !decision.Allowed() {
				http.Redirect(w, r, decision.Redirect, http.StatusSeeOther)
				return
			}

			user := decision.User
			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			ctx = context.WithValue(ctx, userKey{}, user)
			if h, ok := r.Context().Value(holderKey{}).(*userHolder); ok {
				h.id = user.ID
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the user admitted by RequireSession, or nil.
func CurrentUser(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey{}).(*domain.User)
	return u
}
