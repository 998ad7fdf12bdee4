// Package guard decides whether a protected page may render for the current
// session, and where to send the user otherwise.
package guard

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/session"
)

// sessionResolver defines the session operations needed by the guard.
type sessionResolver interface {
	Resolve(ctx context.Context) (session.State, error)
	CurrentUser() *domain.User
}

// Decision is the outcome of a guard check. Exactly one of User and
// Redirect is set.
type Decision struct {
	User     *domain.User
	Redirect string
}

// Allowed reports whether the protected page may render.
func (d Decision) Allowed() bool { return d.User != nil }

// Guard applies the session check to protected routes.
type Guard struct {
	log      *slog.Logger
	sessions sessionResolver
}

// New creates a Guard.
func New(logger *slog.Logger, sessions sessionResolver) *Guard {
	return &Guard{
		log:      logger.With("service", "guard"),
		sessions: sessions,
	}
}

// Check resolves the session and either admits the request or returns the
// login redirect carrying requestedPath. The error is non-nil only when the
// context ends before the session settles; nothing may render in that case.
func (g *Guard) Check(ctx context.Context, requestedPath string) (Decision, error) {
	state, err := g.sessions.Resolve(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("guard.Check: %w", err)
	}

	if state == session.StateAuthenticated {
		if user := g.sessions.CurrentUser(); user != nil {
			return Decision{User: user}, nil
		}
	}

	g.log.DebugContext(ctx, "redirecting to login", slog.String("path", requestedPath))
	return Decision{Redirect: LoginURL(requestedPath)}, nil
}

// LoginURL builds the login page URL that returns to next after sign-in.
func LoginURL(next string) string {
	if next == "" {
		return route.PatternLogin
	}
	return route.PatternLogin + "?next=" + EncodeURIComponent(next)
}

// uriUnreserved are the characters encodeURIComponent leaves alone beyond
// those url.QueryEscape already keeps.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers do for a query component:
// spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}

// SafeNext returns the post-login destination for raw. Anything that is not
// a local absolute path, or that points back at the login page, yields the
// dashboard.
func SafeNext(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, `/\`) {
		return route.PatternDashboard
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return route.PatternDashboard
	}
	if u.Path == route.PatternLogin || strings.HasPrefix(u.Path, route.PatternLogin+"/") {
		return route.PatternDashboard
	}
	return raw
}
