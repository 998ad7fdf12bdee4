// Package route defines the navigable page tree shared by the web router and
// the CLI: /dashboard → farm → plot → row → plant.
package route

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// URL parameter names.
const (
	ParamFarm  = "farmId"
	ParamPlot  = "plotId"
	ParamRow   = "rowId"
	ParamPlant = "plantId"
)

// Route patterns in chi syntax.
const (
	PatternLogin     = "/login"
	PatternDashboard = "/dashboard"
	PatternFarm      = "/farms/{" + ParamFarm + "}"
	PatternPlot      = PatternFarm + "/plots/{" + ParamPlot + "}"
	PatternRow       = PatternPlot + "/rows/{" + ParamRow + "}"
	PatternPlant     = PatternRow + "/plants/{" + ParamPlant + "}"
)

// Kind is the depth of a route in the page tree.
type Kind int

const (
	KindDashboard Kind = iota
	KindFarm
	KindPlot
	KindRow
	KindPlant
)

func (k Kind) String() string {
	switch k {
	case KindFarm:
		return "farm"
	case KindPlot:
		return "plot"
	case KindRow:
		return "row"
	case KindPlant:
		return "plant"
	default:
		return "dashboard"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k := KindDashboard; k <= KindPlant; k++ {
		if k.String() == strings.ToLower(strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("route: unknown kind %q", s)
}

// Route identifies one page. IDs below Kind are empty.
type Route struct {
	FarmID  string
	PlotID  string
	RowID   string
	PlantID string
}

// Dashboard is the root of the page tree.
func Dashboard() Route { return Route{} }

// Kind returns the depth of r.
func (r Route) Kind() Kind {
	switch {
	case r.PlantID != "":
		return KindPlant
	case r.RowID != "":
		return KindRow
	case r.PlotID != "":
		return KindPlot
	case r.FarmID != "":
		return KindFarm
	default:
		return KindDashboard
	}
}

// Path renders r as a URL path.
func (r Route) Path() string {
	if r.FarmID == "" {
		return PatternDashboard
	}
	var b strings.Builder
	b.WriteString("/farms/" + url.PathEscape(r.FarmID))
	if r.PlotID != "" {
		b.WriteString("/plots/" + url.PathEscape(r.PlotID))
	}
	if r.RowID != "" {
		b.WriteString("/rows/" + url.PathEscape(r.RowID))
	}
	if r.PlantID != "" {
		b.WriteString("/plants/" + url.PathEscape(r.PlantID))
	}
	return b.String()
}

func (r Route) String() string { return r.Path() }

// Parent is the back-navigation target. The dashboard is its own parent.
func (r Route) Parent() Route {
	switch r.Kind() {
	case KindPlant:
		r.PlantID = ""
	case KindRow:
		r.RowID = ""
	case KindPlot:
		r.PlotID = ""
	default:
		return Dashboard()
	}
	return r
}

// Child returns the drill-down route for selecting id one level below r.
func (r Route) Child(kind Kind, id string) (Route, error) {
	if kind > KindPlant || kind != r.Kind()+1 {
		return Route{}, fmt.Errorf("route: %s is not a child of %s", kind, r.Kind())
	}
	if strings.TrimSpace(id) == "" {
		return Route{}, domain.NewValidationError(kind.String()+"_id", "required")
	}
	switch kind {
	case KindFarm:
		r.FarmID = id
	case KindPlot:
		r.PlotID = id
	case KindRow:
		r.RowID = id
	case KindPlant:
		r.PlantID = id
	}
	return r, nil
}

// Valid reports whether r has no gaps in its ID chain.
func (r Route) Valid() bool {
	return !(r.PlantID != "" && r.RowID == "") &&
		!(r.RowID != "" && r.PlotID == "") &&
		!(r.PlotID != "" && r.FarmID == "")
}

// ErrUnknownRoute is returned by Parse for paths outside the page tree.
var ErrUnknownRoute = fmt.Errorf("route: unknown path: %w", domain.ErrNotFound)

var matcher = newMatcher()

func newMatcher() *chi.Mux {
	mux := chi.NewRouter()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, p := range []string{PatternDashboard, PatternFarm, PatternPlot, PatternRow, PatternPlant} {
		mux.Get(p, noop)
	}
	return mux
}

// Parse maps a URL path (optionally with a query string) to a Route.
func Parse(path string) (Route, error) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" || path == "/" {
		return Dashboard(), nil
	}

	rctx := chi.NewRouteContext()
	if !matcher.Match(rctx, http.MethodGet, path) {
		return Route{}, ErrUnknownRoute
	}
	return FromParams(rctx.URLParam), nil
}

// FromParams builds a Route from a URL parameter lookup such as
// chi.URLParam bound to a request.
func FromParams(param func(key string) string) Route {
	return Route{
		FarmID:  unescape(param(ParamFarm)),
		PlotID:  unescape(param(ParamPlot)),
		RowID:   unescape(param(ParamRow)),
		PlantID: unescape(param(ParamPlant)),
	}
}

// FromRequest reads the Route out of a request routed by chi.
func FromRequest(r *http.Request) Route {
	return FromParams(func(key string) string { return chi.URLParam(r, key) })
}

func unescape(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}
