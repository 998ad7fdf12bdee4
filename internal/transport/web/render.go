package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names, one per screen.
const (
	tmplLogin     = "login"
	tmplNotFound  = "notfound"
	tmplError     = "error"
	tmplDashboard = "dashboard"
	tmplFarm      = "farm"
	tmplPlot      = "plot"
	tmplRow       = "row"
	tmplPlant     = "plant"
)

var templateFuncs = template.FuncMap{
	"childPath": func(p *view.Page, id string) (string, error) {
		r, err := p.Select(id)
		if err != nil {
			return "", err
		}
		return r.Path(), nil
	},
	"num": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "–"
		}
		return t.Local().Format("2 Jan 2006 15:04")
	},
	"statuses": domain.PlantStatuses,
	"actionName": func(a domain.Action) string {
		if a.PossibleActionName != "" {
			return a.PossibleActionName
		}
		return a.PossibleActionID
	},
}

// pageData is the root value every template renders.
type pageData struct {
	Title  string
	User   *domain.User
	Path   string
	Parent string
	Page   *view.Page

	// Actions feeds the shared action log panel on plot, row and plant pages.
	Actions *actionPanel

	// login page
	Next       string
	Email      string
	LoginError string

	// error and not-found pages
	Message string
}

type actionPanel struct {
	Path            string
	PostPath        string
	Actions         []domain.Action
	PossibleActions []domain.PossibleAction
	Dialog          *dialog.Dialog[dialog.ActionForm, *domain.Action]
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	names := []string{tmplLogin, tmplNotFound, tmplError, tmplDashboard, tmplFarm, tmplPlot, tmplRow, tmplPlant}
	rd := &renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		t, err := template.New("layout.tmpl").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.tmpl", "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("web: parse template %s: %w", name, err)
		}
		rd.pages[name] = t
	}
	return rd, nil
}

// render executes into a buffer first; a template failure writes nothing.
func (rd *renderer) render(w http.ResponseWriter, status int, name string, data pageData) error {
	t, ok := rd.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown template %s", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("web: render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// pageFor fills the template data of a mounted page.
func pageFor(user *domain.User, p *view.Page) (string, pageData) {
	data := pageData{
		User: user,
		Path: p.Route.Path(),
		Page: p,
	}
	if p.Route.Kind() != route.KindDashboard {
		data.Parent = p.Route.Parent().Path()
	}

	switch p.Route.Kind() {
	case route.KindDashboard:
		data.Title = "My farms"
		return tmplDashboard, data
	case route.KindFarm:
		data.Title = p.Farm().Farm().Name
		return tmplFarm, data
	case route.KindPlot:
		v := p.Plot()
		data.Title = v.Plot().Name
		data.Actions = &actionPanel{
			Path: data.Path, PostPath: data.Path + "/actions",
			Actions: v.Actions(), PossibleActions: v.PossibleActions(), Dialog: v.AddAction,
		}
		return tmplPlot, data
	case route.KindRow:
		v := p.Row()
		data.Title = v.Row().Name
		data.Actions = &actionPanel{
			Path: data.Path, PostPath: data.Path + "/actions",
			Actions: v.Actions(), PossibleActions: v.PossibleActions(), Dialog: v.AddAction,
		}
		return tmplRow, data
	default:
		v := p.Plant()
		data.Title = v.Plant().Identifier
		data.Actions = &actionPanel{
			Path: data.Path, PostPath: data.Path + "/actions",
			Actions: v.Actions(), PossibleActions: v.PossibleActions(), Dialog: v.AddAction,
		}
		return tmplPlant, data
	}
}
