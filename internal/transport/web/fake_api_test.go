package web

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/session"
)

// fakeAPI is an in-memory farm backend serving both the loader and the views.
type fakeAPI struct {
	mu      sync.Mutex
	farms   []domain.Farm
	plots   []domain.Plot
	rows    []domain.Row
	plants  []domain.Plant
	actions []domain.Action
	species []domain.Species
	catalog []domain.PossibleAction
	seq     int

	listCalls map[string]int
	failNext  error
	// hooks run before the named call reads or writes anything.
	hooks map[string]func()
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		farms:   []domain.Farm{{ID: "f1", Name: "North Farm", Location: "Valley", Area: 12}},
		plots:   []domain.Plot{{ID: "p1", Name: "East Plot", Area: 50, Coordinates: "1,2", FarmID: "f1"}},
		rows:    []domain.Row{{ID: "r1", Name: "Row A", Length: 10, Width: 1, PlotID: "p1"}},
		plants:  []domain.Plant{{ID: "x1", Identifier: "TOM-1", Status: domain.PlantStatusHealthy, Position: 1, SpeciesID: "s1", SpeciesCommonName: "Tomato", RowID: "r1"}},
		species: []domain.Species{{ID: "s1", CommonName: "Tomato"}},
		catalog: []domain.PossibleAction{{ID: "pa1", Name: "Watering"}},

		listCalls: map[string]int{},
		hooks:     map[string]func(){},
	}
}

// hook makes the named call run fn first, outside the lock.
func (f *fakeAPI) hook(name string, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks[name] = fn
}

func (f *fakeAPI) runHook(name string) {
	f.mu.Lock()
	fn := f.hooks[name]
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (f *fakeAPI) calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls[name]
}

func (f *fakeAPI) list(name string) {
	f.runHook(name)
	f.mu.Lock()
	f.listCalls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-new-%d", prefix, f.seq)
}

func (f *fakeAPI) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func find[T any](items []T, match func(T) bool) (*T, error) {
	for i := range items {
		if match(items[i]) {
			v := items[i]
			return &v, nil
		}
	}
	return nil, &domain.APIError{StatusCode: 404, Message: "not found"}
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := []T{}
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (f *fakeAPI) GetFarm(_ context.Context, id string) (*domain.Farm, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return find(f.farms, func(x domain.Farm) bool { return x.ID == id })
}

func (f *fakeAPI) GetPlot(_ context.Context, id string) (*domain.Plot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return find(f.plots, func(x domain.Plot) bool { return x.ID == id })
}

func (f *fakeAPI) GetRow(_ context.Context, id string) (*domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return find(f.rows, func(x domain.Row) bool { return x.ID == id })
}

func (f *fakeAPI) GetPlant(_ context.Context, id string) (*domain.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return find(f.plants, func(x domain.Plant) bool { return x.ID == id })
}

func (f *fakeAPI) ListFarms(context.Context) ([]domain.Farm, error) {
	f.list("farms")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Farm(nil), f.farms...), nil
}

func (f *fakeAPI) ListPlots(_ context.Context, farmID string) ([]domain.Plot, error) {
	f.list("plots")
	f.mu.Lock()
	defer f.mu.Unlock()
	return filter(f.plots, func(x domain.Plot) bool { return x.FarmID == farmID }), nil
}

func (f *fakeAPI) ListRows(_ context.Context, plotID string) ([]domain.Row, error) {
	f.list("rows")
	f.mu.Lock()
	defer f.mu.Unlock()
	return filter(f.rows, func(x domain.Row) bool { return x.PlotID == plotID }), nil
}

func (f *fakeAPI) ListPlants(_ context.Context, rowID string) ([]domain.Plant, error) {
	f.list("plants")
	f.mu.Lock()
	defer f.mu.Unlock()
	return filter(f.plants, func(x domain.Plant) bool { return x.RowID == rowID }), nil
}

func (f *fakeAPI) listActions(target domain.ActionTarget) []domain.Action {
	f.list("actions")
	f.mu.Lock()
	defer f.mu.Unlock()
	return filter(f.actions, func(x domain.Action) bool { return x.Target == target })
}

func (f *fakeAPI) ListPlotActions(_ context.Context, id string) ([]domain.Action, error) {
	return f.listActions(domain.ActionTarget{Type: domain.TargetPlot, ID: id}), nil
}

func (f *fakeAPI) ListRowActions(_ context.Context, id string) ([]domain.Action, error) {
	return f.listActions(domain.ActionTarget{Type: domain.TargetRow, ID: id}), nil
}

func (f *fakeAPI) ListPlantActions(_ context.Context, id string) ([]domain.Action, error) {
	return f.listActions(domain.ActionTarget{Type: domain.TargetPlant, ID: id}), nil
}

func (f *fakeAPI) ListPossibleActions(context.Context) ([]domain.PossibleAction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.PossibleAction(nil), f.catalog...), nil
}

func (f *fakeAPI) ListSpecies(context.Context) ([]domain.Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Species(nil), f.species...), nil
}

func (f *fakeAPI) CreateFarm(_ context.Context, in domain.FarmCreate) (*domain.Farm, error) {
	f.runHook("createFarm")
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	farm := domain.Farm{ID: f.nextID("farm"), Name: in.Name, Location: in.Location, Area: in.Area}
	f.farms = append(f.farms, farm)
	return &farm, nil
}

func (f *fakeAPI) CreatePlot(_ context.Context, in domain.PlotCreate) (*domain.Plot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plot := domain.Plot{ID: f.nextID("plot"), Name: in.Name, Area: in.Area, Coordinates: in.Coordinates, FarmID: in.FarmID}
	f.plots = append(f.plots, plot)
	return &plot, nil
}

func (f *fakeAPI) UpdatePlot(_ context.Context, id string, in domain.PlotUpdate) (*domain.Plot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.plots {
		if f.plots[i].ID == id {
			if in.Name != nil {
				f.plots[i].Name = *in.Name
			}
			p := f.plots[i]
			return &p, nil
		}
	}
	return nil, &domain.APIError{StatusCode: 404}
}

func (f *fakeAPI) CreateRow(_ context.Context, in domain.RowCreate) (*domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := domain.Row{ID: f.nextID("row"), Name: in.Name, Length: in.Length, Width: in.Width, PlotID: in.PlotID}
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeAPI) UpdateRow(_ context.Context, id string, in domain.RowUpdate) (*domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			if in.Name != nil {
				f.rows[i].Name = *in.Name
			}
			r := f.rows[i]
			return &r, nil
		}
	}
	return nil, &domain.APIError{StatusCode: 404}
}

func (f *fakeAPI) CreatePlant(_ context.Context, in domain.PlantCreate) (*domain.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := domain.Plant{ID: f.nextID("plant"), Identifier: "NEW", Status: in.Status, Position: in.Position, SpeciesID: in.SpeciesID, RowID: in.RowID}
	f.plants = append(f.plants, p)
	return &p, nil
}

func (f *fakeAPI) BatchCreatePlants(_ context.Context, in domain.PlantBatchCreate) ([]domain.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Plant, 0, in.Count)
	for range in.Count {
		id := f.nextID("plant")
		p := domain.Plant{ID: id, Identifier: id, Status: domain.PlantStatusHealthy, SpeciesID: in.SpeciesID, RowID: in.RowID}
		f.plants = append(f.plants, p)
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeAPI) UpdatePlant(_ context.Context, id string, in domain.PlantUpdate) (*domain.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	for i := range f.plants {
		if f.plants[i].ID == id {
			if in.Status != nil {
				f.plants[i].Status = *in.Status
			}
			if in.Position != nil {
				f.plants[i].Position = *in.Position
			}
			p := f.plants[i]
			return &p, nil
		}
	}
	return nil, &domain.APIError{StatusCode: 404}
}

func (f *fakeAPI) CreateAction(_ context.Context, in domain.ActionCreate) (*domain.Action, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := domain.Action{ID: f.nextID("action"), PossibleActionID: in.PossibleActionID, Description: in.Description, Target: in.Target}
	for _, pa := range f.catalog {
		if pa.ID == in.PossibleActionID {
			a.PossibleActionName = pa.Name
		}
	}
	f.actions = append(f.actions, a)
	return &a, nil
}

// fakeSession is a session that is either signed in as user or not.
type fakeSession struct {
	mu       sync.Mutex
	user     *domain.User
	password string
}

func (s *fakeSession) Resolve(context.Context) (session.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		return session.StateAuthenticated, nil
	}
	return session.StateUnauthenticated, nil
}

func (s *fakeSession) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *fakeSession) Login(_ context.Context, in session.LoginInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.Password != s.password {
		return nil, &domain.APIError{StatusCode: 401, Message: "Invalid credentials"}
	}
	s.user = &domain.User{ID: "u1", Name: "Grace", Email: in.Email}
	return s.user, nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

type pingStore struct{ err error }

func (p pingStore) Ping(context.Context) error { return p.err }
