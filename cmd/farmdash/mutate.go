package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/farmdash/internal/app"
	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/view"
	"github.com/heartmarshall/farmdash/internal/transport/cli"
)

// dialogError shows the dialog's message while keeping the cause for
// errors.Is.
type dialogError struct {
	msg string
	err error
}

func (e *dialogError) Error() string { return e.msg }
func (e *dialogError) Unwrap() error { return e.err }

func userFacing(msg string, err error) error {
	if msg == "" {
		return err
	}
	return &dialogError{msg: msg, err: err}
}

// submit opens d, lets edit adjust the seeded form and submits it.
func submit[F, R any](ctx context.Context, d *dialog.Dialog[F, R], edit func(*F)) (R, error) {
	d.Open()
	form := d.Form()
	edit(&form)
	res, err := d.SubmitForm(ctx, form)
	if err != nil {
		return res, userFacing(d.Error(), err)
	}
	return res, nil
}

// onPage runs fn against the mounted page at path, which must be of kind.
func (g *globals) onPage(cmd *cobra.Command, path string, kind route.Kind, fn func(ctx context.Context, page *view.Page, p *cli.Printer) error) error {
	return g.run(cmd, func(ctx context.Context, a *app.App, p *cli.Printer) error {
		page, err := open(ctx, a, path)
		if err != nil {
			return err
		}
		if err := requireKind(page, kind); err != nil {
			return err
		}
		return fn(ctx, page, p)
	})
}

// set copies a flag value into dst when the flag was given.
func set(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		*dst = v
	}
}

func newCreateCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create farms, plots, rows and plants",
	}
	cmd.AddCommand(
		newCreateFarmCmd(g),
		newCreatePlotCmd(g),
		newCreateRowCmd(g),
		newCreatePlantCmd(g),
		newCreatePlantsCmd(g),
	)
	return cmd
}

func newCreateFarmCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farm",
		Short: "Create a farm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.onPage(cmd, route.PatternDashboard, route.KindDashboard, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				farm, err := submit(ctx, page.Dashboard().CreateFarm, func(f *dialog.FarmForm) {
					set(cmd, "name", &f.Name)
					set(cmd, "location", &f.Location)
					set(cmd, "area", &f.Area)
				})
				if err != nil {
					return err
				}
				return p.Farm(farm)
			})
		},
	}
	cmd.Flags().String("name", "", "farm name")
	cmd.Flags().String("location", "", "farm location")
	cmd.Flags().String("area", "", "area in hectares")
	return cmd
}

func newCreatePlotCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <farm-path>",
		Short: "Create a plot on a farm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.onPage(cmd, args[0], route.KindFarm, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				plot, err := submit(ctx, page.Farm().CreatePlot, plotFlags(cmd))
				if err != nil {
					return err
				}
				return p.Plot(plot)
			})
		},
	}
	addPlotFlags(cmd)
	return cmd
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "plot name")
	cmd.Flags().String("area", "", "area in square meters")
	cmd.Flags().String("coordinates", "", "coordinates, free text")
	cmd.Flags().String("polygon", "", "polygon, free text or GeoJSON")
}

func plotFlags(cmd *cobra.Command) func(*dialog.PlotForm) {
	return func(f *dialog.PlotForm) {
		set(cmd, "name", &f.Name)
		set(cmd, "area", &f.Area)
		set(cmd, "coordinates", &f.Coordinates)
		set(cmd, "polygon", &f.Polygon)
	}
}

func newCreateRowCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row <plot-path>",
		Short: "Create a row in a plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.onPage(cmd, args[0], route.KindPlot, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				row, err := submit(ctx, page.Plot().CreateRow, rowFlags(cmd))
				if err != nil {
					return err
				}
				return p.Row(row)
			})
		},
	}
	addRowFlags(cmd)
	return cmd
}

func addRowFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "row name")
	cmd.Flags().String("length", "", "length in meters")
	cmd.Flags().String("width", "", "width in meters")
}

func rowFlags(cmd *cobra.Command) func(*dialog.RowForm) {
	return func(f *dialog.RowForm) {
		set(cmd, "name", &f.Name)
		set(cmd, "length", &f.Length)
		set(cmd, "width", &f.Width)
	}
}

func newCreatePlantCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant <row-path>",
		Short: "Create a plant in a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.onPage(cmd, args[0], route.KindRow, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				plant, err := submit(ctx, page.Row().CreatePlant, func(f *dialog.PlantForm) {
					set(cmd, "species", &f.SpeciesID)
					set(cmd, "position", &f.Position)
					set(cmd, "status", &f.Status)
					f.Status = strings.ToUpper(f.Status)
				})
				if err != nil {
					return err
				}
				return p.Plant(plant)
			})
		},
	}
	cmd.Flags().String("species", "", "species id")
	cmd.Flags().String("position", "", "position in the row")
	cmd.Flags().String("status", "", "HEALTHY, DISEASED or NEEDSATTENTION (default HEALTHY)")
	return cmd
}

func newCreatePlantsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plants <row-path>",
		Short: "Create several plants of one species in a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.onPage(cmd, args[0], route.KindRow, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				plants, err := submit(ctx, page.Row().CreatePlants, func(f *dialog.BatchForm) {
					set(cmd, "species", &f.SpeciesID)
					set(cmd, "count", &f.Count)
				})
				if err != nil {
					return err
				}
				return p.Plants(plants)
			})
		},
	}
	cmd.Flags().String("species", "", "species id")
	cmd.Flags().String("count", "", "number of plants, 1 to 100")
	_ = cmd.MarkFlagRequired("species")
	_ = cmd.MarkFlagRequired("count")
	return cmd
}

func newEditCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit plots, rows and plants",
		Long:  "Edit a record. Fields without a flag keep their current value.",
	}
	cmd.AddCommand(newEditPlotCmd(g), newEditRowCmd(g), newEditPlantCmd(g))
	return cmd
}

func newEditPlotCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <plot-path>",
		Short: "Edit a plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.onPage(cmd, args[0], route.KindPlot, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				plot, err := submit(ctx, page.Plot().EditPlot, plotFlags(cmd))
				if err != nil {
					return err
				}
				return p.Plot(plot)
			})
		},
	}
	addPlotFlags(cmd)
	return cmd
}

func newEditRowCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row <row-path>",
		Short: "Edit a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.onPage(cmd, args[0], route.KindRow, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				row, err := submit(ctx, page.Row().EditRow, rowFlags(cmd))
				if err != nil {
					return err
				}
				return p.Row(row)
			})
		},
	}
	addRowFlags(cmd)
	return cmd
}

func newEditPlantCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant <plant-path>",
		Short: "Update a plant's status or position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.onPage(cmd, args[0], route.KindPlant, func(ctx context.Context, page *view.Page, p *cli.Printer) error {
				v := page.Plant()
				if cmd.Flags().Changed("status") {
					s, _ := cmd.Flags().GetString("status")
					v.SetStatus(strings.ToUpper(s))
				}
				if cmd.Flags().Changed("position") {
					pos, _ := cmd.Flags().GetString("position")
					v.SetPosition(pos)
				}
				plant, err := v.Save(ctx)
				if err != nil {
					return userFacing(v.Error(), err)
				}
				if err := p.Plant(plant); err != nil {
					return err
				}
				if p.Format() == cli.FormatText {
					return p.Message(v.Flash())
				}
				return nil
			})
		},
	}
	cmd.Flags().String("status", "", "HEALTHY, DISEASED or NEEDSATTENTION")
	cmd.Flags().String("position", "", "position in the row")
	return cmd
}

func newLogActionCmd(g *globals) *cobra.Command {
	var plotID, rowID, plantID, action, description string
	cmd := &cobra.Command{
		Use:   "log-action",
		Short: "Log an action against one plot, row or plant",
		Example: `  farmdash log-action --plant pl1 --action Watering --description "deep soak"
  farmdash log-action --plot p1 --action pa3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := domain.NewActionTarget(plotID, rowID, plantID)
			if err != nil {
				return err
			}
			return g.run(cmd, func(ctx context.Context, a *app.App, p *cli.Printer) error {
				if _, err := signedIn(ctx, a); err != nil {
					return err
				}
				catalog, err := a.API.ListPossibleActions(ctx)
				if err != nil {
					return err
				}
				d := dialog.NewAddAction(a.API, target, func() []domain.PossibleAction { return catalog })
				created, err := submit(ctx, d, func(f *dialog.ActionForm) {
					f.PossibleActionID = actionID(action, catalog)
					f.Description = description
				})
				if err != nil {
					return err
				}
				return p.Action(created)
			})
		},
	}
	cmd.Flags().StringVar(&plotID, "plot", "", "plot id")
	cmd.Flags().StringVar(&rowID, "row", "", "row id")
	cmd.Flags().StringVar(&plantID, "plant", "", "plant id")
	cmd.Flags().StringVar(&action, "action", "", "action id or name from `farmdash actions`")
	cmd.Flags().StringVar(&description, "description", "", "free-text note")
	cmd.MarkFlagsOneRequired("plot", "row", "plant")
	cmd.MarkFlagsMutuallyExclusive("plot", "row", "plant")
	_ = cmd.MarkFlagRequired("action")
	return cmd
}

// actionID maps a catalog name to its id. Anything else is passed through.
func actionID(s string, catalog []domain.PossibleAction) string {
	s = strings.TrimSpace(s)
	for _, pa := range catalog {
		if pa.ID == s {
			return s
		}
	}
	for _, pa := range catalog {
		if strings.EqualFold(pa.Name, s) {
			return pa.ID
		}
	}
	return s
}
