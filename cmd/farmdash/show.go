package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/farmdash/internal/app"
	"github.com/heartmarshall/farmdash/internal/transport/cli"
)

func newShowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Show a dashboard page",
		Long: `Show the page at path, e.g.

  farmdash show /dashboard
  farmdash show /farms/f1/plots/p1/rows/r1

Without a path the dashboard is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/dashboard"
			if len(args) == 1 {
				path = args[0]
			}
			return g.run(cmd, func(ctx context.Context, a *app.App, p *cli.Printer) error {
				page, err := open(ctx, a, path)
				if err != nil {
					return err
				}
				return p.Page(page)
			})
		},
	}
}

func newActionsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the action catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.run(cmd, func(ctx context.Context, a *app.App, p *cli.Printer) error {
				if _, err := signedIn(ctx, a); err != nil {
					return err
				}
				list, err := a.API.ListPossibleActions(ctx)
				if err != nil {
					return err
				}
				return p.PossibleActions(list)
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "farmdash "+app.BuildVersion())
		},
	}
}

func newServeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g.serving = true
			return g.run(cmd, func(ctx context.Context, a *app.App, _ *cli.Printer) error {
				return a.Serve(ctx)
			})
		},
	}
}
