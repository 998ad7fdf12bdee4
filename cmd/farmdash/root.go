package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/farmdash/internal/app"
	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/route"
	"github.com/heartmarshall/farmdash/internal/service/view"
	"github.com/heartmarshall/farmdash/internal/transport/cli"
)

var errNotSignedIn = errors.New("not signed in")

// globals are the persistent flags shared by every command.
type globals struct {
	configPath string
	storePath  string
	output     string
	ephemeral  bool
	verbose    bool
	// serving logs at the configured level to stderr.
	serving bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "farmdash",
		Short:         "Farm management dashboard client",
		Long:          "farmdash browses and edits farms, plots, rows and plants through the farm REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")
	pf.StringVar(&g.storePath, "store", "", "path to the session database (overrides store.path)")
	pf.StringVarP(&g.output, "output", "o", "text", "output format: text, json or yaml")
	pf.BoolVar(&g.ephemeral, "ephemeral", false, "keep the session in memory only")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "write logs to stderr")

	root.AddCommand(
		newServeCmd(g),
		newLoginCmd(g),
		newLogoutCmd(g),
		newWhoamiCmd(g),
		newShowCmd(g),
		newCreateCmd(g),
		newEditCmd(g),
		newLogActionCmd(g),
		newActionsCmd(g),
		newVersionCmd(),
	)
	return root
}

// run wires the application, hands it to fn and closes it afterwards.
func (g *globals) run(cmd *cobra.Command, fn func(ctx context.Context, a *app.App, p *cli.Printer) error) error {
	format, err := cli.ParseFormat(g.output)
	if err != nil {
		return err
	}

	opts := app.Options{
		ConfigPath: g.configPath,
		StorePath:  g.storePath,
		Ephemeral:  g.ephemeral,
		LogOutput:  io.Discard,
	}
	switch {
	case g.serving:
		opts.LogOutput = nil
		if g.verbose {
			opts.LogLevel = "debug"
		}
	case g.verbose:
		opts.LogOutput = os.Stderr
		opts.LogLevel = "debug"
	}

	ctx := cmd.Context()
	a, err := app.New(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			a.Log.Warn("close app", "error", cerr)
		}
	}()

	return fn(ctx, a, cli.NewPrinter(cmd.OutOrStdout(), format))
}

// open checks the session for path and mounts its page. A missing page is an
// error.
func open(ctx context.Context, a *app.App, path string) (*view.Page, error) {
	r, err := route.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	d, err := a.Guard.Check(ctx, r.Path())
	if err != nil {
		return nil, err
	}
	if !d.Allowed() {
		return nil, fmt.Errorf("%w: run `farmdash login --next %s`", errNotSignedIn, r.Path())
	}

	page, err := a.Navigator.Open(ctx, r)
	if err != nil {
		return nil, err
	}
	if page.NotFound {
		return nil, fmt.Errorf("%s: %w", r.Path(), domain.ErrNotFound)
	}
	return page, nil
}

// requireKind rejects a page that is not of the expected depth.
func requireKind(page *view.Page, want route.Kind) error {
	if got := page.Route.Kind(); got != want {
		return fmt.Errorf("%s is a %s page, expected a %s page", page.Route.Path(), got, want)
	}
	return nil
}

// signedIn fails unless the session resolves to a user.
func signedIn(ctx context.Context, a *app.App) (*domain.User, error) {
	d, err := a.Guard.Check(ctx, "")
	if err != nil {
		return nil, err
	}
	if !d.Allowed() {
		return nil, fmt.Errorf("%w: run `farmdash login`", errNotSignedIn)
	}
	return d.User, nil
}
