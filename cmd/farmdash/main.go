// Command farmdash is the farm management dashboard client. It serves the web
// dashboard and exposes the same pages and forms on the command line.
//
// Exit codes: 0 = success, 1 = error, 2 = not signed in.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/farmdash/internal/transport/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error: "+err.Error()))
	if errors.Is(err, errNotSignedIn) {
		os.Exit(2)
	}
	os.Exit(1)
}
