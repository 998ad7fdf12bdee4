package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/heartmarshall/farmdash/internal/app"
	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/guard"
	"github.com/heartmarshall/farmdash/internal/service/session"
	"github.com/heartmarshall/farmdash/internal/transport/cli"
)

func newLoginCmd(g *globals) *cobra.Command {
	var email, password, next string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				p, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				password = p
			}
			return g.run(cmd, func(ctx context.Context, a *app.App, p *cli.Printer) error {
				user, err := a.Sessions.Login(ctx, session.LoginInput{Email: email, Password: password})
				if err != nil {
					return userFacing(domain.UserMessage(err, "Login failed"), err)
				}
				if user == nil {
					if user, err = signedIn(ctx, a); err != nil {
						return err
					}
				}
				if err := p.User(user); err != nil {
					return err
				}
				if next != "" && p.Format() == cli.FormatText {
					fmt.Fprintf(cmd.OutOrStdout(), "Continue with: farmdash show %s\n", guard.SafeNext(next))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&next, "next", "", "page to continue with after signing in")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// readPassword prompts without echo on a terminal and reads one line
// otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.run(cmd, func(ctx context.Context, a *app.App, p *cli.Printer) error {
				if err := a.Sessions.Logout(ctx); err != nil {
					return err
				}
				return p.Message("Signed out")
			})
		},
	}
}

func newWhoamiCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.run(cmd, func(ctx context.Context, a *app.App, p *cli.Printer) error {
				user, err := signedIn(ctx, a)
				if err != nil {
					return err
				}
				return p.User(user)
			})
		},
	}
}
