package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/form"
)

func (a *cli) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache the session",
		Long: `Sign in with email and password. When --password is omitted the
password is read from the first line of standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				sc := bufio.NewScanner(cmd.InOrStdin())
				if sc.Scan() {
					password = strings.TrimRight(sc.Text(), "\r")
				}
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			user, err := a.auth.SignIn(cmd.Context(), form.Login{Email: email, Password: password})
			if err != nil {
				// a 401 here means bad credentials, not an expired session
				return errors.New(appErrors.UserMessage(err, "Sign in failed"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.DisplayName())
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// tokens are cleared even when the backend call fails
			if err := a.auth.SignOut(cmd.Context()); err != nil {
				a.logger.Warn("Backend sign-out failed", "error", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (a *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.auth.Current(cmd.Context())
			if err != nil {
				return explain(err)
			}
			if id == nil {
				return explain(appErrors.ErrSessionExpired)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", id.User.DisplayName(), id.User.Email)
			if id.Profile != nil && id.Profile.Role != "" {
				fmt.Fprintf(out, "Role: %s\n", id.Profile.Role)
			}
			return nil
		},
	}
}
