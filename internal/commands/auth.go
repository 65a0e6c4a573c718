package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-projects/internal/client"
	"github.com/adanyl0v/go-projects/internal/client/views"
)

func newSignupCmd(opts *rootOptions) *cobra.Command {
	var form client.SignupForm

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewSignup)
			if err != nil {
				return err
			}

			form.Password, err = opts.promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			form.ConfirmPassword, err = opts.promptPassword(cmd, "Confirm password: ")
			if err != nil {
				return err
			}

			resp, err := session.Signup(cmd.Context(), form)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), views.Success(fmt.Sprintf("Account %s created, log in with 'projects login --email %s'", resp.Username, form.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "user name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Country, "country", "", "country")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("country")
	return cmd
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := opts.guard(cmd.Context(), client.ViewLogin)
			if err != nil {
				return err
			}

			password, err := opts.promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}

			err = session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			err = store.Save(session.Token())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), views.Success("Logged in as "+session.Username()))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}

			err = session.Logout(cmd.Context())
			if err != nil {
				return err
			}
			err = store.Clear()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			if session.State() != client.StateAuthenticated {
				return errNotLoggedIn
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", session.Username(), session.UserID())
			return nil
		},
	}
}
