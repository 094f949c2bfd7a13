package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/instanimals/instanimals-cli/internal/application"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Authenticate(cmd.Context(), application.ModeLogin, email, password, ""); err != nil {
				return loginFailure(cmd, app, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s!\n", app.session.Profile.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSignupCmd(app *app) *cobra.Command {
	var email, password, username string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long:  "Create an Instanimals account. When --username is omitted, the local part of the email is used.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Authenticate(cmd.Context(), application.ModeSignup, email, password, username); err != nil {
				return loginFailure(cmd, app, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Your handle is @%s.\n",
				app.session.Profile.DisplayName, app.session.Profile.Handle)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (6+ characters)")
	cmd.Flags().StringVar(&username, "username", "", "Display name (defaults to the email's local part)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}
			if err := app.feed.Logout(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the stored profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			p := app.session.Profile
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (@%s)\n", p.DisplayName, p.Handle)
			_, _ = fmt.Fprintln(out, p.Bio)
			if !app.session.LoggedIn {
				_, _ = fmt.Fprintln(out, "Not signed in.")
			}
			return nil
		},
	}

	cmd.AddCommand(newProfileEditCmd(app))

	return cmd
}

func newProfileEditCmd(app *app) *cobra.Command {
	var name, bio string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the profile name and bio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			if !cmd.Flags().Changed("name") {
				name = app.session.Profile.DisplayName
			}
			if !cmd.Flags().Changed("bio") {
				bio = app.session.Profile.Bio
			}

			if err := app.auth.SaveProfileEdit(cmd.Context(), name, bio); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Profile saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Profile bio")

	return cmd
}

// restoreSession hydrates the session from disk; a missing or unreadable
// store just leaves the session logged out.
func restoreSession(cmd *cobra.Command, app *app) error {
	if err := app.auth.Restore(cmd.Context()); err != nil {
		app.logger.Debug("restore session", zap.Error(err))
	}
	return nil
}

func loginFailure(cmd *cobra.Command, app *app, err error) error {
	if app.auth.LastError != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), app.auth.LastError)
	}
	return err
}
