package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-linkup/models"
	"github.com/spf13/cobra"
)

func (a *App) registerCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, req.Password)
			if err != nil {
				return err
			}
			req.Password = password

			resp, err := a.adapter.Register(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			if err = a.tokens.Save(resp.Token); err != nil {
				return err
			}

			a.logger.Debug().Str("user_id", resp.User.ID).Msg("registered")
			return printJSON(cmd.OutOrStdout(), resp.User)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Username, "username", "", "unique username")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in by email or username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" && req.Username == "" {
				return errors.New("either --email or --username is required")
			}
			password, err := readPassword(cmd, req.Password)
			if err != nil {
				return err
			}
			req.Password = password

			resp, err := a.adapter.Login(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err = a.tokens.Save(resp.Token); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), resp.User)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Username, "username", "", "username")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (read from stdin when omitted)")

	return cmd
}

// logoutCmd only forgets the local token; issued tokens stay valid until
// they expire.
func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			a.adapter.SetToken("")
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func (a *App) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "me",
		Short:   "Show the logged in identity",
		Args:    cobra.NoArgs,
		PreRunE: a.requireToken,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := a.adapter.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), identity)
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
