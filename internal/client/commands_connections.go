package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "users",
		Short:             "Browse public profiles",
		PersistentPreRunE: a.chainPreRun(a.requireToken),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := a.adapter.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profiles)
		},
	}

	get := &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show one user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.adapter.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}

	byUsername := &cobra.Command{
		Use:   "by-username <username>",
		Short: "Show one user by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.adapter.GetUserByUsername(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}

	connections := &cobra.Command{
		Use:   "connections <user-id>",
		Short: "List the connections of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := a.adapter.ListUserConnections(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profiles)
		},
	}

	cmd.AddCommand(list, get, byUsername, connections)
	return cmd
}

func (a *App) connectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "connections",
		Aliases:           []string{"conn"},
		Short:             "Manage your connections and requests",
		PersistentPreRunE: a.chainPreRun(a.requireToken),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := a.adapter.ListConnections(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profiles)
		},
	}

	pending := &cobra.Command{
		Use:   "pending",
		Short: "List requests waiting for your answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := a.adapter.ListPending(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), requests)
		},
	}

	cmd.AddCommand(
		list,
		pending,
		a.answerCmd("send <user-id>", "Ask a user to connect", "request sent", a.adapter.SendRequest),
		a.answerCmd("accept <user-id>", "Accept a pending request", "request accepted", a.adapter.Accept),
		a.answerCmd("decline <user-id>", "Decline a pending request", "request declined", a.adapter.Decline),
	)
	return cmd
}

// answerCmd builds the send/accept/decline commands, which differ only in
// the adapter call and the confirmation line.
func (a *App) answerCmd(use, short, done string, call func(ctx context.Context, userID string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := call(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		},
	}
}
