package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-linkup/internal/adapter"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in, run `linkup login` first")

type App struct {
	adapter adapter.ServerAdapter
	tokens  TokenStore

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		tokens:  tokens,
		logger:  logger,
	}
}

// Run executes one CLI invocation. Output goes to stdout, errors are
// returned to the caller.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "linkup",
		Short:         "go-linkup command line client",
		Long:          "Register, log in, edit your profile and manage connections on a go-linkup server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.tokens.Load()
			if err != nil {
				return err
			}
			if token != "" {
				a.adapter.SetToken(token)
			}
			return nil
		},
	}

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.meCmd(),
		a.versionCmd(),
		a.profileCmd(),
		a.usersCmd(),
		a.connectionsCmd(),
	)
	return root
}

// requireToken fails fast instead of letting the server answer 401.
func (a *App) requireToken(cmd *cobra.Command, args []string) error {
	if a.adapter.Token() == "" {
		return errNotLoggedIn
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// readPassword returns the flag value, or the first line of stdin when the
// flag is empty.
func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}
