package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-projects/internal/app"
	"github.com/adanyl0v/go-projects/internal/client"
)

const defaultServer = "http://localhost:5000"

var (
	errNotLoggedIn = errors.New("not logged in, run 'projects login' first")
)

type rootOptions struct {
	server    string
	tokenFile string
	verbose   bool

	in *bufio.Reader
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Track projects and their tasks",
		Long: `projects runs the project tracker API server and talks to it from the terminal.
Sign up, log in, then create projects and tick off their tasks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.InitCLILogger(opts.verbose)
		},
	}

	server := os.Getenv("PROJECTS_SERVER")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", server, "API server url (env PROJECTS_SERVER)")
	cmd.PersistentFlags().StringVar(&opts.tokenFile, "token-file", "", "file keeping the session token (default in the user config dir)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSignupCmd(opts))
	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newLogoutCmd(opts))
	cmd.AddCommand(newWhoamiCmd(opts))
	cmd.AddCommand(newProjectsCmd(opts))
	cmd.AddCommand(newProjectCmd(opts))
	cmd.AddCommand(newTaskCmd(opts))
	return cmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func (o *rootOptions) tokenStore() (*client.TokenStore, error) {
	path := o.tokenFile
	if path == "" {
		var err error
		path, err = client.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}
	return client.NewTokenStore(path), nil
}

// openSession restores the saved token and asks the server who it
// belongs to.
func (o *rootOptions) openSession(ctx context.Context) (*client.Session, *client.TokenStore, error) {
	api, err := client.NewAPIClient(o.server)
	if err != nil {
		return nil, nil, err
	}

	store, err := o.tokenStore()
	if err != nil {
		return nil, nil, err
	}
	token, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	if token != "" {
		api.SetToken(token)
	}

	session := client.NewSession(api)
	err = session.Initialize(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check session: %w", err)
	}

	logger := app.Logger()
	logger.Debug().
		Str("server", o.server).
		Stringer("state", session.State()).
		Msg("opened session")
	return session, store, nil
}

// guard opens the session and applies the view rules for view.
func (o *rootOptions) guard(ctx context.Context, view string) (*client.Session, *client.TokenStore, error) {
	session, store, err := o.openSession(ctx)
	if err != nil {
		return nil, nil, err
	}

	switch client.Resolve(view, session.State()) {
	case view:
		return session, store, nil
	case client.ViewProjects:
		return nil, nil, fmt.Errorf("already logged in as %s, run 'projects logout' first", session.Username())
	default:
		return nil, nil, errNotLoggedIn
	}
}

func (o *rootOptions) reader(cmd *cobra.Command) *bufio.Reader {
	if o.in == nil {
		o.in = bufio.NewReader(cmd.InOrStdin())
	}
	return o.in
}
