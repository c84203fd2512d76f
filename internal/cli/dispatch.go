// Package cli parses common flags and runs commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"tasktrack/internal/commands"
	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/kvstore"
	"tasktrack/internal/logging"
	"tasktrack/internal/service"
	"tasktrack/internal/tasks"
)

// StoreFactory opens the local key-value store for cfg.
type StoreFactory func(cfg *config.Config) (kvstore.Store, error)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	stores   StoreFactory
	remote   ServiceFactory
}

// NewDispatcher creates a dispatcher. A nil stores factory opens a
// FileStore in the configured data directory.
func NewDispatcher(registry *commands.Registry, stores StoreFactory, remote ServiceFactory) *Dispatcher {
	if stores == nil {
		stores = func(cfg *config.Config) (kvstore.Store, error) {
			return kvstore.NewFileStore(cfg.DataDir()), nil
		}
	}
	return &Dispatcher{
		registry: registry,
		stores:   stores,
		remote:   remote,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list all tasks
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		reportFlagError(err, errOut)
		return exitcode.UserError
	}

	// A leftover dash argument should have been parsed as a flag
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.AuthError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	log := logging.New(cfg, errOut).WithField("command", cmd.Name())
	env := &commands.Env{Config: cfg, Log: log}

	if cmd.NeedsTasks() {
		mgr, err := d.openTasks(cfg, log)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.AuthError
		}
		env.Tasks = mgr
	}

	if cmd.NeedsAuth() {
		if code := d.openRemote(ctx, cfg, env, errOut); code != exitcode.Success {
			return code
		}
	}

	log.WithField("args", len(positionalArgs)).Debug("running command")
	return cmd.Run(ctx, env, positionalArgs, out, errOut)
}

// openTasks hydrates a task manager from the configured store.
func (d *Dispatcher) openTasks(cfg *config.Config, log *logrus.Entry) (*tasks.Manager, error) {
	codec, err := kvstore.CodecByName(cfg.Settings.Codec)
	if err != nil {
		return nil, fmt.Errorf("invalid config.toml: %w", err)
	}
	store, err := d.stores(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}

	mgr := tasks.New(kvstore.NewAdapter(store, codec, log), nil)
	mgr.Subscribe(func(all []tasks.Task, f tasks.Filter) {
		log.WithFields(logrus.Fields{
			"tasks":  len(all),
			"filter": f.String(),
		}).Debug("tasks changed")
	})
	log.WithField("tasks", len(mgr.Tasks())).Debug("tasks loaded")
	return mgr, nil
}

// openRemote sets env.Remote, or reports why it could not.
func (d *Dispatcher) openRemote(ctx context.Context, cfg *config.Config, env *commands.Env, errOut io.Writer) int {
	if d.remote == nil {
		// No factory: pre-flight checks only, the service stays nil
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
			return exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintf(errOut, "error: not logged in (run: tasktrack login)\n")
			return exitcode.AuthError
		}
		return exitcode.Success
	}

	svc, err := d.remote(ctx, cfg)
	if err != nil {
		if isAuthError(err) {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}
	env.Remote = svc
	return exitcode.Success
}

func isAuthError(err error) bool {
	if errors.Is(err, service.ErrAuth) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "token") || strings.Contains(msg, "oauth")
}

func reportFlagError(err error, errOut io.Writer) {
	errStr := err.Error()

	// Missing flag value
	if strings.Contains(errStr, "flag needs an argument") {
		flagPart := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
		return
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
}
