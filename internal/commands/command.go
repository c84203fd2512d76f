// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"tasktrack/internal/config"
	"tasktrack/internal/service"
	"tasktrack/internal/tasks"
)

// Env carries what a command may use. Fields a command did not ask for are nil.
type Env struct {
	// Config is always set.
	Config *config.Config

	// Tasks is set when NeedsTasks returns true.
	Tasks *tasks.Manager

	// Remote is set when NeedsAuth returns true.
	Remote service.Service

	// Log is always set.
	Log logrus.FieldLogger
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsTasks returns true if the command reads or changes local tasks.
	NeedsTasks() bool

	// NeedsAuth returns true if the command browses remote lists.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with positional args after flag parsing
	// and returns the exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

// warnIfUnsaved tells the user that the last change only lives in memory.
// The command still succeeds.
func warnIfUnsaved(env *Env, errOut io.Writer) {
	if err := env.Tasks.PersistErr(); err != nil {
		fmt.Fprintf(errOut, "warning: tasks not saved: %v\n", err)
	}
}
