package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "tasktrack rm <n | id:ID>" }
func (c *RmCmd) NeedsTasks() bool  { return true }
func (c *RmCmd) NeedsAuth() bool   { return false }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	task, code := lookupTask(env, args, errOut)
	if code != exitcode.Success {
		return code
	}

	env.Tasks.DeleteTask(task.ID)
	env.Log.WithField("id", task.ID).Debug("task deleted")
	warnIfUnsaved(env, errOut)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
