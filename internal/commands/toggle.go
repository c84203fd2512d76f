package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/exitcode"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Toggle a task between open and completed" }
func (c *ToggleCmd) Usage() string     { return "tasktrack toggle <n | id:ID>" }
func (c *ToggleCmd) NeedsTasks() bool  { return true }
func (c *ToggleCmd) NeedsAuth() bool   { return false }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	task, code := lookupTask(env, args, errOut)
	if code != exitcode.Success {
		return code
	}

	env.Tasks.ToggleTask(task.ID)
	env.Log.WithField("id", task.ID).Debug("task toggled")
	warnIfUnsaved(env, errOut)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
