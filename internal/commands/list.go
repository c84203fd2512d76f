package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/exitcode"
	"tasktrack/internal/output"
	"tasktrack/internal/tasks"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tasktrack` (no args) and `tasktrack list`.
type ListCmd struct {
	filter string
}

// SetFilter sets the filter name (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filter = name
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "tasktrack list [--filter all|active|completed]" }
func (c *ListCmd) NeedsTasks() bool  { return true }
func (c *ListCmd) NeedsAuth() bool   { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.filter, "f", "all", "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if code := applyFilter(env, c.filter, errOut); code != exitcode.Success {
		return code
	}

	view := env.Tasks.FilteredView()
	if len(view) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	// Numbers are positions in the full list so they stay valid for
	// toggle and rm whatever filter was used.
	positions := numberTasks(env.Tasks.Tasks())
	for _, t := range view {
		output.FormatTask(out, positions[t.ID], t)
	}
	return exitcode.Success
}

// applyFilter parses name and sets it on the manager.
func applyFilter(env *Env, name string, errOut io.Writer) int {
	if name == "" {
		name = tasks.FilterAll.String()
	}
	f, err := tasks.ParseFilter(name)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	env.Tasks.SetFilter(f)
	return exitcode.Success
}

// numberTasks maps task ids to 1-based positions.
func numberTasks(list []tasks.Task) map[int64]int {
	positions := make(map[int64]int, len(list))
	for i, t := range list {
		positions[t.ID] = i + 1
	}
	return positions
}
