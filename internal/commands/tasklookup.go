package commands

import (
	"fmt"
	"io"

	"tasktrack/internal/exitcode"
	"tasktrack/internal/tasks"
)

// lookupTask parses a task reference from args and resolves it against the
// full list. On failure it reports the error and returns a non-zero code.
func lookupTask(env *Env, args []string, errOut io.Writer) (tasks.Task, int) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return tasks.Task{}, exitcode.UserError
	}

	task, err := ref.Resolve(env.Tasks.Tasks())
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return tasks.Task{}, exitcode.UserError
	}
	return task, exitcode.Success
}
