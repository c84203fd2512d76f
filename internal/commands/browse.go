package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasktrack/internal/exitcode"
	"tasktrack/internal/output"
	"tasktrack/internal/service"
)

func init() {
	Register(&BrowseCmd{})
}

// BrowseCmd implements the browse command: a read-only search over the
// open tasks of one remote list.
type BrowseCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *BrowseCmd) SetListName(name string) {
	c.listName = name
}

func (c *BrowseCmd) Name() string      { return "browse" }
func (c *BrowseCmd) Aliases() []string { return []string{"search"} }
func (c *BrowseCmd) Synopsis() string  { return "Search open tasks in a Google Tasks list" }
func (c *BrowseCmd) Usage() string     { return "tasktrack browse [--list <list-name>] [query...]" }
func (c *BrowseCmd) NeedsTasks() bool  { return false }
func (c *BrowseCmd) NeedsAuth() bool   { return true }

func (c *BrowseCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *BrowseCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	svc := env.Remote
	query := strings.Join(args, " ")

	var list service.TaskList
	var err error
	if c.listName != "" {
		list, err = svc.ResolveList(ctx, c.listName)
	} else {
		list, err = svc.DefaultList(ctx)
	}
	if err != nil {
		return reportRemoteError(err, c.listName, errOut)
	}

	all, err := service.AllOpenTasks(ctx, svc, list.ID)
	if err != nil {
		return reportRemoteError(err, "", errOut)
	}

	var matches []service.Task
	for _, t := range all {
		if t.Matches(query) {
			matches = append(matches, t)
		}
	}
	env.Log.WithField("list", list.Title).WithField("fetched", len(all)).WithField("matched", len(matches)).Debug("browse")

	if len(matches) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatListHeader(out, list.Title, list.IsDefault)
	for i, t := range matches {
		output.FormatRemoteTask(out, i+1, t)
	}
	return exitcode.Success
}

// reportRemoteError prints err and maps it to an exit code.
func reportRemoteError(err error, listName string, errOut io.Writer) int {
	switch {
	case errors.Is(err, service.ErrListNotFound) && listName != "":
		fmt.Fprintf(errOut, "error: list not found: %s\n", listName)
		return exitcode.UserError
	case errors.Is(err, service.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", listName)
		return exitcode.UserError
	case errors.Is(err, service.ErrAuth):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
