package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tasktrack/internal/exitcode"
	"tasktrack/internal/export"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	outPath string
	filter  string
	title   string
}

// SetOptions sets the flag values (for testing).
func (c *ExportCmd) SetOptions(outPath, filter, title string) {
	c.outPath, c.filter, c.title = outPath, filter, title
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write tasks to a PDF file" }
func (c *ExportCmd) Usage() string {
	return "tasktrack export --out <file.pdf|-> [--filter all|active|completed] [--title <text>]"
}
func (c *ExportCmd) NeedsTasks() bool { return true }
func (c *ExportCmd) NeedsAuth() bool  { return false }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.outPath, "out", "", "")
	fs.StringVar(&c.outPath, "o", "", "")
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.title, "title", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if c.outPath == "" {
		fmt.Fprintln(errOut, "error: --out required")
		return exitcode.UserError
	}
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if code := applyFilter(env, c.filter, errOut); code != exitcode.Success {
		return code
	}

	title := c.title
	if title == "" {
		title = fmt.Sprintf("Tasks (%s)", env.Tasks.Filter())
	}
	view := env.Tasks.FilteredView()

	if c.outPath == "-" {
		if err := export.WritePDF(out, title, view); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	f, err := os.Create(c.outPath)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := export.WritePDF(f, title, view); err != nil {
		f.Close()
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	env.Log.WithField("path", c.outPath).WithField("tasks", len(view)).Debug("exported")
	if !env.Config.Quiet {
		fmt.Fprintf(out, "exported %d tasks to %s\n", len(view), c.outPath)
	}
	return exitcode.Success
}
