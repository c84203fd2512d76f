package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tasktrack/internal/tasks"
)

// TaskRef identifies a local task on the command line, either by its
// 1-based position in the full list ("3") or by id ("id:1700000000000").
type TaskRef struct {
	Num  int
	ID   int64
	ByID bool
}

const idPrefix = "id:"

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrTaskOutOfRange indicates a position past the end of the list.
	ErrTaskOutOfRange = errors.New("task number out of range")

	// ErrTaskNotFound indicates an id that is not in the list.
	ErrTaskNotFound = errors.New("task not found")
)

// ParseTaskRef parses exactly one task reference from args.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	arg := args[0]
	if rest, ok := strings.CutPrefix(arg, idPrefix); ok {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil || id <= 0 || !isAllDigits(rest) {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, ByID: true}, nil
	}

	if !isAllDigits(arg) {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	return TaskRef{Num: num}, nil
}

// Resolve finds the referenced task in the full, unfiltered list.
func (r TaskRef) Resolve(list []tasks.Task) (tasks.Task, error) {
	if r.ByID {
		for _, t := range list {
			if t.ID == r.ID {
				return t, nil
			}
		}
		return tasks.Task{}, fmt.Errorf("%w: id:%d", ErrTaskNotFound, r.ID)
	}
	if r.Num < 1 || r.Num > len(list) {
		return tasks.Task{}, fmt.Errorf("%w: %d", ErrTaskOutOfRange, r.Num)
	}
	return list[r.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
