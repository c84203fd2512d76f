// Package service defines the read-only interface used to browse remote
// task lists. Commands never import the Google SDK directly.
package service

import (
	"context"
	"errors"
)

// PageSize is the maximum number of tasks returned per ListOpenTasks page.
const PageSize = 100

var (
	// ErrListNotFound is returned by ResolveList when no list matches.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned by ResolveList when several lists match.
	ErrAmbiguousList = errors.New("ambiguous list name")

	// ErrAuth marks expired or revoked credentials.
	ErrAuth = errors.New("token expired or revoked (run: tasktrack login)")
)

// Service browses remote task lists.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListOpenTasks returns one page of open tasks for a list, starting at
	// pageToken ("" for the first page). next is "" on the last page.
	ListOpenTasks(ctx context.Context, listID, pageToken string) (tasks []Task, next string, err error)
}

// AllOpenTasks fetches every page of open tasks for a list.
func AllOpenTasks(ctx context.Context, svc Service, listID string) ([]Task, error) {
	var all []Task
	var token string
	for {
		tasks, next, err := svc.ListOpenTasks(ctx, listID, token)
		if err != nil {
			return nil, err
		}
		all = append(all, tasks...)
		if next == "" {
			return all, nil
		}
		token = next
	}
}
