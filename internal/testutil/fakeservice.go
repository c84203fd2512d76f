// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"tasktrack/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.TaskList
	tasks map[string][]service.Task // listID -> tasks

	// Error injection for testing
	DefaultListErr   error
	ListListsErr     error
	ResolveListErr   error
	ListOpenTasksErr map[string]error // listID -> error

	// Calls counts ListOpenTasks calls per list.
	Calls map[string]int
}

// NewFakeService creates a new FakeService with a default list.
func NewFakeService() *FakeService {
	fs := &FakeService{
		tasks:            make(map[string][]service.Task),
		ListOpenTasksErr: make(map[string]error),
		Calls:            make(map[string]int),
	}
	fs.lists = []service.TaskList{
		{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
	}
	fs.tasks[DefaultListID] = nil
	return fs
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// AddTask adds an open task to a list.
func (f *FakeService) AddTask(listID, taskID, title string) {
	f.AddTaskWithNotes(listID, taskID, title, "")
}

// AddTaskWithNotes adds an open task with notes to a list.
func (f *FakeService) AddTaskWithNotes(listID, taskID, title, notes string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], service.Task{
		ID:     taskID,
		Title:  title,
		Notes:  notes,
		Status: "needsAction",
	})
}

// AddCompletedTask adds a completed task to a list.
func (f *FakeService) AddCompletedTask(listID, taskID, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], service.Task{
		ID:     taskID,
		Title:  title,
		Status: "completed",
	})
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.TaskList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	matches := service.MatchList(f.lists, name)
	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrAmbiguousList, name)
	}
}

// ListOpenTasks implements service.Service.
// Page tokens are decimal offsets into the open tasks.
func (f *FakeService) ListOpenTasks(ctx context.Context, listID, pageToken string) ([]service.Task, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[listID]++

	if err, ok := f.ListOpenTasksErr[listID]; ok && err != nil {
		return nil, "", err
	}

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, "", service.ErrListNotFound
	}

	var open []service.Task
	for _, t := range tasks {
		if t.Status == "needsAction" {
			open = append(open, t)
		}
	}

	start := 0
	if pageToken != "" {
		n, err := strconv.Atoi(pageToken)
		if err != nil || n < 0 {
			return nil, "", fmt.Errorf("invalid page token: %s", pageToken)
		}
		start = n
	}
	if start >= len(open) {
		return nil, "", nil
	}
	end := min(start+service.PageSize, len(open))
	var next string
	if end < len(open) {
		next = strconv.Itoa(end)
	}
	return open[start:end], next, nil
}
