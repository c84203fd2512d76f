package tasks

import (
	"strings"

	"tasktrack/internal/kvstore"
)

// TasksKey is the store key holding the whole collection.
const TasksKey = "tasks"

// Observer is called after every state change with a snapshot of the
// collection and the current filter.
type Observer func(tasks []Task, filter Filter)

type subscription struct {
	id int
	fn Observer
}

// Manager holds the task collection in memory and writes the entire
// collection through to the store after every mutation.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	store  *kvstore.Adapter
	ids    *IDGenerator
	tasks  []Task
	filter Filter

	observers []subscription
	nextSub   int
}

// New hydrates a Manager from store. A nil ids uses the wall clock.
func New(store *kvstore.Adapter, ids *IDGenerator) *Manager {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	loaded := kvstore.Load(store, TasksKey, taskList{})
	for _, t := range loaded {
		ids.Observe(t.ID)
	}
	return &Manager{
		store:  store,
		ids:    ids,
		tasks:  []Task(loaded),
		filter: FilterAll,
	}
}

// Tasks returns a copy of the full, unfiltered collection.
func (m *Manager) Tasks() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Filter returns the current filter.
func (m *Manager) Filter() Filter {
	return m.filter
}

// PersistErr returns the error from the most recent failed write, or nil if
// the last write succeeded.
func (m *Manager) PersistErr() error {
	return m.store.Err()
}

// AddTask appends a task with the trimmed text.
// Blank text is ignored and reported with ok=false, as is running out of ids.
func (m *Manager) AddTask(text string) (task Task, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	id, err := m.ids.Next()
	if err != nil {
		return Task{}, false
	}
	task = Task{ID: id, Text: text}
	m.tasks = append(m.tasks, task)
	m.commit()
	return task, true
}

// ToggleTask flips the completed flag of the task with id.
// It reports whether the task exists.
func (m *Manager) ToggleTask(id int64) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	next := make([]Task, len(m.tasks))
	copy(next, m.tasks)
	next[i].Completed = !next[i].Completed
	m.tasks = next
	m.commit()
	return true
}

// DeleteTask removes the task with id.
// It reports whether the task existed.
func (m *Manager) DeleteTask(id int64) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	next := make([]Task, 0, len(m.tasks)-1)
	next = append(next, m.tasks[:i]...)
	next = append(next, m.tasks[i+1:]...)
	m.tasks = next
	m.commit()
	return true
}

// SetFilter changes the filter used by FilteredView. It is not persisted.
func (m *Manager) SetFilter(f Filter) {
	m.filter = f
	m.notify()
}

// FilteredView returns the tasks matching the current filter in insertion order.
func (m *Manager) FilteredView() []Task {
	out := make([]Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if m.filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Subscribe registers fn to run after every state change.
// The returned func removes the registration.
func (m *Manager) Subscribe(fn Observer) (unsubscribe func()) {
	m.nextSub++
	id := m.nextSub
	m.observers = append(m.observers, subscription{id: id, fn: fn})
	return func() {
		for i, s := range m.observers {
			if s.id == id {
				m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

func (m *Manager) indexOf(id int64) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// commit persists the whole collection, then notifies observers.
func (m *Manager) commit() {
	kvstore.Save(m.store, TasksKey, taskList(m.tasks))
	m.notify()
}

func (m *Manager) notify() {
	if len(m.observers) == 0 {
		return
	}
	snapshot := m.Tasks()
	for _, s := range m.observers {
		s.fn(snapshot, m.filter)
	}
}
