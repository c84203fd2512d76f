package service

import "strings"

// Task represents a single remote task.
type Task struct {
	ID       string
	Title    string
	Notes    string
	Position string
	Status   string // "needsAction" or "completed"
}

// Matches reports whether the title or notes contain query, ignoring case.
// An empty query matches everything.
func (t Task) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Notes), q)
}

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

// MatchList returns the lists whose title equals name after trimming,
// ignoring case.
func MatchList(lists []TaskList, name string) []TaskList {
	name = strings.TrimSpace(name)
	var matches []TaskList
	for _, l := range lists {
		if strings.EqualFold(strings.TrimSpace(l.Title), name) {
			matches = append(matches, l)
		}
	}
	return matches
}
