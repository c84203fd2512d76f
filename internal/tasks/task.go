// Package tasks owns the task collection: an ordered, persisted list of
// tasks with write-through mutations and filtered views.
package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Task is a single to-do item.
type Task struct {
	ID        int64  `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// taskFields maps each stored field name to the YAML tag its value must carry.
var taskFields = map[string]string{
	"id":        "!!int",
	"text":      "!!str",
	"completed": "!!bool",
}

// plainTask has Task's fields without its decoding methods.
type plainTask Task

// UnmarshalJSON requires exactly the keys id, text and completed, matched
// case-sensitively, none of them null.
func (t *Task) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	keys := make([]string, 0, len(fields))
	for k, raw := range fields {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("task field %q is null", k)
		}
		keys = append(keys, k)
	}
	if err := checkTaskFields(keys); err != nil {
		return err
	}

	var p plainTask
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Task(p)
	return nil
}

// UnmarshalYAML applies the same shape rules as UnmarshalJSON and also
// checks each value's type tag.
func (t *Task) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: task is not a mapping", value.Line)
	}
	keys := make([]string, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if tag, ok := taskFields[k.Value]; ok && (v.Kind != yaml.ScalarNode || v.ShortTag() != tag) {
			return fmt.Errorf("line %d: task field %q must be %s", v.Line, k.Value, tag)
		}
		keys = append(keys, k.Value)
	}
	if err := checkTaskFields(keys); err != nil {
		return err
	}

	var p plainTask
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = Task(p)
	return nil
}

func checkTaskFields(keys []string) error {
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, ok := taskFields[k]; !ok {
			return fmt.Errorf("unknown task field %q", k)
		}
		if seen[k] {
			return fmt.Errorf("duplicate task field %q", k)
		}
		seen[k] = true
	}
	for k := range taskFields {
		if !seen[k] {
			return fmt.Errorf("missing task field %q", k)
		}
	}
	return nil
}

// taskList is the persisted form of the collection.
type taskList []Task

// Validate rejects stored collections that could not have been produced by
// a Manager: ids outside 1..MaxID, duplicate ids and blank text.
func (l taskList) Validate() error {
	seen := make(map[int64]struct{}, len(l))
	for i, t := range l {
		if t.ID <= 0 || t.ID > MaxID {
			return fmt.Errorf("task %d: invalid id %d", i, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %d: duplicate id %d", i, t.ID)
		}
		seen[t.ID] = struct{}{}
		if strings.TrimSpace(t.Text) == "" {
			return fmt.Errorf("task %d: empty text", i)
		}
	}
	return nil
}

// Filter selects which tasks appear in a filtered view.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// ErrInvalidFilter is returned by ParseFilter for unknown names.
var ErrInvalidFilter = errors.New("invalid filter")

// ParseFilter parses "all", "active" or "completed" (case-insensitive).
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("%w: %s", ErrInvalidFilter, s)
	}
}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Match reports whether t passes the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
