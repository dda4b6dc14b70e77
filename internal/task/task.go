package task

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Task is a unit of work with an ID, a description and a completion flag.
type Task struct {
	ID        int    `json:"id" yaml:"id"`
	Content   string `json:"content" yaml:"content"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Row is one display line of a store listing.
type Row struct {
	ID      int
	Marker  string
	Content string
}

// String renders the row as "[1] x - buy milk".
func (r Row) String() string {
	return fmt.Sprintf("[%d] %s - %s", r.ID, r.Marker, r.Content)
}

// Marker returns "x" for a completed task and a single space otherwise.
func (t Task) Marker() string {
	if t.Completed {
		return "x"
	}
	return " "
}

// Store is an ordered collection of tasks with its ID counter.
// Insertion order is preserved. Store is not safe for concurrent use.
type Store struct {
	tasks  []Task
	nextID int
}

// New returns a store over tasks with the counter derived from them.
func New(tasks []Task) *Store {
	return Restore(tasks, 0)
}

// Restore returns a store over tasks with a persisted counter.
// The counter is raised when it would hand out an ID that is already taken
// or would fall behind len(tasks)+1.
func Restore(tasks []Task, nextID int) *Store {
	s := &Store{tasks: slices.Clone(tasks), nextID: nextID}
	floor := len(s.tasks) + 1
	for _, t := range s.tasks {
		if t.ID >= floor {
			floor = t.ID
			if floor < math.MaxInt {
				floor++
			}
		}
	}
	if s.nextID < floor {
		s.nextID = floor
	}
	return s
}

// Add appends a new, not yet completed task and returns it. Content is
// stored exactly as given. Add fails with ErrIDsExhausted once the counter
// reaches math.MaxInt; the store is unchanged on error.
func (s *Store) Add(content string) (Task, error) {
	if s.nextID == math.MaxInt {
		return Task{}, &Error{ID: s.nextID, Err: ErrIDsExhausted}
	}
	t := Task{
		ID:      s.nextID,
		Content: content,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Find returns the first task with the given ID.
func (s *Store) Find(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Complete marks the first task with the given ID as completed and returns
// it. The store is unchanged on error.
func (s *Store) Complete(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, &Error{ID: id, Err: ErrNotFound}
	}
	if s.tasks[i].Completed {
		return s.tasks[i], &Error{ID: id, Err: ErrAlreadyCompleted}
	}
	s.tasks[i].Completed = true
	return s.tasks[i], nil
}

// Rows yields one display row per task in store order.
// The sequence can be ranged over any number of times.
func (s *Store) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, t := range s.tasks {
			if !yield(Row{ID: t.ID, Marker: t.Marker(), Content: t.Content}) {
				return
			}
		}
	}
}

// Tasks returns a copy of the tasks in store order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the ID the next Add will assign.
func (s *Store) NextID() int {
	return s.nextID
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}
