package tasks

import "github.com/idilsaglam/tasklist/internal/model"

// Entry is a task as shown in a view, tagged with its position in the
// stored sequence so view actions can address it.
type Entry struct {
	Position int
	Task     model.Task
}

// Partition splits tasks into pending and completed views, preserving
// relative order. It never copies the sequence into a second store.
func Partition(tasks []model.Task) (pending, completed []Entry) {
	pending = []Entry{}
	completed = []Entry{}
	for i, t := range tasks {
		e := Entry{Position: i, Task: t}
		if t.IsComplete {
			completed = append(completed, e)
		} else {
			pending = append(pending, e)
		}
	}
	return pending, completed
}

func (s *Store) Pending() []Entry {
	p, _ := Partition(s.tasks)
	return p
}

func (s *Store) Completed() []Entry {
	_, c := Partition(s.tasks)
	return c
}

// Stats counts completed and pending tasks.
func Stats(tasks []model.Task) (done, pending int) {
	for _, t := range tasks {
		if t.IsComplete {
			done++
		} else {
			pending++
		}
	}
	return
}
