// Package view derives what the UI shows from the store's list.
package view

import "github.com/idilsaglam/daily/internal/model"

// Project returns the todos matching f, in store order, as a new slice.
// Unknown filters behave like FilterAll.
func Project(todos []model.Todo, f model.Filter) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		switch f {
		case model.FilterActive:
			if t.Completed {
				continue
			}
		case model.FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Stats counts completed and pending todos for headers.
func Stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
