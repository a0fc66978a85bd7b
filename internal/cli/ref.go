package cli

import (
	"strconv"
	"strings"

	"github.com/idilsaglam/daily/internal/model"
)

// resolveRef turns a row reference into a todo ID.
// "3" is the third row of `daily ls` (1-based, full list); "#1736935200123"
// is an ID.
func resolveRef(ref string, todos []model.Todo) (int64, error) {
	ref = strings.TrimSpace(ref)
	if rest, ok := strings.CutPrefix(ref, "#"); ok {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return 0, usagef("not an id: %s", ref)
		}
		for _, t := range todos {
			if t.ID == id {
				return id, nil
			}
		}
		return 0, usagef("no todo with id %d\nHint: run `daily ls` to see valid rows", id)
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, usagef("not a number: %s", ref)
	}
	if n < 1 || n > len(todos) {
		return 0, usagef("row out of range: have %d, got %d\nHint: run `daily ls` to see valid rows", len(todos), n)
	}
	return todos[n-1].ID, nil
}
