package model

import "strings"

// Todo is the domain model for a single task.
// The JSON shape is the persisted slot format: {id, text, completed}.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Blank reports whether s has no visible text.
// Blank text is rejected on add and edit.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
