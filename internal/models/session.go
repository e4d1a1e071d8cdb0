package models

import "fmt"

// EditSession tracks which recipe, if any, is being edited. It replaces a hidden
// "editing index" in the shell: store operations take a session and return the next one.
//
// The zero value is idle, but its Index 0 names a real position; IdleSession
// returns the canonical idle value with Index -1.
type EditSession struct {
	Active bool
	Index  int
	Name   string
}

// IdleSession returns a session with no edit in progress.
func IdleSession() EditSession {
	return EditSession{Index: -1}
}

// Editing returns a session editing the recipe at index.
func Editing(index int, name string) EditSession {
	return EditSession{Active: true, Index: index, Name: name}
}

// IsEditing reports whether an edit is in progress.
func (s EditSession) IsEditing() bool {
	return s.Active
}

func (s EditSession) String() string {
	if !s.Active {
		return "idle"
	}
	return fmt.Sprintf("editing[%d] %s", s.Index, s.Name)
}
