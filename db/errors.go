package db

import "errors"

var (
	// ErrTodoNotFound is returned when no todo exists with the given id
	ErrTodoNotFound = errors.New("todo not found")

	// ErrEmptyTitle is returned when a title is empty after trimming
	ErrEmptyTitle = errors.New("todo title is empty")
)
