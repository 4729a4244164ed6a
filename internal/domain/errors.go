package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrInvalidSortKey  = errors.New("invalid sort key")
	ErrFormClosed      = errors.New("no draft is open")
)
