package repoerrs

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrHasDependents = errors.New("record is still referenced")
	ErrInvalidValue  = errors.New("value rejected by a check constraint")
)
