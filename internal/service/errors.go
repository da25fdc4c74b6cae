package service

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceAlreadyExists = errors.New("service already exists")
	ErrServiceHasEvents     = errors.New("service still has events")
	ErrStatusNotFound       = errors.New("status not found")
	ErrStatusAlreadyExists  = errors.New("status already exists")
	ErrDefaultStatusExists  = errors.New("a NORMAL status already exists")
	ErrDefaultStatusLevel   = errors.New("the default status must keep NORMAL level")
	ErrEventNotFound        = errors.New("event not found")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidLevel         = errors.New("invalid level")
	ErrInvalidName          = errors.New("name does not produce a usable slug")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrBackendUnavailable   = errors.New("backend unavailable")
)

func backendErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}
