package validators

import (
	"errors"
	"slices"
	"strings"

	"github.com/smulube/stashboard/internal/domain"
)

const maxNameLength = 100

var (
	ErrEmptyName    = errors.New("name must be specified")
	ErrLongName     = errors.New("name is too long")
	ErrInvalidLevel = errors.New("invalid level")
	ErrInvalidImage = errors.New("unknown status image")
	ErrEmptyStatus  = errors.New("status must be specified")
	ErrEmptyMessage = errors.New("message must be specified")
	ErrNothingToDo  = errors.New("no fields to update")
)

type ServiceRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type StatusRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Image       string `json:"image" form:"image"`
	Level       string `json:"level" form:"level"`
}

type EventRequest struct {
	Status        string `json:"status" form:"status"`
	Message       string `json:"message" form:"message"`
	Informational bool   `json:"informational" form:"informational"`
}

func ValidateService(r *ServiceRequest) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ErrEmptyName
	}
	return validateName(r.Name)
}

// ValidateServiceUpdate accepts a partial body but not an empty one.
func ValidateServiceUpdate(r *ServiceRequest) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" && r.Description == "" {
		return ErrNothingToDo
	}
	return validateName(r.Name)
}

func ValidateStatus(r *StatusRequest) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ErrEmptyName
	}
	if err := validateName(r.Name); err != nil {
		return err
	}
	if !domain.Level(r.Level).IsValid() {
		return ErrInvalidLevel
	}
	return validateImage(r.Image)
}

func ValidateStatusUpdate(r *StatusRequest) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" && r.Description == "" && r.Image == "" && r.Level == "" {
		return ErrNothingToDo
	}
	if err := validateName(r.Name); err != nil {
		return err
	}
	if r.Level != "" && !domain.Level(r.Level).IsValid() {
		return ErrInvalidLevel
	}
	if r.Image != "" {
		return validateImage(r.Image)
	}
	return nil
}

func ValidateEvent(r *EventRequest) error {
	r.Status = strings.TrimSpace(r.Status)
	if r.Status == "" {
		return ErrEmptyStatus
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

func validateName(name string) error {
	if len(name) > maxNameLength {
		return ErrLongName
	}
	return nil
}

func validateImage(image string) error {
	if !slices.Contains(domain.StatusImages, image) {
		return ErrInvalidImage
	}
	return nil
}
