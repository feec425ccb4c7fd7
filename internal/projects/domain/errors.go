package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound matches every EntityNotFoundError via errors.Is.
var ErrNotFound = errors.New("entity not found")

const (
	EntityProject = "project"
	EntityPlan    = "plan"
)

// EntityNotFoundError names the entity kind and guid that could not be found.
type EntityNotFoundError struct {
	Entity string
	GUID   uuid.UUID
}

func NewNotFound(entity string, guid uuid.UUID) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: entity, GUID: guid}
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("no %s exists for the guid: %s", e.Entity, e.GUID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
