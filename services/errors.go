package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks requests rejected before any mutation.
	ErrInvalidInput = errors.New("invalid input")
)

// Entity names the kind of record a NotFoundError refers to.
type Entity string

const (
	EntityGame          Entity = "game"
	EntityGenre         Entity = "genre"
	EntityEditor        Entity = "editor"
	EntityGenreOrEditor Entity = "genre or editor"
)

var notFoundMessages = map[Entity]string{
	EntityGame:          "Game not found.",
	EntityGenre:         "Genre not found.",
	EntityEditor:        "Editor not found.",
	EntityGenreOrEditor: "Genre or editor not found.",
}

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Entity Entity
}

func (e *NotFoundError) Error() string {
	if msg, ok := notFoundMessages[e.Entity]; ok {
		return msg
	}
	return string(e.Entity) + " not found."
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity Entity) error {
	return &NotFoundError{Entity: entity}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
