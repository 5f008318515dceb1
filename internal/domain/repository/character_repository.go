package repository

import (
	"context"

	"holocron/internal/domain/entity"
	"holocron/internal/errors"
)

// ErrCharacterNotFound is returned when no character has the requested ID.
var ErrCharacterNotFound = errors.New("character not found")

// CharacterRepository defines persistence operations for characters.
type CharacterRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Character, error)
	List(ctx context.Context) ([]*entity.Character, error)
	Create(ctx context.Context, character *entity.Character) error
}
