package repository

import (
	"context"

	"holocron/internal/domain/entity"
	"holocron/internal/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when the user has no such favorite.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the favorite already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
	// ErrFavoriteReference is returned when the user or target row does not exist.
	ErrFavoriteReference = errors.New("favorite references a missing row")
)

// FavoriteRepository manages the favorites association table.
// Callers only ever see ids and materialised entities, never a live collection.
type FavoriteRepository interface {
	// AddCharacter links a character to the user's favorites.
	AddCharacter(ctx context.Context, userID, characterID uint) error

	// AddPlanet links a planet to the user's favorites.
	AddPlanet(ctx context.Context, userID, planetID uint) error

	// RemoveCharacter deletes the user→character link. Returns ErrFavoriteNotFound when absent.
	RemoveCharacter(ctx context.Context, userID, characterID uint) error

	// RemovePlanet deletes the user→planet link. Returns ErrFavoriteNotFound when absent.
	RemovePlanet(ctx context.Context, userID, planetID uint) error

	// ListCharacters returns the user's favorite characters in the order they were added.
	ListCharacters(ctx context.Context, userID uint) ([]*entity.Character, error)

	// ListPlanets returns the user's favorite planets in the order they were added.
	ListPlanets(ctx context.Context, userID uint) ([]*entity.Planet, error)

	// Exists reports whether the user already has the given favorite.
	Exists(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) (bool, error)
}
