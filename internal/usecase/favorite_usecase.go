package usecase

import (
	"context"

	"holocron/internal/domain/entity"
)

// FavoriteUsecase defines the interface for managing a user's favorite characters and planets.
type FavoriteUsecase interface {
	// AddFavorite links the target to the user's favorites and returns the updated set.
	// Fails with NotFound when the user or target is missing and Conflict when already present.
	AddFavorite(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) (*entity.FavoriteSet, error)

	// RemoveFavorite unlinks the target. Fails with NotFound when the user or the favorite is missing.
	RemoveFavorite(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) error

	// ListFavorites returns both favorite characters and favorite planets for the user.
	ListFavorites(ctx context.Context, userID uint) (*entity.FavoriteSet, error)
}
