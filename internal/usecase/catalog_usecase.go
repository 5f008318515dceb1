package usecase

import (
	"context"

	"holocron/internal/domain/entity"
)

// CatalogUsecase exposes read-only lookups over users, characters and planets.
type CatalogUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ListCharacters(ctx context.Context) ([]*entity.Character, error)
	GetCharacter(ctx context.Context, id uint) (*entity.Character, error)
	ListPlanets(ctx context.Context) ([]*entity.Planet, error)
	GetPlanet(ctx context.Context, id uint) (*entity.Planet, error)
}
