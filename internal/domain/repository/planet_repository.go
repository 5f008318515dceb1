package repository

import (
	"context"

	"holocron/internal/domain/entity"
	"holocron/internal/errors"
)

// ErrPlanetNotFound is returned when no planet has the requested ID.
var ErrPlanetNotFound = errors.New("planet not found")

// PlanetRepository defines persistence operations for planets.
type PlanetRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Planet, error)
	List(ctx context.Context) ([]*entity.Planet, error)
	Create(ctx context.Context, planet *entity.Planet) error
}
