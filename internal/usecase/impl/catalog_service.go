package impl

import (
	"context"

	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	userRepo      repository.UserRepository
	characterRepo repository.CharacterRepository
	planetRepo    repository.PlanetRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	CharacterRepo repository.CharacterRepository
	PlanetRepo    repository.PlanetRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		userRepo:      params.UserRepo,
		characterRepo: params.CharacterRepo,
		planetRepo:    params.PlanetRepo,
	}
}

func (s *catalogService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return users, nil
}

func (s *catalogService) ListCharacters(ctx context.Context) ([]*entity.Character, error) {
	characters, err := s.characterRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list characters")
	}

	return characters, nil
}

func (s *catalogService) GetCharacter(ctx context.Context, id uint) (*entity.Character, error) {
	character, err := s.characterRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			return nil, domainerrors.ErrCharacterNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find character")
	}

	return character, nil
}

func (s *catalogService) ListPlanets(ctx context.Context) ([]*entity.Planet, error) {
	planets, err := s.planetRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list planets")
	}

	return planets, nil
}

func (s *catalogService) GetPlanet(ctx context.Context, id uint) (*entity.Planet, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return nil, domainerrors.ErrPlanetNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find planet")
	}

	return planet, nil
}
