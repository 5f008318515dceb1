// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "holocron/internal/delivery/context"
	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite checks the user, the target and the existing association, then inserts it.
// All checks and the insert share one transaction; the unique index catches racing inserts.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) (*entity.FavoriteSet, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidFavoriteKind
	}

	var set *entity.FavoriteSet
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureUser(ctx, repoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		if err := ensureTarget(ctx, repoFactory, kind, targetID); err != nil {
			return err
		}

		favoriteRepo := repoFactory.NewFavoriteRepository()

		exists, err := favoriteRepo.Exists(ctx, userID, kind, targetID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing favorite")
		}
		if exists {
			return domainerrors.ErrFavoriteAlreadyExists
		}

		switch kind {
		case entity.FavoriteKindCharacter:
			err = favoriteRepo.AddCharacter(ctx, userID, targetID)
		case entity.FavoriteKindPlanet:
			err = favoriteRepo.AddPlanet(ctx, userID, targetID)
		}
		if err != nil {
			return mapFavoriteWriteError(err, kind)
		}

		set, err = loadFavoriteSet(ctx, favoriteRepo, userID)

		return err
	})
	if err != nil {
		srv.log(ctx).Debug("Add favorite failed",
			slog.Uint64("user_id", uint64(userID)),
			slog.String("kind", kind.String()),
			slog.Uint64("target_id", uint64(targetID)),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Favorite added",
		slog.Uint64("user_id", uint64(userID)),
		slog.String("kind", kind.String()),
		slog.Uint64("target_id", uint64(targetID)),
	)

	return set, nil
}

// RemoveFavorite deletes the association inside a transaction that also verifies the user.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) error {
	if !kind.IsValid() {
		return domainerrors.ErrInvalidFavoriteKind
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureUser(ctx, repoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		favoriteRepo := repoFactory.NewFavoriteRepository()

		var err error
		switch kind {
		case entity.FavoriteKindCharacter:
			err = favoriteRepo.RemoveCharacter(ctx, userID, targetID)
		case entity.FavoriteKindPlanet:
			err = favoriteRepo.RemovePlanet(ctx, userID, targetID)
		}
		if err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return domainerrors.ErrFavoriteNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Favorite removed",
		slog.Uint64("user_id", uint64(userID)),
		slog.String("kind", kind.String()),
		slog.Uint64("target_id", uint64(targetID)),
	)

	return nil
}

// ListFavorites returns the user's favorite characters and planets.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uint) (*entity.FavoriteSet, error) {
	if err := ensureUser(ctx, srv.userRepo, userID); err != nil {
		return nil, err
	}

	return loadFavoriteSet(ctx, srv.favoriteRepo, userID)
}

func ensureUser(ctx context.Context, userRepo repository.UserRepository, userID uint) error {
	if _, err := userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return nil
}

func ensureTarget(ctx context.Context, repoFactory repository.RepositoryFactory, kind entity.FavoriteKind, targetID uint) error {
	switch kind {
	case entity.FavoriteKindCharacter:
		if _, err := repoFactory.NewCharacterRepository().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrCharacterNotFound) {
				return domainerrors.ErrCharacterNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to find character")
		}
	case entity.FavoriteKindPlanet:
		if _, err := repoFactory.NewPlanetRepository().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrPlanetNotFound) {
				return domainerrors.ErrPlanetNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to find planet")
		}
	default:
		return domainerrors.ErrInvalidFavoriteKind
	}

	return nil
}

func mapFavoriteWriteError(err error, kind entity.FavoriteKind) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateFavorite):
		return domainerrors.ErrFavoriteAlreadyExists
	case errors.Is(err, repository.ErrFavoriteReference):
		// The row vanished between the lookup and the insert.
		if kind == entity.FavoriteKindPlanet {
			return domainerrors.ErrPlanetNotFound
		}

		return domainerrors.ErrCharacterNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to insert favorite")
}

func loadFavoriteSet(ctx context.Context, favoriteRepo repository.FavoriteRepository, userID uint) (*entity.FavoriteSet, error) {
	characters, err := favoriteRepo.ListCharacters(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorite characters")
	}

	planets, err := favoriteRepo.ListPlanets(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorite planets")
	}

	return &entity.FavoriteSet{
		UserID:     userID,
		Characters: characters,
		Planets:    planets,
	}, nil
}
