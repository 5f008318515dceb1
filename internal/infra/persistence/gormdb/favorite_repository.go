package gormdb

import (
	"context"

	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements repository.FavoriteRepository on the favorites table.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// AddCharacter links a character to the user's favorites.
func (repo *favoriteRepository) AddCharacter(ctx context.Context, userID, characterID uint) error {
	return repo.create(ctx, &model.FavoriteModel{
		UserID:      userID,
		CharacterID: &characterID,
	})
}

// AddPlanet links a planet to the user's favorites.
func (repo *favoriteRepository) AddPlanet(ctx context.Context, userID, planetID uint) error {
	return repo.create(ctx, &model.FavoriteModel{
		UserID:   userID,
		PlanetID: &planetID,
	})
}

// RemoveCharacter deletes the user→character link.
func (repo *favoriteRepository) RemoveCharacter(ctx context.Context, userID, characterID uint) error {
	return repo.delete(ctx, userID, entity.FavoriteKindCharacter, characterID)
}

// RemovePlanet deletes the user→planet link.
func (repo *favoriteRepository) RemovePlanet(ctx context.Context, userID, planetID uint) error {
	return repo.delete(ctx, userID, entity.FavoriteKindPlanet, planetID)
}

// ListCharacters returns the user's favorite characters in insertion order.
func (repo *favoriteRepository) ListCharacters(ctx context.Context, userID uint) ([]*entity.Character, error) {
	var characterModels []*model.CharacterModel

	if err := repo.db.WithContext(ctx).
		Select("characters.*").
		Joins("JOIN favorites ON favorites.character_id = characters.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id ASC").
		Find(&characterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorite characters")
	}

	return toCharacterDomains(characterModels), nil
}

// ListPlanets returns the user's favorite planets in insertion order.
func (repo *favoriteRepository) ListPlanets(ctx context.Context, userID uint) ([]*entity.Planet, error) {
	var planetModels []*model.PlanetModel

	if err := repo.db.WithContext(ctx).
		Select("planets.*").
		Joins("JOIN favorites ON favorites.planet_id = planets.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id ASC").
		Find(&planetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorite planets")
	}

	return toPlanetDomains(planetModels), nil
}

// Exists reports whether the user already has the given favorite.
func (repo *favoriteRepository) Exists(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) (bool, error) {
	column, err := targetColumn(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

func (repo *favoriteRepository) create(ctx context.Context, favoriteM *model.FavoriteModel) error {
	if err := repo.db.WithContext(ctx).Omit("User", "Character", "Planet").Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFavoriteReference
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("favorite must reference exactly one target")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	return nil
}

func (repo *favoriteRepository) delete(ctx context.Context, userID uint, kind entity.FavoriteKind, targetID uint) error {
	column, err := targetColumn(kind)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// targetColumn maps a kind to its foreign key column. The result is a fixed
// identifier, never user input, so it is safe to splice into the WHERE clause.
func targetColumn(kind entity.FavoriteKind) (string, error) {
	switch kind {
	case entity.FavoriteKindCharacter:
		return "character_id", nil
	case entity.FavoriteKindPlanet:
		return "planet_id", nil
	default:
		return "", domainerrors.ErrInvalidFavoriteKind.WrapMessage(string(kind))
	}
}
