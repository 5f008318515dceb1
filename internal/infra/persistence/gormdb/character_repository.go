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

type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository is the constructor for characterRepository.
func NewCharacterRepository(db *gorm.DB) repository.CharacterRepository {
	return &characterRepository{
		db: db,
	}
}

// FindByID retrieves a single character by ID.
func (repo *characterRepository) FindByID(ctx context.Context, id uint) (*entity.Character, error) {
	var characterM model.CharacterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&characterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCharacterNotFound
		}

		return nil, errors.Wrap(err, "failed to find character by id")
	}

	return toCharacterDomain(&characterM), nil
}

// List returns every character ordered by ID.
func (repo *characterRepository) List(ctx context.Context) ([]*entity.Character, error) {
	var characterModels []*model.CharacterModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&characterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return toCharacterDomains(characterModels), nil
}

// Create persists a new character.
func (repo *characterRepository) Create(ctx context.Context, character *entity.Character) error {
	characterM := fromCharacterDomain(character)

	if err := repo.db.WithContext(ctx).Create(characterM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create character")
	}

	character.ID = characterM.ID

	return nil
}

// --- Mapper Functions ---

func toCharacterDomain(data *model.CharacterModel) *entity.Character {
	if data == nil {
		return nil
	}

	return &entity.Character{
		ID:        data.ID,
		Name:      data.Name,
		Height:    data.Height,
		Mass:      data.Mass,
		HairColor: data.HairColor,
		SkinColor: data.SkinColor,
		BirthYear: data.BirthYear,
		Gender:    data.Gender,
	}
}

func toCharacterDomains(data []*model.CharacterModel) []*entity.Character {
	characters := make([]*entity.Character, 0, len(data))
	for _, characterM := range data {
		characters = append(characters, toCharacterDomain(characterM))
	}

	return characters
}

func fromCharacterDomain(data *entity.Character) *model.CharacterModel {
	if data == nil {
		return nil
	}

	return &model.CharacterModel{
		ID:        data.ID,
		Name:      data.Name,
		Height:    data.Height,
		Mass:      data.Mass,
		HairColor: data.HairColor,
		SkinColor: data.SkinColor,
		BirthYear: data.BirthYear,
		Gender:    data.Gender,
	}
}
