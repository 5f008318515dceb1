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

type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository is the constructor for planetRepository.
func NewPlanetRepository(db *gorm.DB) repository.PlanetRepository {
	return &planetRepository{
		db: db,
	}
}

// FindByID retrieves a single planet by ID.
func (repo *planetRepository) FindByID(ctx context.Context, id uint) (*entity.Planet, error) {
	var planetM model.PlanetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet by id")
	}

	return toPlanetDomain(&planetM), nil
}

// List returns every planet ordered by ID.
func (repo *planetRepository) List(ctx context.Context) ([]*entity.Planet, error) {
	var planetModels []*model.PlanetModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&planetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list planets")
	}

	return toPlanetDomains(planetModels), nil
}

// Create persists a new planet.
func (repo *planetRepository) Create(ctx context.Context, planet *entity.Planet) error {
	planetM := fromPlanetDomain(planet)

	if err := repo.db.WithContext(ctx).Create(planetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create planet")
	}

	planet.ID = planetM.ID

	return nil
}

// --- Mapper Functions ---

func toPlanetDomain(data *model.PlanetModel) *entity.Planet {
	if data == nil {
		return nil
	}

	return &entity.Planet{
		ID:             data.ID,
		Name:           data.Name,
		Diameter:       data.Diameter,
		RotationPeriod: data.RotationPeriod,
		OrbitalPeriod:  data.OrbitalPeriod,
		Gravity:        data.Gravity,
		Population:     data.Population,
		Climate:        data.Climate,
		Terrain:        data.Terrain,
		SurfaceWater:   data.SurfaceWater,
	}
}

func toPlanetDomains(data []*model.PlanetModel) []*entity.Planet {
	planets := make([]*entity.Planet, 0, len(data))
	for _, planetM := range data {
		planets = append(planets, toPlanetDomain(planetM))
	}

	return planets
}

func fromPlanetDomain(data *entity.Planet) *model.PlanetModel {
	if data == nil {
		return nil
	}

	return &model.PlanetModel{
		ID:             data.ID,
		Name:           data.Name,
		Diameter:       data.Diameter,
		RotationPeriod: data.RotationPeriod,
		OrbitalPeriod:  data.OrbitalPeriod,
		Gravity:        data.Gravity,
		Population:     data.Population,
		Climate:        data.Climate,
		Terrain:        data.Terrain,
		SurfaceWater:   data.SurfaceWater,
	}
}
