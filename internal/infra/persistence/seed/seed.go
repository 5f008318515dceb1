// Package seed loads catalog fixtures into the store.
package seed

import (
	"context"
	"log/slog"
	"os"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/domain/service"
	"holocron/internal/errors"

	"github.com/goccy/go-yaml"
	"go.uber.org/fx"
)

// Fixtures is the YAML document accepted by the seeder.
type Fixtures struct {
	Users      []UserFixture      `yaml:"users"`
	Characters []CharacterFixture `yaml:"characters"`
	Planets    []PlanetFixture    `yaml:"planets"`
}

// UserFixture holds a plaintext password; it is hashed before insertion.
type UserFixture struct {
	Email    string  `yaml:"email"`
	Username *string `yaml:"username"`
	Password string  `yaml:"password"`
	IsActive bool    `yaml:"isActive"`
}

type CharacterFixture struct {
	Name      *string `yaml:"name"`
	Height    *int    `yaml:"height"`
	Mass      *int    `yaml:"mass"`
	HairColor *string `yaml:"hairColor"`
	SkinColor *string `yaml:"skinColor"`
	BirthYear *string `yaml:"birthYear"`
	Gender    *string `yaml:"gender"`
}

type PlanetFixture struct {
	Name           *string `yaml:"name"`
	Diameter       *int    `yaml:"diameter"`
	RotationPeriod *int    `yaml:"rotationPeriod"`
	OrbitalPeriod  *int    `yaml:"orbitalPeriod"`
	Gravity        *string `yaml:"gravity"`
	Population     *int64  `yaml:"population"`
	Climate        *string `yaml:"climate"`
	Terrain        *string `yaml:"terrain"`
	SurfaceWater   *int    `yaml:"surfaceWater"`
}

// Result counts the inserted rows.
type Result struct {
	Users      int
	Characters int
	Planets    int
}

// Parse decodes a fixture document. Unknown keys are rejected.
func Parse(data []byte) (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.UnmarshalWithOptions(data, &fixtures, yaml.Strict()); err != nil {
		return nil, errors.Wrap(err, "failed to parse fixtures")
	}

	for i, u := range fixtures.Users {
		if u.Email == "" {
			return nil, errors.Errorf("users[%d]: email is required", i)
		}
		if u.Password == "" {
			return nil, errors.Errorf("users[%d]: password is required", i)
		}
	}

	return &fixtures, nil
}

// LoadFile reads and parses a fixture file.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fixtures %s", path)
	}

	return Parse(data)
}

// Params holds dependencies for Seeder, injected by Fx.
type Params struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// Seeder inserts fixtures in a single transaction.
type Seeder struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

func NewSeeder(params Params) *Seeder {
	return &Seeder{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// Seed inserts every fixture or nothing.
func (s *Seeder) Seed(ctx context.Context, fixtures *Fixtures) (*Result, error) {
	// Hash before opening the transaction; bcrypt is slow.
	users := make([]*entity.User, 0, len(fixtures.Users))
	for _, u := range fixtures.Users {
		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash password for %s", u.Email)
		}

		users = append(users, &entity.User{
			Email:    u.Email,
			Username: u.Username,
			Password: hash,
			IsActive: u.IsActive,
		})
	}

	result := &Result{}
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		for _, user := range users {
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to create user %s", user.Email)
			}
			result.Users++
		}

		characterRepo := repoFactory.NewCharacterRepository()
		for _, c := range fixtures.Characters {
			character := &entity.Character{
				Name:      c.Name,
				Height:    c.Height,
				Mass:      c.Mass,
				HairColor: c.HairColor,
				SkinColor: c.SkinColor,
				BirthYear: c.BirthYear,
				Gender:    c.Gender,
			}
			if err := characterRepo.Create(ctx, character); err != nil {
				return errors.Wrap(err, "failed to create character")
			}
			result.Characters++
		}

		planetRepo := repoFactory.NewPlanetRepository()
		for _, p := range fixtures.Planets {
			planet := &entity.Planet{
				Name:           p.Name,
				Diameter:       p.Diameter,
				RotationPeriod: p.RotationPeriod,
				OrbitalPeriod:  p.OrbitalPeriod,
				Gravity:        p.Gravity,
				Population:     p.Population,
				Climate:        p.Climate,
				Terrain:        p.Terrain,
				SurfaceWater:   p.SurfaceWater,
			}
			if err := planetRepo.Create(ctx, planet); err != nil {
				return errors.Wrap(err, "failed to create planet")
			}
			result.Planets++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fixtures loaded",
		slog.Int("users", result.Users),
		slog.Int("characters", result.Characters),
		slog.Int("planets", result.Planets),
	)

	return result, nil
}
