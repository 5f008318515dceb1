// Package testutil provides shared fixtures for tests that need a real store.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"holocron/internal/domain/entity"
	"holocron/internal/infra/persistence/gormdb"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB returns a migrated, private in-memory database for t.
// The pool is capped at one connection so every statement sees the same
// in-memory database and transactions serialise.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, gormdb.Migrate(db))

	return db
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Catalog is a small dataset inserted by SeedCatalog.
type Catalog struct {
	Users      []*entity.User
	Characters []*entity.Character
	Planets    []*entity.Planet
}

// SeedCatalog inserts two users, two characters and two planets.
// The second character and planet leave optional attributes unset.
func SeedCatalog(t *testing.T, db *gorm.DB) *Catalog {
	t.Helper()

	ctx := context.Background()
	catalog := &Catalog{
		Users: []*entity.User{
			{Email: "luke@rebellion.org", Username: Ptr("luke"), Password: "hashed-secret", IsActive: true},
			{Email: "anon@outer-rim.net", Password: "hashed-secret", IsActive: false},
		},
		Characters: []*entity.Character{
			{
				Name:      Ptr("Luke Skywalker"),
				Height:    Ptr(172),
				Mass:      Ptr(77),
				HairColor: Ptr("blond"),
				SkinColor: Ptr("fair"),
				BirthYear: Ptr("19BBY"),
				Gender:    Ptr("male"),
			},
			{Name: Ptr("C-3PO"), Height: Ptr(167)},
		},
		Planets: []*entity.Planet{
			{
				Name:           Ptr("Tatooine"),
				Diameter:       Ptr(10465),
				RotationPeriod: Ptr(23),
				OrbitalPeriod:  Ptr(304),
				Gravity:        Ptr("1 standard"),
				Population:     Ptr(int64(200000)),
				Climate:        Ptr("arid"),
				Terrain:        Ptr("desert"),
				SurfaceWater:   Ptr(1),
			},
			{Name: Ptr("Hoth"), Climate: Ptr("frozen")},
		},
	}

	users := gormdb.NewUserRepository(db)
	for _, u := range catalog.Users {
		require.NoError(t, users.Create(ctx, u))
	}

	characters := gormdb.NewCharacterRepository(db)
	for _, c := range catalog.Characters {
		require.NoError(t, characters.Create(ctx, c))
	}

	planets := gormdb.NewPlanetRepository(db)
	for _, p := range catalog.Planets {
		require.NoError(t, planets.Create(ctx, p))
	}

	return catalog
}
