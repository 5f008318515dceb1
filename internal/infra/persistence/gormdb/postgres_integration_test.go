//go:build integration

package gormdb_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"holocron/config"
	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/infra/persistence/gormdb"
	"holocron/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const (
	pgUser     = "holocron"
	pgPassword = "holocron"
	pgDatabase = "holocron"
)

// startPostgres runs a throwaway postgres container and returns a migrated connection to it.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			// The server restarts once after running the init scripts.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.URL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), pgDatabase)

	db, driver, err := gormdb.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.Equal(t, gormdb.DriverPostgres, driver)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, gormdb.Migrate(db))

	return db
}

func TestPostgres_FavoriteConstraints(t *testing.T) {
	db := startPostgres(t)
	catalog := testutil.SeedCatalog(t, db)
	favorites := gormdb.NewFavoriteRepository(db)
	ctx := context.Background()

	userID := catalog.Users[0].ID
	luke := catalog.Characters[0].ID
	tatooine := catalog.Planets[0].ID

	require.NoError(t, favorites.AddCharacter(ctx, userID, luke))
	require.NoError(t, favorites.AddPlanet(ctx, userID, tatooine))

	assert.ErrorIs(t, favorites.AddCharacter(ctx, userID, luke), repository.ErrDuplicateFavorite)
	assert.ErrorIs(t, favorites.AddPlanet(ctx, userID, 999), repository.ErrFavoriteReference)

	exists, err := favorites.Exists(ctx, userID, entity.FavoriteKindPlanet, tatooine)
	require.NoError(t, err)
	assert.True(t, exists)

	characters, err := favorites.ListCharacters(ctx, userID)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Luke Skywalker", *characters[0].Name)

	require.NoError(t, favorites.RemovePlanet(ctx, userID, tatooine))
	assert.ErrorIs(t, favorites.RemovePlanet(ctx, userID, tatooine), repository.ErrFavoriteNotFound)
}

func TestPostgres_DuplicateUserEmail(t *testing.T) {
	db := startPostgres(t)
	catalog := testutil.SeedCatalog(t, db)
	users := gormdb.NewUserRepository(db)

	dup := *catalog.Users[0]
	dup.ID = 0
	dup.Username = nil
	assert.ErrorIs(t, users.Create(context.Background(), &dup), repository.ErrDuplicateUser)
}

func TestPostgres_TransactionRollback(t *testing.T) {
	db := startPostgres(t)
	catalog := testutil.SeedCatalog(t, db)
	txManager := gormdb.NewTransactionManager(db)
	ctx := context.Background()
	userID := catalog.Users[0].ID

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewFavoriteRepository().AddPlanet(ctx, userID, catalog.Planets[1].ID); err != nil {
			return err
		}

		// Fails on the unique index and aborts the whole transaction.
		return f.NewFavoriteRepository().AddPlanet(ctx, userID, catalog.Planets[1].ID)
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateFavorite)

	planets, err := gormdb.NewFavoriteRepository(db).ListPlanets(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, planets)
}
