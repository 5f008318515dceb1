package gormdb_test

import (
	"context"
	"testing"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	"holocron/internal/infra/persistence/gormdb"
	"holocron/internal/infra/persistence/model"
	"holocron/internal/testutil"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindAndList(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)
	repo := gormdb.NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.FindByID(ctx, catalog.Users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "luke@rebellion.org", user.Email)
	require.NotNil(t, user.Username)
	assert.Equal(t, "luke", *user.Username)

	byEmail, err := repo.FindByEmail(ctx, "anon@outer-rim.net")
	require.NoError(t, err)
	assert.Nil(t, byEmail.Username)
	assert.False(t, byEmail.IsActive)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "vader@empire.gov")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Less(t, users[0].ID, users[1].ID)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	testutil.SeedCatalog(t, db)
	repo := gormdb.NewUserRepository(db)

	err := repo.Create(context.Background(), &entity.User{
		Email:    "luke@rebellion.org",
		Password: "hash",
		IsActive: true,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestCharacterRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)
	repo := gormdb.NewCharacterRepository(db)
	ctx := context.Background()

	character, err := repo.FindByID(ctx, catalog.Characters[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "C-3PO", *character.Name)
	assert.Equal(t, 167, *character.Height)
	assert.Nil(t, character.Mass)
	assert.Nil(t, character.HairColor)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrCharacterNotFound)

	characters, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, characters, 2)
}

func TestPlanetRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)
	repo := gormdb.NewPlanetRepository(db)
	ctx := context.Background()

	planet, err := repo.FindByID(ctx, catalog.Planets[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Tatooine", *planet.Name)
	assert.Equal(t, int64(200000), *planet.Population)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrPlanetNotFound)

	planets, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 2)
}

func TestFavoriteRepository_AddListRemove(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)
	repo := gormdb.NewFavoriteRepository(db)
	ctx := context.Background()

	userID := catalog.Users[0].ID
	tatooine := catalog.Planets[0].ID
	hoth := catalog.Planets[1].ID
	luke := catalog.Characters[0].ID

	require.NoError(t, repo.AddPlanet(ctx, userID, hoth))
	require.NoError(t, repo.AddPlanet(ctx, userID, tatooine))
	require.NoError(t, repo.AddCharacter(ctx, userID, luke))

	planets, err := repo.ListPlanets(ctx, userID)
	require.NoError(t, err)
	require.Len(t, planets, 2)
	assert.Equal(t, hoth, planets[0].ID, "insertion order is preserved")
	assert.Equal(t, tatooine, planets[1].ID)
	assert.Equal(t, "Tatooine", *planets[1].Name)

	characters, err := repo.ListCharacters(ctx, userID)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, luke, characters[0].ID)

	exists, err := repo.Exists(ctx, userID, entity.FavoriteKindPlanet, tatooine)
	require.NoError(t, err)
	assert.True(t, exists)

	// Hoth is a favorite planet and shares its id with C-3PO, who is not a favorite.
	require.Equal(t, hoth, catalog.Characters[1].ID)
	exists, err = repo.Exists(ctx, userID, entity.FavoriteKindCharacter, hoth)
	require.NoError(t, err)
	assert.False(t, exists, "a planet id must not match the character column")

	require.NoError(t, repo.RemovePlanet(ctx, userID, tatooine))
	assert.ErrorIs(t, repo.RemovePlanet(ctx, userID, tatooine), repository.ErrFavoriteNotFound)

	planets, err = repo.ListPlanets(ctx, userID)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	assert.Equal(t, hoth, planets[0].ID)

	other, err := repo.ListPlanets(ctx, catalog.Users[1].ID)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFavoriteRepository_UniqueIndexRejectsDuplicates(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)
	repo := gormdb.NewFavoriteRepository(db)
	ctx := context.Background()

	userID := catalog.Users[0].ID
	luke := catalog.Characters[0].ID

	require.NoError(t, repo.AddCharacter(ctx, userID, luke))
	assert.ErrorIs(t, repo.AddCharacter(ctx, userID, luke), repository.ErrDuplicateFavorite)

	// Same numeric id on the other kind is a different favorite.
	require.NoError(t, repo.AddPlanet(ctx, userID, catalog.Planets[0].ID))
}

func TestFavoriteRepository_ForeignKeysRejectDanglingRows(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)
	repo := gormdb.NewFavoriteRepository(db)
	ctx := context.Background()

	err := repo.AddPlanet(ctx, catalog.Users[0].ID, 999)
	assert.ErrorIs(t, err, repository.ErrFavoriteReference)

	err = repo.AddCharacter(ctx, 999, catalog.Characters[0].ID)
	assert.ErrorIs(t, err, repository.ErrFavoriteReference)
}

func TestFavoriteModel_CheckConstraintRequiresSingleTarget(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)

	both := &model.FavoriteModel{
		UserID:      catalog.Users[0].ID,
		CharacterID: &catalog.Characters[0].ID,
		PlanetID:    &catalog.Planets[0].ID,
	}
	assert.Error(t, db.Omit("User", "Character", "Planet").Create(both).Error)

	neither := &model.FavoriteModel{UserID: catalog.Users[0].ID}
	assert.Error(t, db.Omit("User", "Character", "Planet").Create(neither).Error)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog := testutil.SeedCatalog(t, db)
	txManager := gormdb.NewTransactionManager(db)
	ctx := context.Background()
	userID := catalog.Users[0].ID

	boom := errors.New("boom")
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewFavoriteRepository().AddPlanet(ctx, userID, catalog.Planets[0].ID); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	planets, err := gormdb.NewFavoriteRepository(db).ListPlanets(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, planets)

	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewFavoriteRepository().AddPlanet(ctx, userID, catalog.Planets[0].ID)
	})
	require.NoError(t, err)

	planets, err = gormdb.NewFavoriteRepository(db).ListPlanets(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, planets, 1)
}
