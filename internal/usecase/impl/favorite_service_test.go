package impl

import (
	"context"
	"testing"

	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	mockRepo "holocron/internal/mocks/repository"
	"holocron/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service       usecase.FavoriteUsecase
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	userRepo      *mockRepo.MockUserRepository
	characterRepo *mockRepo.MockCharacterRepository
	planetRepo    *mockRepo.MockPlanetRepository
	favoriteRepo  *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	fx := favoriteServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		characterRepo: mockRepo.NewMockCharacterRepository(t),
		planetRepo:    mockRepo.NewMockPlanetRepository(t),
		favoriteRepo:  mockRepo.NewMockFavoriteRepository(t),
	}

	fx.service = NewFavoriteService(FavoriteServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		FavoriteRepo: fx.favoriteRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

// inTx wires the factory so that every repository it hands out is one of the fixture mocks.
func (fx favoriteServiceFixtures) inTx() {
	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().NewCharacterRepository().Return(fx.characterRepo).Maybe()
	fx.factory.EXPECT().NewPlanetRepository().Return(fx.planetRepo).Maybe()
	fx.factory.EXPECT().NewFavoriteRepository().Return(fx.favoriteRepo).Maybe()
}

func TestFavoriteService_AddFavorite_Planet(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	tatooine := newPlanet(5, "Tatooine")

	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1, IsActive: true}, nil)
	fx.planetRepo.EXPECT().FindByID(ctx, uint(5)).Return(tatooine, nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, uint(1), entity.FavoriteKindPlanet, uint(5)).Return(false, nil)
	fx.favoriteRepo.EXPECT().AddPlanet(ctx, uint(1), uint(5)).Return(nil)
	fx.favoriteRepo.EXPECT().ListCharacters(ctx, uint(1)).Return([]*entity.Character{}, nil)
	fx.favoriteRepo.EXPECT().ListPlanets(ctx, uint(1)).Return([]*entity.Planet{tatooine}, nil)

	set, err := fx.service.AddFavorite(ctx, 1, entity.FavoriteKindPlanet, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(1), set.UserID)
	assert.Empty(t, set.Characters)
	require.Len(t, set.Planets, 1)
	assert.Equal(t, uint(5), set.Planets[0].ID)
}

func TestFavoriteService_AddFavorite_Character(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	luke := newCharacter(1, "Luke Skywalker")

	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.characterRepo.EXPECT().FindByID(ctx, uint(1)).Return(luke, nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, uint(1), entity.FavoriteKindCharacter, uint(1)).Return(false, nil)
	fx.favoriteRepo.EXPECT().AddCharacter(ctx, uint(1), uint(1)).Return(nil)
	fx.favoriteRepo.EXPECT().ListCharacters(ctx, uint(1)).Return([]*entity.Character{luke}, nil)
	fx.favoriteRepo.EXPECT().ListPlanets(ctx, uint(1)).Return([]*entity.Planet{}, nil)

	set, err := fx.service.AddFavorite(ctx, 1, entity.FavoriteKindCharacter, 1)
	require.NoError(t, err)
	require.Len(t, set.Characters, 1)
	assert.Equal(t, "Luke Skywalker", *set.Characters[0].Name)
}

func TestFavoriteService_AddFavorite_UserNotFound(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.AddFavorite(ctx, 42, entity.FavoriteKindPlanet, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFavoriteService_AddFavorite_TargetNotFound(t *testing.T) {
	tests := []struct {
		name    string
		kind    entity.FavoriteKind
		setup   func(fx favoriteServiceFixtures, ctx context.Context)
		wantErr error
	}{
		{
			name: "missing planet",
			kind: entity.FavoriteKindPlanet,
			setup: func(fx favoriteServiceFixtures, ctx context.Context) {
				fx.planetRepo.EXPECT().FindByID(ctx, uint(999)).Return(nil, repository.ErrPlanetNotFound)
			},
			wantErr: domainerrors.ErrPlanetNotFound,
		},
		{
			name: "missing character",
			kind: entity.FavoriteKindCharacter,
			setup: func(fx favoriteServiceFixtures, ctx context.Context) {
				fx.characterRepo.EXPECT().FindByID(ctx, uint(999)).Return(nil, repository.ErrCharacterNotFound)
			},
			wantErr: domainerrors.ErrCharacterNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFavoriteService(t)
			fx.inTx()

			ctx := context.Background()
			fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
			tt.setup(fx, ctx)

			_, err := fx.service.AddFavorite(ctx, 1, tt.kind, 999)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.planetRepo.EXPECT().FindByID(ctx, uint(5)).Return(newPlanet(5, "Tatooine"), nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, uint(1), entity.FavoriteKindPlanet, uint(5)).Return(true, nil)

	_, err := fx.service.AddFavorite(ctx, 1, entity.FavoriteKindPlanet, 5)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
}

func TestFavoriteService_AddFavorite_RacingInsertBecomesConflict(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.planetRepo.EXPECT().FindByID(ctx, uint(5)).Return(newPlanet(5, "Tatooine"), nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, uint(1), entity.FavoriteKindPlanet, uint(5)).Return(false, nil)
	fx.favoriteRepo.EXPECT().AddPlanet(ctx, uint(1), uint(5)).Return(errors.Wrap(repository.ErrDuplicateFavorite, "insert"))

	_, err := fx.service.AddFavorite(ctx, 1, entity.FavoriteKindPlanet, 5)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
}

func TestFavoriteService_AddFavorite_DanglingReference(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.characterRepo.EXPECT().FindByID(ctx, uint(3)).Return(newCharacter(3, "R2-D2"), nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, uint(1), entity.FavoriteKindCharacter, uint(3)).Return(false, nil)
	fx.favoriteRepo.EXPECT().AddCharacter(ctx, uint(1), uint(3)).Return(repository.ErrFavoriteReference)

	_, err := fx.service.AddFavorite(ctx, 1, entity.FavoriteKindCharacter, 3)
	assert.ErrorIs(t, err, domainerrors.ErrCharacterNotFound)
}

func TestFavoriteService_AddFavorite_RepositoryAppErrorPassesThrough(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.planetRepo.EXPECT().FindByID(ctx, uint(5)).Return(newPlanet(5, "Tatooine"), nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, uint(1), entity.FavoriteKindPlanet, uint(5)).Return(false, nil)
	fx.favoriteRepo.EXPECT().AddPlanet(ctx, uint(1), uint(5)).
		Return(domainerrors.ErrValidationFailed.WrapMessage("favorite must reference exactly one target"))

	_, err := fx.service.AddFavorite(ctx, 1, entity.FavoriteKindPlanet, 5)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFavoriteService_AddFavorite_StoreFailure(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(nil, errors.New("connection reset"))

	_, err := fx.service.AddFavorite(ctx, 1, entity.FavoriteKindPlanet, 5)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestFavoriteService_AddFavorite_InvalidKind(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.AddFavorite(context.Background(), 1, entity.FavoriteKind("starship"), 5)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFavoriteKind)
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.favoriteRepo.EXPECT().RemovePlanet(ctx, uint(1), uint(5)).Return(nil)

	err := fx.service.RemoveFavorite(ctx, 1, entity.FavoriteKindPlanet, 5)
	require.NoError(t, err)
}

func TestFavoriteService_RemoveFavorite_NotAdded(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.favoriteRepo.EXPECT().RemoveCharacter(ctx, uint(1), uint(2)).Return(repository.ErrFavoriteNotFound)

	err := fx.service.RemoveFavorite(ctx, 1, entity.FavoriteKindCharacter, 2)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_RemoveFavorite_UserNotFound(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.inTx()

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(9)).Return(nil, repository.ErrUserNotFound)

	err := fx.service.RemoveFavorite(ctx, 9, entity.FavoriteKindCharacter, 2)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.User{ID: 1}, nil)
	fx.favoriteRepo.EXPECT().ListCharacters(ctx, uint(1)).Return([]*entity.Character{newCharacter(1, "Luke Skywalker")}, nil)
	fx.favoriteRepo.EXPECT().ListPlanets(ctx, uint(1)).Return([]*entity.Planet{newPlanet(1, "Tatooine"), newPlanet(4, "Hoth")}, nil)

	set, err := fx.service.ListFavorites(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, set.Characters, 1)
	assert.Len(t, set.Planets, 2)
}

func TestFavoriteService_ListFavorites_UserNotFound(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint(77)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ListFavorites(ctx, 77)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
