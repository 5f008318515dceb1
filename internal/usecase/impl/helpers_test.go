package impl

import (
	"context"
	"io"
	"log/slog"

	"holocron/internal/domain/entity"
	"holocron/internal/domain/repository"
	mockRepo "holocron/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// runInTx makes the mocked transaction manager hand the factory to the callback.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newCharacter(id uint, name string) *entity.Character {
	return &entity.Character{ID: id, Name: strPtr(name)}
}

func newPlanet(id uint, name string) *entity.Planet {
	return &entity.Planet{ID: id, Name: strPtr(name)}
}
