package gormdb

import (
	"context"

	"holocron/internal/domain/repository"
	"holocron/internal/errors"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise. gorm also
// rolls back on panic and re-panics, so the echo recover middleware still sees it.
// Errors returned by fn come back unwrapped so callers can match sentinels.
func (m *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Wrap(err, "transaction")
	}
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewCharacterRepository() repository.CharacterRepository {
	return NewCharacterRepository(r.tx)
}

func (r txRepositories) NewPlanetRepository() repository.PlanetRepository {
	return NewPlanetRepository(r.tx)
}

func (r txRepositories) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(r.tx)
}
