package repository

import "context"

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// Execute calls fn with repositories sharing one transaction. A nil return
	// commits, an error or panic rolls back and the error is returned as is.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory builds repositories bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCharacterRepository() CharacterRepository
	NewPlanetRepository() PlanetRepository
	NewFavoriteRepository() FavoriteRepository
}
