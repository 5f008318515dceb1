package gormdb

import (
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence model,
// including the favorites CHECK constraint and unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
