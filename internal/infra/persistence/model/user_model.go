package model

import "time"

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the migration and seed tooling from other packages.
type UserModel struct {
	ID        uint    `gorm:"primaryKey"`
	Username  *string `gorm:"type:varchar(32);uniqueIndex"`
	Email     string  `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password  string  `gorm:"type:varchar(80);not null"`
	IsActive  bool    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
