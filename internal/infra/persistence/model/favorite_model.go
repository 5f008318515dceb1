package model

import "time"

// FavoriteModel mirrors the 'favorites' association table.
//
// A row links one user to exactly one character or one planet. The CHECK
// constraint rejects rows that set both or neither target column, and the two
// composite unique indexes reject duplicates per target kind (NULLs are
// distinct, so a planet row never collides on the character index).
type FavoriteModel struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      uint  `gorm:"not null;uniqueIndex:idx_favorites_user_character,priority:1;uniqueIndex:idx_favorites_user_planet,priority:1"`
	CharacterID *uint `gorm:"uniqueIndex:idx_favorites_user_character,priority:2;check:chk_favorites_single_target,(character_id IS NULL) <> (planet_id IS NULL)"`
	PlanetID    *uint `gorm:"uniqueIndex:idx_favorites_user_planet,priority:2"`
	CreatedAt   time.Time

	User      *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Character *CharacterModel `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Planet    *PlanetModel    `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// All returns every model managed by the schema, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&CharacterModel{},
		&PlanetModel{},
		&FavoriteModel{},
	}
}
