package model

// CharacterModel mirrors the 'characters' table. Every attribute is nullable.
type CharacterModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      *string `gorm:"type:varchar(250)"`
	Height    *int
	Mass      *int
	HairColor *string `gorm:"type:varchar(250)"`
	SkinColor *string `gorm:"type:varchar(250)"`
	BirthYear *string `gorm:"type:varchar(250)"`
	Gender    *string `gorm:"type:varchar(250)"`
}

// TableName explicitly sets the table name for GORM.
func (CharacterModel) TableName() string {
	return "characters"
}
