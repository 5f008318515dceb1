package model

// PlanetModel mirrors the 'planets' table. Every attribute is nullable.
type PlanetModel struct {
	ID             uint    `gorm:"primaryKey"`
	Name           *string `gorm:"type:varchar(250)"`
	Diameter       *int
	RotationPeriod *int
	OrbitalPeriod  *int
	Gravity        *string `gorm:"type:varchar(250)"`
	Population     *int64
	Climate        *string `gorm:"type:varchar(250)"`
	Terrain        *string `gorm:"type:varchar(250)"`
	SurfaceWater   *int
}

// TableName explicitly sets the table name for GORM.
func (PlanetModel) TableName() string {
	return "planets"
}
