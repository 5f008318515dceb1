package entity

// Planet is a world from the catalog. Attributes follow the same nullable
// convention as Character.
type Planet struct {
	ID             uint
	Name           *string
	Diameter       *int
	RotationPeriod *int
	OrbitalPeriod  *int
	Gravity        *string
	Population     *int64
	Climate        *string
	Terrain        *string
	SurfaceWater   *int
}
