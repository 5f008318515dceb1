package entity

// Character is a person from the catalog. Every descriptive attribute is
// optional and stays nil when the source data did not provide it.
type Character struct {
	ID        uint
	Name      *string
	Height    *int
	Mass      *int
	HairColor *string
	SkinColor *string
	BirthYear *string
	Gender    *string
}
