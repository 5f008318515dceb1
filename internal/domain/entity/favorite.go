package entity

import "strings"

// FavoriteKind identifies which catalog entity a favorite points at.
type FavoriteKind string

const (
	// FavoriteKindCharacter marks a favorite that references a Character.
	FavoriteKindCharacter FavoriteKind = "character"
	// FavoriteKindPlanet marks a favorite that references a Planet.
	FavoriteKindPlanet FavoriteKind = "planet"
)

// String returns the string representation of the FavoriteKind.
func (k FavoriteKind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known kinds.
func (k FavoriteKind) IsValid() bool {
	return k == FavoriteKindCharacter || k == FavoriteKindPlanet
}

// ParseFavoriteKind maps a route segment to a FavoriteKind.
// "people" is accepted as an alias for characters because that is how the
// catalog exposes them.
func ParseFavoriteKind(s string) (FavoriteKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "character", "characters", "people":
		return FavoriteKindCharacter, true
	case "planet", "planets":
		return FavoriteKindPlanet, true
	default:
		return "", false
	}
}

// FavoriteSet is the full list of favorites owned by a single user.
type FavoriteSet struct {
	UserID     uint
	Characters []*Character
	Planets    []*Planet
}
