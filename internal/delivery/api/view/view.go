// Package view maps domain entities to the JSON shapes served by the API.
//
// Summary shapes are used in lists, detail shapes for single-item lookups.
// Unset attributes stay nil so they serialise as null.
package view

import "holocron/internal/domain/entity"

// UserSummary is the only public shape of a user. It has no password field.
type UserSummary struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	IsActive bool    `json:"is_active"`
}

// CharacterSummary is the list shape of a character.
type CharacterSummary struct {
	ID   uint    `json:"id"`
	Name *string `json:"name"`
}

// CharacterDetail carries every character attribute.
type CharacterDetail struct {
	ID        uint    `json:"id"`
	Name      *string `json:"name"`
	Height    *int    `json:"height"`
	Mass      *int    `json:"mass"`
	HairColor *string `json:"hair_color"`
	SkinColor *string `json:"skin_color"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}

// PlanetSummary is the list shape of a planet.
type PlanetSummary struct {
	ID   uint    `json:"id"`
	Name *string `json:"name"`
}

// PlanetDetail carries every planet attribute.
type PlanetDetail struct {
	ID             uint    `json:"id"`
	Name           *string `json:"name"`
	Diameter       *int    `json:"diameter"`
	RotationPeriod *int    `json:"rotation_period"`
	OrbitalPeriod  *int    `json:"orbital_period"`
	Gravity        *string `json:"gravity"`
	Population     *int64  `json:"population"`
	Climate        *string `json:"climate"`
	Terrain        *string `json:"terrain"`
	SurfaceWater   *int    `json:"surface_water"`
}

// NewUserSummary builds the public shape of u.
func NewUserSummary(u *entity.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		IsActive: u.IsActive,
	}
}

// NewCharacterSummary keeps only the id and name of c.
func NewCharacterSummary(c *entity.Character) CharacterSummary {
	return CharacterSummary{ID: c.ID, Name: c.Name}
}

// NewCharacterDetail copies every attribute of c.
func NewCharacterDetail(c *entity.Character) CharacterDetail {
	return CharacterDetail{
		ID:        c.ID,
		Name:      c.Name,
		Height:    c.Height,
		Mass:      c.Mass,
		HairColor: c.HairColor,
		SkinColor: c.SkinColor,
		BirthYear: c.BirthYear,
		Gender:    c.Gender,
	}
}

// NewPlanetSummary keeps only the id and name of p.
func NewPlanetSummary(p *entity.Planet) PlanetSummary {
	return PlanetSummary{ID: p.ID, Name: p.Name}
}

// NewPlanetDetail copies every attribute of p.
func NewPlanetDetail(p *entity.Planet) PlanetDetail {
	return PlanetDetail{
		ID:             p.ID,
		Name:           p.Name,
		Diameter:       p.Diameter,
		RotationPeriod: p.RotationPeriod,
		OrbitalPeriod:  p.OrbitalPeriod,
		Gravity:        p.Gravity,
		Population:     p.Population,
		Climate:        p.Climate,
		Terrain:        p.Terrain,
		SurfaceWater:   p.SurfaceWater,
	}
}

// Users maps a slice, always returning a non-nil slice so empty lists encode as [].
func Users(users []*entity.User) []UserSummary {
	return mapAll(users, NewUserSummary)
}

// Characters maps characters to their list shape.
func Characters(characters []*entity.Character) []CharacterSummary {
	return mapAll(characters, NewCharacterSummary)
}

// Planets maps planets to their list shape.
func Planets(planets []*entity.Planet) []PlanetSummary {
	return mapAll(planets, NewPlanetSummary)
}

func mapAll[E any, V any](items []*E, fn func(*E) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
