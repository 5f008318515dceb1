package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFavoriteKind(t *testing.T) {
	tests := []struct {
		in     string
		want   FavoriteKind
		wantOK bool
	}{
		{in: "people", want: FavoriteKindCharacter, wantOK: true},
		{in: "character", want: FavoriteKindCharacter, wantOK: true},
		{in: " Planet ", want: FavoriteKindPlanet, wantOK: true},
		{in: "planets", want: FavoriteKindPlanet, wantOK: true},
		{in: "starship", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFavoriteKind(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFavoriteKind_IsValid(t *testing.T) {
	assert.True(t, FavoriteKindCharacter.IsValid())
	assert.True(t, FavoriteKindPlanet.IsValid())
	assert.False(t, FavoriteKind("vehicle").IsValid())
}
