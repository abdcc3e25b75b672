package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeRating(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		incoming float64
		want     float64
	}{
		{"first rating replaces zero", 0, 8, 8},
		{"first rating keeps fraction", 0, 7.3, 7.3},
		{"average of two", 8, 4, 6},
		{"rounds to one decimal", 7.5, 8, 7.8},
		{"rounds half up", 3, 4.5, 3.8},
		{"zero incoming merges", 6, 0, 3},
		{"no upper bound", 6, 100, 53},
		{"negative values pass through", 4, -2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeRating(tt.current, tt.incoming))
		})
	}
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Why did the chicken"))
	assert.NoError(t, ValidateTitle(strings.Repeat("word ", MaxTitleWords)))

	err := ValidateTitle("")
	assert.True(t, IsValidationError(err))

	err = ValidateTitle("   ")
	assert.True(t, IsValidationError(err))

	err = ValidateTitle(strings.Repeat("word ", MaxTitleWords+1))
	assert.True(t, IsValidationError(err))
}

func TestValidateBody(t *testing.T) {
	assert.NoError(t, ValidateBody("Because it wanted to."))
	assert.NoError(t, ValidateBody(strings.Repeat("ha ", MaxBodyWords/2)))

	err := ValidateBody("")
	assert.True(t, IsValidationError(err))

	err = ValidateBody(strings.Repeat("ha ", MaxBodyWords+1))
	assert.True(t, IsValidationError(err))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleModerator.IsValid())
	assert.False(t, Role("Admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestIdentityIsModerator(t *testing.T) {
	assert.True(t, Identity{Role: RoleModerator}.IsModerator())
	assert.False(t, Identity{Role: RoleUser}.IsModerator())
}
