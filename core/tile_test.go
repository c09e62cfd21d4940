package core_test

import (
	"testing"

	"github.com/katalvlaran/lightwire/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRotate_SingleStep checks the fixed permutation:
// left←bottom, bottom←right, right←top, top←left.
func TestRotate_SingleStep(t *testing.T) {
	tile := core.Tile{Left: true, Top: true}
	tile.Rotate()

	assert.False(t, tile.Left)
	assert.False(t, tile.Bottom)
	assert.True(t, tile.Right)
	assert.True(t, tile.Top)
}

// TestRotate_PeriodFour verifies four rotations restore every connector pattern.
func TestRotate_PeriodFour(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		orig := core.Tile{
			Left:   mask&1 != 0,
			Right:  mask&2 != 0,
			Top:    mask&4 != 0,
			Bottom: mask&8 != 0,
		}
		tile := orig
		for i := 0; i < 4; i++ {
			tile.Rotate()
			assert.Equal(t, orig.ConnectorCount(), tile.ConnectorCount(), "mask %04b step %d", mask, i)
		}
		assert.Equal(t, orig, tile, "mask %04b", mask)
	}
}

// TestRotateN covers modulo and negative step counts.
func TestRotateN(t *testing.T) {
	base := core.Tile{Left: true}

	tests := []struct {
		name string
		k    int
		want core.Direction
	}{
		{"zero", 0, core.Left},
		{"one", 1, core.Top},
		{"two", 2, core.Right},
		{"three", 3, core.Bottom},
		{"five wraps to one", 5, core.Top},
		{"minus one is three", -1, core.Bottom},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tile := base
			tile.RotateN(tc.k)
			require.Equal(t, 1, tile.ConnectorCount())
			assert.True(t, tile.Has(tc.want))
		})
	}
}

// TestHasSet round-trips every direction through Set and Has.
func TestHasSet(t *testing.T) {
	var tile core.Tile
	for _, d := range core.Directions {
		assert.False(t, tile.Has(d))
		tile.Set(d, true)
		assert.True(t, tile.Has(d))
	}
	assert.Equal(t, 4, tile.ConnectorCount())
	tile.Set(core.Top, false)
	assert.Equal(t, 3, tile.ConnectorCount())
	assert.False(t, tile.Has(core.Direction(9)))
}

// TestDirection_Tables checks opposite and offset tables.
func TestDirection_Tables(t *testing.T) {
	for _, d := range core.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		dr, dc := d.Offset()
		or, oc := d.Opposite().Offset()
		assert.Equal(t, 0, dr+or)
		assert.Equal(t, 0, dc+oc)
		assert.Equal(t, 1, abs(dr)+abs(dc))
	}
	assert.Equal(t, "bottom", core.Bottom.String())
	assert.Equal(t, "Direction(7)", core.Direction(7).String())
}

// TestParseDirection covers the accepted tokens and the unknown case.
func TestParseDirection(t *testing.T) {
	tests := map[string]core.Direction{
		"left":   core.Left,
		"RIGHT":  core.Right,
		"top":    core.Top,
		"up":     core.Top,
		"bottom": core.Bottom,
		" down ": core.Bottom,
	}
	for token, want := range tests {
		got, err := core.ParseDirection(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}

	_, err := core.ParseDirection("diagonal")
	assert.ErrorIs(t, err, core.ErrUnknownDirection)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
