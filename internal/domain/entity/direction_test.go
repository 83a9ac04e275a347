package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionFromPosition(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Direction
	}{
		{"northwest quadrant", -6, 6, DirectionNorthwest},
		{"northeast quadrant", 6, 6, DirectionNortheast},
		{"southwest quadrant", -6, -6, DirectionSouthwest},
		{"southeast quadrant", 6, -6, DirectionSoutheast},
		{"west axis", -3, 0, DirectionWest},
		{"east axis", 3, 0, DirectionEast},
		{"north axis", 0, 3, DirectionNorth},
		{"south axis", 0, -3, DirectionSouth},
		{"origin", 0, 0, DirectionCenter},
		// 对角阈值是严格大于，(5,5) 落到单轴判定
		{"diagonal boundary", 5, 5, DirectionEast},
		// 单轴阈值同样严格，(2,2) 落到 Center
		{"axis boundary", 2, 2, DirectionCenter},
		// x 判定先于 y，(-3,3) 取 West 而不是 North
		{"x precedence over y", -3, 3, DirectionWest},
		{"east before north", 3, 3, DirectionEast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectionFromPosition(tt.x, tt.y))
		})
	}
}

func TestDirectionIsValid(t *testing.T) {
	for _, d := range Directions() {
		assert.True(t, d.IsValid(), "direction %s should be valid", d)
	}
	assert.False(t, Direction("").IsValid())
	assert.False(t, Direction("north").IsValid())
	assert.False(t, Direction("Middle").IsValid())
}
