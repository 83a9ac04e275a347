package design

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blueprint-ai-api/internal/domain/entity"
)

func TestNormalizeFillsDirection(t *testing.T) {
	bp := &entity.Blueprint{
		FloorPlans: []entity.FloorPlan{
			{FloorNumber: 1, Rooms: []entity.Room{
				{Name: "A", Position: entity.Position{X: 6, Y: 6}},
				{Name: "B", Position: entity.Position{X: 0, Y: 0}, Direction: entity.Direction("Upstairs")},
				{Name: "C", Position: entity.Position{X: -3, Y: 0}, Direction: entity.DirectionNorth},
			}},
		},
	}

	Normalize(bp, nil)

	rooms := bp.FloorPlans[0].Rooms
	assert.Equal(t, entity.DirectionNortheast, rooms[0].Direction)
	// 非法值按坐标重算
	assert.Equal(t, entity.DirectionCenter, rooms[1].Direction)
	// 已有合法值保持不变
	assert.Equal(t, entity.DirectionNorth, rooms[2].Direction)
}

func TestNormalizeFillsFeaturesAndColor(t *testing.T) {
	bp := &entity.Blueprint{
		FloorPlans: []entity.FloorPlan{
			{FloorNumber: 1, Rooms: []entity.Room{
				{Name: "Kitchen", Type: "kitchen"},
				{Name: "Vault", Type: "vault", Color: "#123456", Features: []string{"steel_door"}},
				{Name: "Lab", Type: "lab"},
			}},
		},
	}

	Normalize(bp, nil)

	rooms := bp.FloorPlans[0].Rooms
	assert.Equal(t, "#e8f5e8", rooms[0].Color)
	assert.NotNil(t, rooms[0].Features)
	assert.Empty(t, rooms[0].Features)

	// 已有颜色与特性不被改写
	assert.Equal(t, "#123456", rooms[1].Color)
	assert.Equal(t, []string{"steel_door"}, rooms[1].Features)

	assert.Equal(t, "#f1f8e9", rooms[2].Color)
}

func TestNormalizeIdempotent(t *testing.T) {
	bp := &entity.Blueprint{
		FloorPlans: []entity.FloorPlan{
			{FloorNumber: 1, Rooms: []entity.Room{
				{Name: "Office", Type: "office", Position: entity.Position{X: 8, Y: 0}},
			}},
		},
	}

	Normalize(bp, nil)
	first := bp.Clone()
	Normalize(bp, nil)
	assert.Equal(t, first, bp.Clone())
}

func TestRoomColorUnknownType(t *testing.T) {
	assert.Equal(t, "#f5f5f5", RoomColor("observatory"))
	assert.Equal(t, "#e3f2fd", RoomColor("living"))
}

func TestNormalizeNilBlueprint(t *testing.T) {
	assert.NotPanics(t, func() { Normalize(nil, nil) })
}
