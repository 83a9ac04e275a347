package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignSessionVersioning(t *testing.T) {
	s := NewDesignSession("s1")
	assert.Equal(t, 1, s.CurrentFloor)
	assert.Nil(t, s.Latest())
	assert.Equal(t, 1, s.NextVersion())

	s.Append(DesignVersion{Version: 1})
	assert.Equal(t, 2, s.NextVersion())

	s.Append(DesignVersion{Version: 2})
	require.NotNil(t, s.Latest())
	assert.Equal(t, 2, s.Latest().Version)
	assert.Len(t, s.Versions, 2)
}

func TestDesignSessionSetCurrentFloor(t *testing.T) {
	s := NewDesignSession("s1")
	s.Append(DesignVersion{Version: 1, CurrentFloor: 1})

	s.SetCurrentFloor(2)

	// 只改指针与最新快照，不追加版本
	assert.Equal(t, 2, s.CurrentFloor)
	assert.Equal(t, 2, s.Latest().CurrentFloor)
	assert.Len(t, s.Versions, 1)

	// 幂等
	s.SetCurrentFloor(2)
	assert.Equal(t, 2, s.CurrentFloor)
	assert.Len(t, s.Versions, 1)
}

func TestBlueprintValidate(t *testing.T) {
	bp := &Blueprint{
		FloorPlans: []FloorPlan{
			{FloorNumber: 1, Rooms: []Room{{Name: "Living Room"}}},
		},
	}
	assert.NoError(t, bp.Validate())

	assert.Error(t, (&Blueprint{}).Validate())

	bad := &Blueprint{FloorPlans: []FloorPlan{{FloorNumber: 0}}}
	assert.Error(t, bad.Validate())

	noName := &Blueprint{FloorPlans: []FloorPlan{
		{FloorNumber: 1, Rooms: []Room{{Name: ""}}},
	}}
	assert.Error(t, noName.Validate())
}

func TestBlueprintClone(t *testing.T) {
	bp := &Blueprint{
		FloorPlans: []FloorPlan{
			{FloorNumber: 1, Rooms: []Room{{Name: "Kitchen", Features: []string{"plumbing"}}}},
		},
	}
	clone := bp.Clone()
	require.NotNil(t, clone)

	clone.FloorPlans[0].Rooms[0].Name = "Pantry"
	assert.Equal(t, "Kitchen", bp.FloorPlans[0].Rooms[0].Name)
}
