package design

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-ai-api/internal/domain/entity"
)

const validDoc = `{
  "building_info": {"type": "residential_house", "total_area": 100, "floors": 1, "occupancy": "family", "special_features": [], "budget_level": "standard"},
  "floor_plans": [
    {"floor_number": 1, "area": 100, "rooms": [
      {"name": "Living Room", "type": "living", "dimensions": {"width": 5, "length": 5, "area": 25}, "position": {"x": 0, "y": 0}, "direction": "Center", "features": [], "color": "#e3f2fd"}
    ]}
  ],
  "metadata": {"created_date": "2025-01-01T00:00:00", "version": "1.0", "generator": "Blueprint AI System"}
}`

func TestExtractBlueprintPlainJSON(t *testing.T) {
	bp := ExtractBlueprint(context.Background(), validDoc)
	require.NotNil(t, bp)
	assert.Equal(t, "residential_house", bp.BuildingInfo.Type)
	assert.Len(t, bp.FloorPlans, 1)
}

func TestExtractBlueprintJSONFence(t *testing.T) {
	raw := "Here is your blueprint:\n```json\n" + validDoc + "\n```\nLet me know if you need changes."
	bp := ExtractBlueprint(context.Background(), raw)
	require.NotNil(t, bp)
	assert.Equal(t, "residential_house", bp.BuildingInfo.Type)
}

func TestExtractBlueprintBareFence(t *testing.T) {
	raw := "```\n" + validDoc + "\n```"
	bp := ExtractBlueprint(context.Background(), raw)
	require.NotNil(t, bp)
	assert.Equal(t, "residential_house", bp.BuildingInfo.Type)
}

func TestExtractBlueprintUnclosedFence(t *testing.T) {
	raw := "```json\n" + validDoc
	bp := ExtractBlueprint(context.Background(), raw)
	require.NotNil(t, bp)
	assert.Equal(t, "residential_house", bp.BuildingInfo.Type)
}

func TestExtractBlueprintEmptyFallsBack(t *testing.T) {
	bp := ExtractBlueprint(context.Background(), "   \n ")
	assertIsFallback(t, bp)
}

func TestExtractBlueprintGarbageFallsBack(t *testing.T) {
	bp := ExtractBlueprint(context.Background(), "I cannot produce a blueprint right now.")
	assertIsFallback(t, bp)
}

func TestExtractBlueprintInvalidStructureFallsBack(t *testing.T) {
	// 合法 JSON 但没有楼层，结构校验失败
	bp := ExtractBlueprint(context.Background(), `{"building_info": {"type": "hotel"}, "floor_plans": []}`)
	assertIsFallback(t, bp)
}

func assertIsFallback(t *testing.T, bp *entity.Blueprint) {
	t.Helper()
	require.NotNil(t, bp)
	assert.Equal(t, FallbackBlueprint(), bp)
}

func TestFallbackBlueprintShape(t *testing.T) {
	bp := FallbackBlueprint()
	require.NotNil(t, bp)
	require.NoError(t, bp.Validate())

	require.Len(t, bp.FloorPlans, 2)
	assert.Equal(t, 1, bp.FloorPlans[0].FloorNumber)
	assert.Equal(t, 2, bp.FloorPlans[1].FloorNumber)

	require.Len(t, bp.FloorPlans[0].Rooms, 2)
	assert.Equal(t, "Living Room", bp.FloorPlans[0].Rooms[0].Name)
	assert.Equal(t, "Kitchen", bp.FloorPlans[0].Rooms[1].Name)

	require.Len(t, bp.FloorPlans[1].Rooms, 1)
	assert.Equal(t, "Master Bedroom", bp.FloorPlans[1].Rooms[0].Name)

	// 每次调用返回新实例
	other := FallbackBlueprint()
	other.FloorPlans[0].Rooms[0].Name = "changed"
	assert.Equal(t, "Living Room", FallbackBlueprint().FloorPlans[0].Rooms[0].Name)
}
