package design

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"blueprint-ai-api/internal/domain/entity"
)

// roomSuggestions 按建筑类型给出的推荐房间表。
// 未知类型统一退回通用清单，不会报错。
var roomSuggestions = map[string][]string{
	"residential_house": {"living_room", "kitchen", "bedrooms", "bathrooms", "dining_room"},
	"hospital":          {"reception", "waiting_area", "examination_rooms", "wards", "operating_theater", "pharmacy", "laboratory"},
	"office_building":   {"reception", "offices", "conference_rooms", "break_room", "storage"},
	"school":            {"classrooms", "library", "cafeteria", "gymnasium", "administration_office"},
	"restaurant":        {"dining_area", "kitchen", "storage", "restrooms", "bar_area"},
	"hotel":             {"lobby", "guest_rooms", "restaurant", "conference_rooms", "fitness_center"},
}

var genericRoomSuggestions = []string{"main_area", "secondary_areas", "utilities"}

// RoomSuggestions 返回建筑类型对应的推荐房间清单
func RoomSuggestions(buildingType string) []string {
	if s, ok := roomSuggestions[buildingType]; ok {
		return s
	}
	return genericRoomSuggestions
}

// directionEnumLine 提示词中方位枚举的固定写法
func directionEnumLine() string {
	parts := make([]string, 0, 9)
	for _, d := range entity.Directions() {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, ", ")
}

// InitialPrompt 构建首次生成提示词。
// 除内嵌时间戳外，同样的需求输入产出同样的提示词。
func InitialPrompt(req *entity.BuildingRequirements) string {
	suggestions := RoomSuggestions(req.BuildingType)
	features, _ := json.Marshal(req.SpecialFeatures)
	floorArea := req.TotalArea / float64(req.Floors)

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert architect. Create a detailed architectural blueprint in JSON format for a %s building.\n\n", req.BuildingType)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Building Type: %s\n", req.BuildingType)
	fmt.Fprintf(&b, "- Total Area: %g square meters\n", req.TotalArea)
	fmt.Fprintf(&b, "- Number of Floors: %d\n", req.Floors)
	fmt.Fprintf(&b, "- Occupancy: %s\n", req.Occupancy)
	fmt.Fprintf(&b, "- Special Features: %s\n", strings.Join(req.SpecialFeatures, ", "))
	fmt.Fprintf(&b, "- Budget Level: %s\n\n", req.BudgetLevel)
	fmt.Fprintf(&b, "Suggested rooms for %s: %s\n\n", req.BuildingType, strings.Join(suggestions, ", "))

	fmt.Fprintf(&b, "Return a JSON blueprint with this exact structure and include ALL %d floors:\n", req.Floors)
	fmt.Fprintf(&b, `{
  "building_info": {
    "type": "%s",
    "total_area": %g,
    "floors": %d,
    "occupancy": "%s",
    "special_features": %s,
    "budget_level": "%s"
  },
  "floor_plans": [
    {
      "floor_number": 1,
      "area": %g,
      "rooms": [
        {
          "name": "Room Name",
          "type": "room_type",
          "dimensions": {
            "width": 6.0,
            "length": 8.0,
            "area": 48.0
          },
          "position": {
            "x": 0,
            "y": 0
          },
          "direction": "North|South|East|West|Northeast|Northwest|Southeast|Southwest|Center",
          "features": ["feature1", "feature2"],
          "color": "#hexcolor"
        }
      ]
    }
  ],
  "design_constraints": {
    "building_codes": ["relevant_building_codes"],
    "min_room_dimensions": {
      "bedroom": {"min_area": 12, "min_width": 3},
      "bathroom": {"min_area": 6, "min_width": 2}
    }
  },
  "metadata": {
    "created_date": "%s",
    "version": "1.0",
    "generator": "Blueprint AI System"
  }
}`, req.BuildingType, req.TotalArea, req.Floors, req.Occupancy, string(features), req.BudgetLevel, floorArea, time.Now().UTC().Format(time.RFC3339))

	b.WriteString("\n\nIMPORTANT:\n")
	fmt.Fprintf(&b, "1. Include exactly %d floor plans in the floor_plans array\n", req.Floors)
	fmt.Fprintf(&b, "2. Each room MUST have a \"direction\" field with one of: %s\n", directionEnumLine())
	fmt.Fprintf(&b, "3. Distribute the total area (%g sq m) across all floors\n", req.TotalArea)
	fmt.Fprintf(&b, "4. Use appropriate room types and colors for %s\n", req.BuildingType)
	b.WriteString("5. Position rooms logically and ensure they don't overlap\n\n")
	b.WriteString("Return only the JSON, no additional text.\n")

	return b.String()
}

// IterationPrompt 构建反馈迭代提示词：保持楼层数与方位字段，按反馈修改
func IterationPrompt(current *entity.Blueprint, feedback string) string {
	serialized := marshalBlueprint(current)

	var b strings.Builder
	b.WriteString("Modify this architectural blueprint based on user feedback. Maintain the multi-floor structure and room directions.\n\n")
	b.WriteString("Current Blueprint:\n")
	b.WriteString(serialized)
	b.WriteString("\n\nUser Feedback:\n")
	b.WriteString(feedback)
	b.WriteString("\n\nIMPORTANT:\n")
	b.WriteString("1. Keep the same number of floors as in the original blueprint\n")
	b.WriteString("2. Each room MUST have a \"direction\" field\n")
	b.WriteString("3. Update room positions, dimensions, and colors as needed based on feedback\n")
	b.WriteString("4. Maintain logical room placement and avoid overlaps\n")
	b.WriteString("5. Keep the same JSON structure\n\n")
	b.WriteString("Return only the updated JSON blueprint, no additional text.\n")

	return b.String()
}

// OptimizationPrompt 构建目标优化提示词：保持结构，按目标优化
func OptimizationPrompt(current *entity.Blueprint, goals []string) string {
	serialized := marshalBlueprint(current)

	var b strings.Builder
	b.WriteString("Optimize this architectural blueprint for these goals while maintaining structure and room directions.\n\n")
	b.WriteString("Current Blueprint:\n")
	b.WriteString(serialized)
	b.WriteString("\n\nOptimization Goals:\n")
	for _, goal := range goals {
		fmt.Fprintf(&b, "- %s\n", goal)
	}
	b.WriteString("\nIMPORTANT:\n")
	b.WriteString("1. Keep the same number of floors\n")
	b.WriteString("2. Each room MUST have a \"direction\" field\n")
	b.WriteString("3. Optimize room sizes, positions, and features based on goals\n")
	b.WriteString("4. Maintain the same JSON structure\n\n")
	b.WriteString("Return only the optimized JSON blueprint, no additional text.\n")

	return b.String()
}

func marshalBlueprint(bp *entity.Blueprint) string {
	data, err := json.MarshalIndent(bp, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
