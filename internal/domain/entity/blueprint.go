package entity

import (
	"encoding/json"
	"fmt"
)

// Blueprint 建筑设计蓝图文档
type Blueprint struct {
	BuildingInfo      BuildingInfo      `json:"building_info"`
	FloorPlans        []FloorPlan       `json:"floor_plans"`
	DesignConstraints json.RawMessage   `json:"design_constraints,omitempty"`
	Metadata          BlueprintMetadata `json:"metadata"`
}

// BuildingInfo 需求字段回显
type BuildingInfo struct {
	Type            string   `json:"type"`
	TotalArea       float64  `json:"total_area"`
	Floors          int      `json:"floors"`
	Occupancy       string   `json:"occupancy"`
	SpecialFeatures []string `json:"special_features"`
	BudgetLevel     string   `json:"budget_level"`
}

// BlueprintMetadata 生成元信息
type BlueprintMetadata struct {
	CreatedDate string `json:"created_date"`
	Version     string `json:"version"`
	Generator   string `json:"generator"`
}

// FloorPlan 单层平面
type FloorPlan struct {
	FloorNumber int     `json:"floor_number"`
	Area        float64 `json:"area"`
	Rooms       []Room  `json:"rooms"`
}

// Room 房间
type Room struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Dimensions Dimensions `json:"dimensions"`
	Position   Position   `json:"position"`
	Direction  Direction  `json:"direction,omitempty"`
	Features   []string   `json:"features"`
	Color      string     `json:"color,omitempty"`
}

// Dimensions 房间尺寸
type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Area   float64 `json:"area"`
}

// Position 平面坐标（任意单位）
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Validate 对蓝图做结构校验。
// 模型输出先按宽松模式解码，再由本方法做严格结构检查；
// 任一违例都会导致调用方退回兜底蓝图，绝不接受半合法文档。
func (b *Blueprint) Validate() error {
	if b == nil {
		return fmt.Errorf("blueprint is nil")
	}
	if len(b.FloorPlans) == 0 {
		return fmt.Errorf("blueprint has no floor plans")
	}
	for i := range b.FloorPlans {
		fp := &b.FloorPlans[i]
		if fp.FloorNumber < 1 {
			return fmt.Errorf("floor plan %d: floor_number must be >= 1, got %d", i, fp.FloorNumber)
		}
		for j := range fp.Rooms {
			if fp.Rooms[j].Name == "" {
				return fmt.Errorf("floor %d room %d: missing name", fp.FloorNumber, j)
			}
		}
	}
	return nil
}

// Clone 深拷贝蓝图，避免历史快照之间共享可变状态
func (b *Blueprint) Clone() *Blueprint {
	if b == nil {
		return nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		// 蓝图均由 JSON 解码而来，重新编码不应失败
		panic(fmt.Sprintf("blueprint clone: %v", err))
	}
	var out Blueprint
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("blueprint clone: %v", err))
	}
	return &out
}
