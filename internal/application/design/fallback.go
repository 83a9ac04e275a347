// Package design 实现蓝图生成与迭代的核心流程：
// 提示词构建 -> 模型网关 -> 响应提取 -> 结构归一化 -> 会话历史管理。
package design

import (
	"encoding/json"
	"fmt"

	"blueprint-ai-api/internal/domain/entity"
)

// fallbackRaw 固定的兜底蓝图文本。
// 模型不可用或输出无法解析时一律替换为该文档，保证调用方永远拿到可用结果。
// 注意：兜底文档固定为两层，与请求的楼层数无关（已知偏差，刻意保留）。
const fallbackRaw = `{
  "building_info": {
    "type": "residential_house",
    "total_area": 150.0,
    "floors": 2,
    "occupancy": "family",
    "special_features": ["parking", "garden"],
    "budget_level": "standard"
  },
  "floor_plans": [
    {
      "floor_number": 1,
      "area": 75.0,
      "rooms": [
        {
          "name": "Living Room",
          "type": "living",
          "dimensions": {
            "width": 6.0,
            "length": 8.0,
            "area": 48.0
          },
          "position": {
            "x": 0,
            "y": 0
          },
          "direction": "Center",
          "features": ["natural_light", "main_entrance"],
          "color": "#e3f2fd"
        },
        {
          "name": "Kitchen",
          "type": "kitchen",
          "dimensions": {
            "width": 4.0,
            "length": 5.0,
            "area": 20.0
          },
          "position": {
            "x": 8,
            "y": 0
          },
          "direction": "East",
          "features": ["ventilation", "plumbing"],
          "color": "#e8f5e8"
        }
      ]
    },
    {
      "floor_number": 2,
      "area": 75.0,
      "rooms": [
        {
          "name": "Master Bedroom",
          "type": "bedroom",
          "dimensions": {
            "width": 5.0,
            "length": 6.0,
            "area": 30.0
          },
          "position": {
            "x": 0,
            "y": 0
          },
          "direction": "North",
          "features": ["natural_light", "ensuite"],
          "color": "#f3e5f5"
        }
      ]
    }
  ],
  "design_constraints": {
    "building_codes": ["local_residential_code"],
    "min_room_dimensions": {
      "bedroom": {"min_area": 12, "min_width": 3},
      "bathroom": {"min_area": 6, "min_width": 2}
    }
  },
  "metadata": {
    "created_date": "2025-01-01T00:00:00",
    "version": "1.0",
    "generator": "Blueprint AI System"
  }
}`

// FallbackRaw 返回兜底蓝图的原始文本，每次调用字节一致
func FallbackRaw() string {
	return fallbackRaw
}

// FallbackBlueprint 返回解析后的兜底蓝图，每次调用都是新实例
func FallbackBlueprint() *entity.Blueprint {
	var bp entity.Blueprint
	if err := json.Unmarshal([]byte(fallbackRaw), &bp); err != nil {
		// 兜底文档是编译期常量，解析失败属于程序缺陷
		panic(fmt.Sprintf("fallback blueprint is not valid JSON: %v", err))
	}
	return &bp
}
