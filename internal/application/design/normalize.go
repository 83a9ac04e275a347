package design

import (
	"blueprint-ai-api/internal/domain/entity"
)

// roomColors 房间类型到展示色的映射，未知类型用 defaultRoomColor
var roomColors = map[string]string{
	"living":     "#e3f2fd",
	"bedroom":    "#f3e5f5",
	"kitchen":    "#e8f5e8",
	"bathroom":   "#fff3e0",
	"office":     "#e1f5fe",
	"dining":     "#fce4ec",
	"storage":    "#f5f5f5",
	"hallway":    "#f9f9f9",
	"lobby":      "#e0f2f1",
	"conference": "#fff8e1",
	"medical":    "#e8eaf6",
	"lab":        "#f1f8e9",
	"ward":       "#fafafa",
}

const defaultRoomColor = "#f5f5f5"

// Normalize 就地补全蓝图中所有房间的展示字段：
//   - direction 缺失或非法时按坐标推导
//   - features 为 nil 时补成空切片
//   - color 缺失时按房间类型查表
//
// 归一化是幂等的，已填好的字段不会被改写。
func Normalize(bp *entity.Blueprint, req *entity.BuildingRequirements) {
	if bp == nil {
		return
	}
	_ = req // 预留：后续可按需求约束调整楼层面积分配

	for i := range bp.FloorPlans {
		rooms := bp.FloorPlans[i].Rooms
		for j := range rooms {
			room := &rooms[j]
			if !room.Direction.IsValid() {
				room.Direction = entity.DirectionFromPosition(room.Position.X, room.Position.Y)
			}
			if room.Features == nil {
				room.Features = []string{}
			}
			if room.Color == "" {
				room.Color = RoomColor(room.Type)
			}
		}
	}
}

// RoomColor 返回房间类型对应的展示色
func RoomColor(roomType string) string {
	if c, ok := roomColors[roomType]; ok {
		return c
	}
	return defaultRoomColor
}
