// Package entity 定义领域实体
package entity

// Direction 房间在楼层平面内的方位，取值为封闭的 9 值罗盘枚举
type Direction string

const (
	DirectionNorth     Direction = "North"
	DirectionSouth     Direction = "South"
	DirectionEast      Direction = "East"
	DirectionWest      Direction = "West"
	DirectionNortheast Direction = "Northeast"
	DirectionNorthwest Direction = "Northwest"
	DirectionSoutheast Direction = "Southeast"
	DirectionSouthwest Direction = "Southwest"
	DirectionCenter    Direction = "Center"
)

// Directions 返回全部合法方位，顺序固定
func Directions() []Direction {
	return []Direction{
		DirectionNorth, DirectionSouth, DirectionEast, DirectionWest,
		DirectionNortheast, DirectionNorthwest, DirectionSoutheast, DirectionSouthwest,
		DirectionCenter,
	}
}

// IsValid 判断方位是否属于封闭枚举
func (d Direction) IsValid() bool {
	switch d {
	case DirectionNorth, DirectionSouth, DirectionEast, DirectionWest,
		DirectionNortheast, DirectionNorthwest, DirectionSoutheast, DirectionSouthwest,
		DirectionCenter:
		return true
	default:
		return false
	}
}

// DirectionFromPosition 根据平面坐标计算方位。
// 判定顺序固定：先对角象限（|x|>5 且 |y|>5），再单轴（|x|>2 或 |y|>2），最后 Center。
// 阈值与顺序不可调整，保证同一坐标始终得到同一方位。
func DirectionFromPosition(x, y float64) Direction {
	switch {
	case x < -5 && y > 5:
		return DirectionNorthwest
	case x > 5 && y > 5:
		return DirectionNortheast
	case x < -5 && y < -5:
		return DirectionSouthwest
	case x > 5 && y < -5:
		return DirectionSoutheast
	case x < -2:
		return DirectionWest
	case x > 2:
		return DirectionEast
	case y > 2:
		return DirectionNorth
	case y < -2:
		return DirectionSouth
	default:
		return DirectionCenter
	}
}
