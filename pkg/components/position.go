package components

// PositionComponent 存储实体包围盒左上角的位置（竞技场坐标）
type PositionComponent struct {
	X, Y float64
}
