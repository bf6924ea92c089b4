package components

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框左上角与 PositionComponent 重合，用于所有成对碰撞检测（子弹与敌人、敌人与玩家等）
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
