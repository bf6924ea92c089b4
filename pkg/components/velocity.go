package components

// VelocityComponent 存储实体每 tick 的位移
//
// 玩家：由输入系统每 tick 写入
// 普通敌人：VY 为固定下落速度，VX 仅蛇行敌人使用
// Boss：只使用 VX（水平巡逻）
type VelocityComponent struct {
	VX, VY float64
}
