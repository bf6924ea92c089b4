// Package utils 提供游戏开发中常用的工具函数
//
// geometry.go 提供轴对齐包围盒（AABB）与数值钳制工具。
//
// # 坐标系统
//
// 竞技场使用左上角为原点的坐标系，X 向右递增，Y 向下递增。
// 实体位置（PositionComponent.X/Y）表示包围盒左上角。
package utils

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y float64 // 左上角
	W, H float64 // 宽高（正数）
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left 左边界
func (r Rect) Left() float64 { return r.X }

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Top 上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX 水平中心
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps 检查两个矩形是否以非零面积相交
//
// 使用标准四不等式测试，边界刚好接触不算相交。
// 函数是对称的：Overlaps(a, b) == Overlaps(b, a)
func Overlaps(a, b Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// Within 检查矩形是否完全位于 [0, width] × [0, height] 内
func (r Rect) Within(width, height float64) bool {
	return r.Left() >= 0 && r.Top() >= 0 && r.Right() <= width && r.Bottom() <= height
}

// Clamp 将值限制在 [lo, hi] 范围内
// 当 lo > hi 时（实体比区域还大）返回 lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
