package components

// PositionComponent 存储实体的世界坐标（像素）
// 世界原点位于屏幕中心，Y轴向上
// 只有 MovementSystem 会修改 X；Y 由生成者设定
type PositionComponent struct {
	X float64
	Y float64
}
