package components

// VelocityComponent 存储实体的水平速度（像素/秒）
// 符号表示方向：正值向右，负值向左
type VelocityComponent struct {
	VX float64
}
