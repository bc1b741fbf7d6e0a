package components

// FrameRange 描述一段闭区间的动画帧 [Start, End]
type FrameRange struct {
	Start int
	End   int
}

// PlayerComponent 标识玩家实体并保存其操控参数
type PlayerComponent struct {
	WalkSpeed    float64    // 行走速度（像素/秒）
	MuzzleOffset float64    // 子弹生成点距玩家中心的水平距离
	Idle         FrameRange // 站立动画帧
	Walk         FrameRange // 行走动画帧
	FacingLeft   bool       // 当前朝向
}

// Direction 返回朝向对应的方向系数：左 -1，右 1
func (p *PlayerComponent) Direction() float64 {
	if p.FacingLeft {
		return -1
	}
	return 1
}
