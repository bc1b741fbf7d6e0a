package components

// AnimationComponent 管理循环帧动画
// 帧索引在闭区间 [FrameStart, FrameEnd] 内循环，任何时刻都满足
// FrameStart <= CurrentFrame <= FrameEnd
type AnimationComponent struct {
	FrameStart   int
	FrameEnd     int
	CurrentFrame int
	Timer        TimerComponent // 换帧计时器，每个周期前进一帧
}

// FrameCount 返回循环区间内的帧数
func (a *AnimationComponent) FrameCount() int {
	return a.FrameEnd - a.FrameStart + 1
}

// Step 前进 n 帧，到达 FrameEnd 后回到 FrameStart
// FrameStart == FrameEnd 时始终停留在同一帧
func (a *AnimationComponent) Step(n int) {
	if n <= 0 {
		return
	}
	if a.CurrentFrame < a.FrameStart || a.CurrentFrame > a.FrameEnd {
		a.CurrentFrame = a.FrameStart
	}
	count := a.FrameCount()
	if count <= 1 {
		a.CurrentFrame = a.FrameStart
		return
	}
	offset := (a.CurrentFrame - a.FrameStart + n) % count
	a.CurrentFrame = a.FrameStart + offset
}

// SetRange 切换动画区间（如站立 -> 行走）
// 区间不变时保持当前帧和计时器；当前帧落在新区间外时从新区间起点开始
func (a *AnimationComponent) SetRange(start, end int) {
	if a.FrameStart == start && a.FrameEnd == end {
		return
	}
	a.FrameStart = start
	a.FrameEnd = end
	if a.CurrentFrame < start || a.CurrentFrame > end {
		a.CurrentFrame = start
		a.Timer.Elapsed = 0
	}
}
