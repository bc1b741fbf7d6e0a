package components

import "time"

// TimerMode 定义周期计时器在到期时如何处理多出的时间
type TimerMode int

const (
	// TimerCarry 保留超出周期的余量，一次推进可完成多个周期，不丢失时间
	TimerCarry TimerMode = iota
	// TimerReset 到期即清零，一次推进最多完成一个周期
	TimerReset
)

// TimerComponent 通用周期计时器
// 用于动画换帧、生成间隔等需要按周期触发的行为
// 使用 time.Duration 累加，避免浮点误差导致周期边界漂移
type TimerComponent struct {
	Period  time.Duration // 周期
	Elapsed time.Duration // 当前周期内已累计的时间
	Mode    TimerMode
}

// NewRepeatingTimer 创建一个周期计时器
func NewRepeatingTimer(period time.Duration, mode TimerMode) TimerComponent {
	return TimerComponent{Period: period, Mode: mode}
}

// Advance 推进计时器
//
// 参数:
//   - dt: 本次经过的时间，非正值不推进
//
// 返回:
//   - int: 本次推进完成的周期数
func (t *TimerComponent) Advance(dt time.Duration) int {
	if t.Period <= 0 || dt <= 0 {
		return 0
	}

	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return 0
	}

	if t.Mode == TimerReset {
		t.Elapsed = 0
		return 1
	}

	completed := int(t.Elapsed / t.Period)
	t.Elapsed -= time.Duration(completed) * t.Period
	return completed
}

// Progress 返回当前周期的完成比例 [0, 1)
func (t *TimerComponent) Progress() float64 {
	if t.Period <= 0 {
		return 0
	}
	return float64(t.Elapsed) / float64(t.Period)
}
