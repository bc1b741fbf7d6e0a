package utils

import (
	"math"
	"time"
)

// SecondsToDuration 将秒数转换为 time.Duration（四舍五入到纳秒）
func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// FixedStepClock 将不规则的帧间隔转换为整数个固定模拟步
// 多出的时间保留到下一帧，保证模拟结果与帧率抖动无关
type FixedStepClock struct {
	step        time.Duration // 每个模拟步的时长
	accumulator time.Duration // 尚未消耗的时间
	maxSteps    int           // 单帧最多追赶的步数
}

// NewFixedStepClock 创建固定步长时钟
//
// 参数:
//   - tickRate: 每秒模拟步数，非正值使用 60
//   - maxSteps: 单帧最多执行的步数，超出部分丢弃，非正值使用 1
func NewFixedStepClock(tickRate int, maxSteps int) *FixedStepClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &FixedStepClock{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Step 返回每个模拟步的时长（秒）
func (c *FixedStepClock) Step() float64 {
	return c.step.Seconds()
}

// Advance 累加帧间隔并返回本帧应执行的模拟步数
// 积压超过 maxSteps 时丢弃多余的时间，避免卡顿后的"死亡螺旋"
func (c *FixedStepClock) Advance(frameDelta time.Duration) int {
	if frameDelta > 0 {
		c.accumulator += frameDelta
	}

	steps := int(c.accumulator / c.step)
	if steps > c.maxSteps {
		steps = c.maxSteps
		c.accumulator = 0
		return steps
	}
	c.accumulator -= time.Duration(steps) * c.step
	return steps
}

// ClampDelta 限制可变步长模式下的帧间隔
func ClampDelta(deltaTime, limit float64) float64 {
	if deltaTime > limit {
		return limit
	}
	if deltaTime < 0 {
		return 0
	}
	return deltaTime
}
