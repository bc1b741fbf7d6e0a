package systems

// InputLatch 每帧采样一次输入源，供同一帧内执行的所有模拟步共享
//
// 固定步长模式下一帧可能执行 0 个或多个模拟步，而输入每帧只变化一次：
//   - 行走状态取最近一次采样的值
//   - 开火按次数累计，每个模拟步最多消费一次，未消费的请求留到后续模拟步
type InputLatch struct {
	source       InputSource
	left, right  bool
	pendingShots int
}

// maxPendingShots 限制积压的开火请求，避免长时间没有模拟步后一次性连发
const maxPendingShots = 4

// NewInputLatch 创建输入锁存器，source 为 nil 时不产生任何输入
func NewInputLatch(source InputSource) *InputLatch {
	return &InputLatch{source: source}
}

// Poll 采样一次输入源，应在每帧模拟开始前调用一次
func (l *InputLatch) Poll() {
	if l.source == nil {
		return
	}
	l.left = l.source.MoveLeft()
	l.right = l.source.MoveRight()
	if l.source.FireJustPressed() && l.pendingShots < maxPendingShots {
		l.pendingShots++
	}
}

// MoveLeft 返回最近一次采样的向左状态
func (l *InputLatch) MoveLeft() bool {
	return l.left
}

// MoveRight 返回最近一次采样的向右状态
func (l *InputLatch) MoveRight() bool {
	return l.right
}

// FireJustPressed 消费一个待处理的开火请求
func (l *InputLatch) FireJustPressed() bool {
	if l.pendingShots == 0 {
		return false
	}
	l.pendingShots--
	return true
}

// PendingShots 返回尚未消费的开火请求数
func (l *InputLatch) PendingShots() int {
	return l.pendingShots
}
