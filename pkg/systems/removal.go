package systems

import (
	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
)

// RemovalReason 实体被移除的原因
type RemovalReason int

const (
	// RemovalHit 攻击者命中敌人后被消耗
	RemovalHit RemovalReason = iota
	// RemovalKilled 敌人生命值归零
	RemovalKilled
	// RemovalExpired 超过最长存在时间
	RemovalExpired
	// RemovalEscaped 离开世界边界
	RemovalEscaped
	// RemovalOther 其他调用方通过 DestroyEntity 标记的删除
	RemovalOther
)

// String 返回原因名称，用于日志
func (r RemovalReason) String() string {
	switch r {
	case RemovalHit:
		return "hit"
	case RemovalKilled:
		return "killed"
	case RemovalExpired:
		return "expired"
	case RemovalEscaped:
		return "escaped"
	default:
		return "other"
	}
}

// Removal 描述一次实体移除，供计分、特效等外部逻辑使用
type Removal struct {
	ID     ecs.EntityID
	Role   components.Role
	Reason RemovalReason
}
