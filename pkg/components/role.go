package components

import "github.com/decker502/zombierush/pkg/config"

// Role 定义实体在战斗中的角色
// CombatSystem 只在 RoleAttacker 与 RoleEnemy 之间做碰撞检测
type Role int

const (
	// RoleNeutral 中立：不参与碰撞（如玩家）
	RoleNeutral Role = iota
	// RoleAttacker 攻击者：命中敌人后立即消失（如子弹）
	RoleAttacker
	// RoleEnemy 敌人：受到伤害，生命值归零后被移除（如僵尸）
	RoleEnemy
)

// String 返回角色名称，用于日志
func (r Role) String() string {
	switch r {
	case RoleNeutral:
		return "neutral"
	case RoleAttacker:
		return "attacker"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// RoleComponent 标识实体的战斗角色
type RoleComponent struct {
	Role Role
}

// HalfExtent 返回角色固定的碰撞盒半边长（两轴相同）
//   - 攻击者: 2.5（5x5 碰撞盒）
//   - 敌人: 16（32x32 碰撞盒）
//   - 中立: 0
func HalfExtent(role Role) float64 {
	switch role {
	case RoleAttacker:
		return config.AttackerHalfExtent
	case RoleEnemy:
		return config.EnemyHalfExtent
	default:
		return 0
	}
}
