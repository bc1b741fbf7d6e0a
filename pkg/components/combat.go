package components

// CombatComponent 存储参与战斗实体的生命值与伤害
// Health 在单个 tick 内可能暂时为负，但 CombatSystem 会在 tick 结束前移除
// 所有 Health <= 0 的敌人
type CombatComponent struct {
	Health    int64 // 当前生命值
	MaxHealth int64 // 初始生命值，用于 HUD 显示血条
	Damage    int64 // 命中时对目标造成的伤害
}

// IsDead 检查生命值是否已耗尽
func (c *CombatComponent) IsDead() bool {
	return c.Health <= 0
}
