package systems

import (
	"fmt"
	"strings"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
)

// InspectorRow 实体检查面板中的一行，描述一个存活实体的当前状态
type InspectorRow struct {
	ID            ecs.EntityID
	Role          components.Role
	X, Y          float64
	HasAnimation  bool
	Frame         int
	FrameProgress float64 // 当前帧计时器的完成比例 [0, 1)
	HasCombat     bool
	Health        int64
	MaxHealth     int64
	Damage        int64
}

// String 格式化为面板中显示的一行文本
func (r InspectorRow) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%-4d %-8s (%7.1f, %6.1f)", r.ID, r.Role, r.X, r.Y)
	if r.HasAnimation {
		fmt.Fprintf(&b, "  frame %d %3.0f%%", r.Frame, r.FrameProgress*100)
	}
	if r.HasCombat {
		fmt.Fprintf(&b, "  hp %d/%d dmg %d", r.Health, r.MaxHealth, r.Damage)
	}
	return b.String()
}

// CollectInspectorRows 按ID顺序收集所有拥有位置组件的实体
// 只读取组件，不修改任何模拟状态
func CollectInspectorRows(em *ecs.EntityManager) []InspectorRow {
	ids := ecs.GetEntitiesWith1[*components.PositionComponent](em)
	rows := make([]InspectorRow, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		row := InspectorRow{ID: id, Role: components.RoleNeutral, X: pos.X, Y: pos.Y}

		if role, ok := ecs.GetComponent[*components.RoleComponent](em, id); ok {
			row.Role = role.Role
		}
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
			row.HasAnimation = true
			row.Frame = anim.CurrentFrame
			row.FrameProgress = anim.Timer.Progress()
		}
		if combat, ok := ecs.GetComponent[*components.CombatComponent](em, id); ok {
			row.HasCombat = true
			row.Health = combat.Health
			row.MaxHealth = combat.MaxHealth
			row.Damage = combat.Damage
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatInspectorRows 将行数据拼接为面板文本，超过 limit 行时折叠剩余部分
func FormatInspectorRows(rows []InspectorRow, limit int) string {
	if len(rows) == 0 {
		return "(no actors)"
	}
	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, row := range shown {
		lines = append(lines, row.String())
	}
	if hidden := len(rows) - len(shown); hidden > 0 {
		lines = append(lines, fmt.Sprintf("... %d more", hidden))
	}
	return strings.Join(lines, "\n")
}
