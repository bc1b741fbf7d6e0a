package systems

import (
	"testing"

	"github.com/decker502/zombierush/pkg/components"
	"github.com/decker502/zombierush/pkg/ecs"
)

func TestAnimationSystemCyclesFrames(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnAnimated(t, em, 0, 5, components.TimerCarry)
	system := NewAnimationSystem(em)

	// 每 0.1 秒前进一帧，第 6 次回到 0
	want := []int{1, 2, 3, 4, 5, 0, 1}
	for i, w := range want {
		system.Update(0.1)
		if got := mustAnimation(t, em, id).CurrentFrame; got != w {
			t.Fatalf("tick %d: frame = %d, want %d", i+1, got, w)
		}
	}
}

func TestAnimationSystemLongTick(t *testing.T) {
	tests := []struct {
		name string
		mode components.TimerMode
		want int
	}{
		// 0.65 秒包含 6 个完整周期，保留余量时一次推进 6 帧回到起点
		{name: "保留余量", mode: components.TimerCarry, want: 0},
		// 重置模式一次最多换一帧
		{name: "到期重置", mode: components.TimerReset, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := spawnAnimated(t, em, 0, 5, tt.mode)
			NewAnimationSystem(em).Update(0.65)
			if got := mustAnimation(t, em, id).CurrentFrame; got != tt.want {
				t.Errorf("frame = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnimationSystemSubPeriodTicksAccumulate(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnAnimated(t, em, 0, 5, components.TimerCarry)
	system := NewAnimationSystem(em)

	system.Update(0.05)
	if got := mustAnimation(t, em, id).CurrentFrame; got != 0 {
		t.Fatalf("frame after half period = %d, want 0", got)
	}
	system.Update(0.05)
	if got := mustAnimation(t, em, id).CurrentFrame; got != 1 {
		t.Fatalf("frame after full period = %d, want 1", got)
	}
}

func TestAnimationSystemSingleFrameRange(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnAnimated(t, em, 3, 3, components.TimerCarry)
	system := NewAnimationSystem(em)

	for i := 0; i < 10; i++ {
		system.Update(0.1)
	}
	anim := mustAnimation(t, em, id)
	if anim.CurrentFrame != 3 {
		t.Errorf("frame = %d, want 3", anim.CurrentFrame)
	}
	if anim.Timer.Elapsed != 0 {
		t.Errorf("timer should keep ticking and wrap, elapsed = %v", anim.Timer.Elapsed)
	}
}

func TestAnimationSystemIgnoresEntitiesWithoutAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	plain := spawnEnemy(t, em, 0, 0, 10)
	NewAnimationSystem(em).Update(1)
	if ecs.HasComponent[*components.AnimationComponent](em, plain) {
		t.Error("animation must not be added to entities without one")
	}
}
