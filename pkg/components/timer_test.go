package components

import (
	"testing"
	"time"
)

func TestTimerAdvance(t *testing.T) {
	tests := []struct {
		name        string
		mode        TimerMode
		steps       []time.Duration
		wantFired   int
		wantElapsed time.Duration
	}{
		{
			name:        "未到周期不触发",
			mode:        TimerCarry,
			steps:       []time.Duration{40 * time.Millisecond, 50 * time.Millisecond},
			wantFired:   0,
			wantElapsed: 90 * time.Millisecond,
		},
		{
			name:        "刚好一个周期",
			mode:        TimerCarry,
			steps:       []time.Duration{100 * time.Millisecond},
			wantFired:   1,
			wantElapsed: 0,
		},
		{
			name:        "保留余量：一次推进完成多个周期",
			mode:        TimerCarry,
			steps:       []time.Duration{650 * time.Millisecond},
			wantFired:   6,
			wantElapsed: 50 * time.Millisecond,
		},
		{
			name:        "保留余量：跨多次推进累计",
			mode:        TimerCarry,
			steps:       []time.Duration{70 * time.Millisecond, 70 * time.Millisecond, 70 * time.Millisecond},
			wantFired:   2,
			wantElapsed: 10 * time.Millisecond,
		},
		{
			name:        "重置模式：一次推进最多触发一次",
			mode:        TimerReset,
			steps:       []time.Duration{650 * time.Millisecond},
			wantFired:   1,
			wantElapsed: 0,
		},
		{
			name:        "重置模式：余量丢弃",
			mode:        TimerReset,
			steps:       []time.Duration{70 * time.Millisecond, 70 * time.Millisecond, 70 * time.Millisecond},
			wantFired:   1,
			wantElapsed: 70 * time.Millisecond,
		},
		{
			name:        "非正时间不推进",
			mode:        TimerCarry,
			steps:       []time.Duration{0, -time.Second},
			wantFired:   0,
			wantElapsed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewRepeatingTimer(100*time.Millisecond, tt.mode)
			fired := 0
			for _, dt := range tt.steps {
				fired += timer.Advance(dt)
			}
			if fired != tt.wantFired {
				t.Errorf("fired = %d, want %d", fired, tt.wantFired)
			}
			if timer.Elapsed != tt.wantElapsed {
				t.Errorf("Elapsed = %v, want %v", timer.Elapsed, tt.wantElapsed)
			}
		})
	}
}

func TestTimerZeroPeriodNeverFires(t *testing.T) {
	timer := NewRepeatingTimer(0, TimerCarry)
	if n := timer.Advance(time.Second); n != 0 {
		t.Errorf("Advance() = %d, want 0 for zero period", n)
	}
	if p := timer.Progress(); p != 0 {
		t.Errorf("Progress() = %f, want 0", p)
	}
}

func TestTimerProgress(t *testing.T) {
	timer := NewRepeatingTimer(100*time.Millisecond, TimerCarry)
	timer.Advance(25 * time.Millisecond)
	if p := timer.Progress(); p != 0.25 {
		t.Errorf("Progress() = %f, want 0.25", p)
	}
}
