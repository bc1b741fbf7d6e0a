package utils

import (
	"testing"
	"time"
)

func TestFixedStepClockAdvance(t *testing.T) {
	clock := NewFixedStepClock(60, 5)
	step := time.Second / 60

	tests := []struct {
		name  string
		delta time.Duration
		want  int
	}{
		{name: "不足一步", delta: step / 2, want: 0},
		{name: "与上次余量合并成一步", delta: step / 2, want: 1},
		{name: "恰好两步", delta: 2 * step, want: 2},
		{name: "零间隔", delta: 0, want: 0},
		{name: "超过上限被截断", delta: 20 * step, want: 5},
		{name: "截断后不再追赶", delta: 0, want: 0},
	}

	for _, tt := range tests {
		if got := clock.Advance(tt.delta); got != tt.want {
			t.Errorf("%s: Advance(%v) = %d, want %d", tt.name, tt.delta, got, tt.want)
		}
	}
}

func TestFixedStepClockDefaults(t *testing.T) {
	clock := NewFixedStepClock(0, 0)
	if clock.Step() != (time.Second / 60).Seconds() {
		t.Errorf("Step() = %v, want 1/60", clock.Step())
	}
	if got := clock.Advance(time.Second); got != 1 {
		t.Errorf("maxSteps default should be 1, got %d", got)
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 0.016, want: 0.016},
		{in: 0.5, want: 0.06},
		{in: -1, want: 0},
	}
	for _, tt := range tests {
		if got := ClampDelta(tt.in, 0.06); got != tt.want {
			t.Errorf("ClampDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSecondsToDuration(t *testing.T) {
	if got := SecondsToDuration(0.1); got != 100*time.Millisecond {
		t.Errorf("SecondsToDuration(0.1) = %v", got)
	}
	if got := SecondsToDuration(0.65); got != 650*time.Millisecond {
		t.Errorf("SecondsToDuration(0.65) = %v", got)
	}
}

func TestSecondsToDurationRoundsToNearest(t *testing.T) {
	// 1/60 秒 = 16666666.67ns，应舍入为 16666667ns
	frame := SecondsToDuration(1.0 / 60)
	if frame != 16666667*time.Nanosecond {
		t.Fatalf("SecondsToDuration(1/60) = %d ns, want 16666667", frame)
	}
	// 两帧累计不少于 30Hz 的一个步长
	if 2*frame < time.Second/30 {
		t.Errorf("two 60Hz frames (%v) shorter than one 30Hz step (%v)", 2*frame, time.Second/30)
	}

	// 一秒内 60 帧累计误差不超过 60ns
	var total time.Duration
	for i := 0; i < 60; i++ {
		total += frame
	}
	if diff := total - time.Second; diff < -60 || diff > 60 {
		t.Errorf("60 frames sum to %v, drift %v", total, diff)
	}
}
