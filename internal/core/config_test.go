package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigResolved(t *testing.T) {
	now := time.Unix(1700000000, 0)

	got := RuntimeConfig{ScreenW: 100, ScreenH: 40}.Resolved(now)
	if got.TickRate != 30 || got.Seed != now.UnixNano() {
		t.Errorf("Resolved() = %+v", got)
	}

	fixed := RuntimeConfig{TickRate: 60, Seed: 7}.Resolved(now)
	if fixed.TickRate != 60 || fixed.Seed != 7 {
		t.Errorf("explicit values overwritten: %+v", fixed)
	}
}
