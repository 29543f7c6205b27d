package raster

import "testing"

func TestStatusExpiry(t *testing.T) {
	var s Statuses
	s.Push(StatusMath, "many poles in view", 2)
	if len(s.Active()) != 1 {
		t.Fatalf("active=%d", len(s.Active()))
	}
	s.Tick()
	if len(s.Active()) != 1 {
		t.Fatalf("expired a frame early")
	}
	s.Tick()
	if len(s.Active()) != 0 {
		t.Fatalf("message did not expire")
	}
}

func TestStatusDedup(t *testing.T) {
	var s Statuses
	s.Push(StatusMath, "warn", 5)
	s.Tick()
	s.Push(StatusMath, "warn", 5)
	if len(s.Active()) != 1 {
		t.Fatalf("duplicate message stacked")
	}
	if s.Active()[0].Remaining != 5 {
		t.Fatalf("timer not refreshed: %d", s.Active()[0].Remaining)
	}
	s.Push(StatusRender, "warn", 5)
	if len(s.Active()) != 2 {
		t.Fatalf("different kind deduped")
	}
}
