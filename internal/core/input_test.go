package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}
	if f.Has(ActionSelect) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionSelect)
	f.AddClick(3, 4)
	if !f.Has(ActionSelect) || f.Empty() {
		t.Error("frame should report the select action")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionSelect) || len(clone.Clicks) != 1 || clone.Clicks[0] != (Click{X: 3, Y: 4}) {
		t.Errorf("clone should be unaffected by Clear, got %+v", clone)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionLeft:   "Left",
		ActionSelect: "Select",
		ActionCancel: "Cancel",
		ActionDebug:  "Debug",
		Action(99):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
