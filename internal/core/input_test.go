package core

import (
	"testing"
	"time"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{ButtonA, "A"},
		{ButtonB, "B"},
		{ButtonX, "X"},
		{ButtonY, "Y"},
		{ButtonCount, "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.b.String(); got != tc.want {
			t.Errorf("Button(%d).String() = %q, want %q", tc.b, got, tc.want)
		}
	}
}

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame(ButtonA, ButtonY)

	if !f.Has(ButtonA) || !f.Has(ButtonY) {
		t.Error("held buttons should report Has")
	}
	if f.Has(ButtonB) || f.Has(ButtonX) {
		t.Error("released buttons should not report Has")
	}
	if f.Has(Button(-1)) || f.Has(ButtonCount) {
		t.Error("invalid buttons should never be held")
	}
	if !f.Any() {
		t.Error("Any() should be true")
	}
	if NewInputFrame().Any() {
		t.Error("empty frame should not report Any")
	}
}

func TestEdgeDetector(t *testing.T) {
	var d EdgeDetector

	e := d.Detect(NewInputFrame(ButtonA))
	if !e.Has(ButtonA) {
		t.Error("first press should be an edge")
	}

	e = d.Detect(NewInputFrame(ButtonA))
	if e.Any() {
		t.Error("holding a button should not produce another edge")
	}

	e = d.Detect(NewInputFrame(ButtonA, ButtonX))
	if e.Has(ButtonA) || !e.Has(ButtonX) {
		t.Errorf("only X should be a new edge, got %v", e)
	}

	d.Detect(NewInputFrame())
	e = d.Detect(NewInputFrame(ButtonA))
	if !e.Has(ButtonA) {
		t.Error("press after release should be an edge")
	}
}

func TestKeyLatchHoldWindow(t *testing.T) {
	l := NewKeyLatch(100 * time.Millisecond)

	if l.Sample(0).Any() {
		t.Error("nothing pressed yet")
	}

	l.Press(ButtonB, 10*time.Millisecond)

	if !l.Sample(50 * time.Millisecond).Has(ButtonB) {
		t.Error("button should be held inside the window")
	}
	if l.Sample(110 * time.Millisecond).Has(ButtonB) {
		t.Error("button should be released after the window")
	}

	// Auto-repeat keeps it held
	l.Press(ButtonB, 105*time.Millisecond)
	if !l.Sample(150 * time.Millisecond).Has(ButtonB) {
		t.Error("repeat press should extend the hold")
	}

	l.Release()
	if l.Sample(150 * time.Millisecond).Any() {
		t.Error("Release should drop all buttons")
	}
}

func TestKeyLatchChord(t *testing.T) {
	l := NewKeyLatch(150 * time.Millisecond)
	l.Press(ButtonA, 0)
	l.Press(ButtonX, 40*time.Millisecond)

	f := l.Sample(60 * time.Millisecond)
	if !f.Has(ButtonA) || !f.Has(ButtonX) {
		t.Error("presses close together should be held simultaneously")
	}
	if f.At != 60*time.Millisecond {
		t.Errorf("sample timestamp = %v, want 60ms", f.At)
	}
}
