package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Controls are the abstract per-tick commands of the ship. Both the human
// mapping and the demo policy produce this shape, so the Playing update
// does not care where they came from.
type Controls struct {
	Left      bool
	Right     bool
	FireLeft  bool // launch from the left side of the ship
	FireRight bool // launch from the right side of the ship
	FireHeld  bool // a fire control is held; keeps the laser on
	Bomb      bool
}

// HumanControls maps button levels and edges to controls.
// B and Y move while held. A and X fire on their press edge; holding both
// is the bomb chord, which fires on the edge that completes it and
// suppresses single-side firing.
func HumanControls(in core.InputFrame, e core.Edges) Controls {
	a, x := in.Has(core.ButtonA), in.Has(core.ButtonX)
	both := a && x
	return Controls{
		Left:      in.Has(core.ButtonB),
		Right:     in.Has(core.ButtonY),
		FireLeft:  !both && e.Has(core.ButtonA),
		FireRight: !both && e.Has(core.ButtonX),
		FireHeld:  a || x,
		Bomb:      both && (e.Has(core.ButtonA) || e.Has(core.ButtonX)),
	}
}
