// Package driveway implements driveway reservation, conflict-graph
// derivation and the driveway catalogue: the core of the interlocking
// kernel. See SPEC_FULL.md §4.2–§4.4.
package driveway

import (
	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/element"
)

// PointTarget pairs a point with the aspect a driveway wants it driven to.
type PointTarget struct {
	Point  element.PointElement
	Target element.PointAspect
}

// SignalTarget pairs a signal with the aspect a driveway wants it driven to.
type SignalTarget struct {
	Signal element.SignalElement
	Target element.SignalAspect
}

// SectionTarget pairs a vacancy section with the state a driveway wants
// it driven to.
type SectionTarget struct {
	Section element.SectionElement
	Target  element.SectionState
}

// State is an immutable-in-shape bundle of (element, target) triples
// describing a route's intended plant configuration. The order of each
// list is preserved and is the commit order (spec.md §3, §4.2) — it is
// never reordered by this package.
type State struct {
	Points   []PointTarget
	Signals  []SignalTarget
	Sections []SectionTarget
}

// NewState constructs a State from its three ordered lists.
func NewState(points []PointTarget, signals []SignalTarget, sections []SectionTarget) *State {
	return &State{Points: points, Signals: signals, Sections: sections}
}

// Commit drives every element in this State to its target, in three
// passes, per spec.md §4.2:
//
//  1. Points, in order; the first failure aborts the commit immediately
//     (already-moved points are left in their new position — points are
//     idempotent and mechanically reversible by re-commit, so no
//     rollback is attempted for them).
//  2. Signals, in order, stopping at the first rejection. If any signal
//     was rejected, every signal in the list (including ones never
//     attempted) is reset to its default Hp0 composite. The commit then
//     continues regardless — this is the documented rollback-without-
//     abort policy; see SPEC_FULL.md §9 and DESIGN.md for why this is
//     treated as a deliberate configuration decision, not a bug, and is
//     not changed here.
//  3. Sections, in order; the first failure aborts the commit
//     immediately.
func (s *State) Commit(log *logiface.Logger[logiface.Event]) error {
	for _, pt := range s.Points {
		if err := pt.Point.SetState(pt.Target); err != nil {
			return err
		}
	}

	var signalErr error
	for _, st := range s.Signals {
		if err := st.Signal.SetState(st.Target); err != nil {
			signalErr = err
			break
		}
	}
	if signalErr != nil {
		for _, st := range s.Signals {
			st.Signal.Reset()
		}
		if log != nil {
			log.Warning().Err(signalErr).Log("signal pass rejected, all signals rolled back to default")
		}
	}

	for _, sec := range s.Sections {
		if err := sec.Section.SetState(sec.Target); err != nil {
			return err
		}
	}
	return nil
}

// join concatenates other onto a copy of s, preserving order. Used by
// Manager.State to fold every driveway's snapshot into one combined view.
func (s *State) join(other *State) *State {
	points := make([]PointTarget, 0, len(s.Points)+len(other.Points))
	points = append(points, s.Points...)
	points = append(points, other.Points...)

	signals := make([]SignalTarget, 0, len(s.Signals)+len(other.Signals))
	signals = append(signals, s.Signals...)
	signals = append(signals, other.Signals...)

	sections := make([]SectionTarget, 0, len(s.Sections)+len(other.Sections))
	sections = append(sections, s.Sections...)
	sections = append(sections, other.Sections...)

	return &State{Points: points, Signals: signals, Sections: sections}
}
