package driveway

import (
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/element"
)

// Driveway is a scoped route reservation from a start signal to an end
// signal, with a target plant configuration and a list of driveways it
// conflicts with (spec.md §3, §4.3).
type Driveway struct {
	mu          sync.RWMutex
	conflicts   []*Driveway
	isSet       bool
	target      *State
	startSignal element.NamedSignal
	endSignal   element.NamedSignal
	log         *logiface.Logger[logiface.Event]
}

// New constructs a Driveway. is_set starts false; conflicts is normally
// populated afterward by Manager.UpdateConflictingDriveways.
func New(start, end element.NamedSignal, target *State, log *logiface.Logger[logiface.Event]) *Driveway {
	return &Driveway{startSignal: start, endSignal: end, target: target, log: log}
}

// ID is "{start.id}-{end.id}", ASCII, unescaped (spec.md §6).
func (d *Driveway) ID() string {
	return d.startSignal.ID() + "-" + d.endSignal.ID()
}

// IsSet reports whether this driveway has been successfully committed.
// There is no release operation in the core; once true, it stays true
// (spec.md §3, Open Questions).
func (d *Driveway) IsSet() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.isSet
}

// addConflict appends other to this driveway's conflict list. Not
// exported: only Manager.UpdateConflictingDriveways constructs the
// conflict graph.
func (d *Driveway) addConflict(other *Driveway) {
	d.mu.Lock()
	d.conflicts = append(d.conflicts, other)
	d.mu.Unlock()
}

// SetWay tests the conflict list, then commits the target state. If any
// conflicting driveway is currently set, no state is touched and
// ErrHasConflictingDriveways is returned. Otherwise target.Commit runs,
// and is_set becomes true only if it succeeds (spec.md §4.3).
func (d *Driveway) SetWay() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.conflicts {
		if c.IsSet() {
			return &ErrHasConflictingDriveways{ConflictID: c.ID()}
		}
	}

	if err := d.target.Commit(d.log); err != nil {
		return err
	}
	d.isSet = true
	if d.log != nil {
		d.log.Info().Str("driveway", d.ID()).Log("driveway set")
	}
	return nil
}

// State snapshots the CURRENT (observed) aspect of every element
// referenced by the target, plus the end signal, plus — for each
// vacancy section in the target — any previous signal not already
// listed (spec.md §4.3). The returned State's target-aspect fields hold
// observed values, not the driveway's target values.
func (d *Driveway) State() *State {
	d.mu.RLock()
	target := d.target
	end := d.endSignal
	d.mu.RUnlock()

	points := make([]PointTarget, 0, len(target.Points))
	for _, pt := range target.Points {
		points = append(points, PointTarget{Point: pt.Point, Target: pt.Point.State()})
	}

	signals := make([]SignalTarget, 0, len(target.Signals)+1)
	seen := map[string]struct{}{}
	for _, st := range target.Signals {
		signals = append(signals, SignalTarget{Signal: st.Signal, Target: st.Signal.State()})
		seen[st.Signal.ID()] = struct{}{}
	}
	// end is always appended, unlike previous_signals below: spec.md §4.3
	// lists it unconditionally, with the "not already listed" guard
	// applying only to previous_signals.
	signals = append(signals, SignalTarget{Signal: end, Target: end.State()})
	seen[end.ID()] = struct{}{}

	sections := make([]SectionTarget, 0, len(target.Sections))
	for _, sec := range target.Sections {
		sections = append(sections, SectionTarget{Section: sec.Section, Target: sec.Section.State()})
		if named, ok := sec.Section.(element.HasPreviousSignals); ok {
			for _, sig := range named.PreviousSignals() {
				if _, ok := seen[sig.ID()]; ok {
					continue
				}
				signals = append(signals, SignalTarget{Signal: sig, Target: sig.State()})
				seen[sig.ID()] = struct{}{}
			}
		}
	}

	return &State{Points: points, Signals: signals, Sections: sections}
}

func (d *Driveway) startID() string { return d.startSignal.ID() }
func (d *Driveway) endID() string   { return d.endSignal.ID() }
