package driveway

import (
	"testing"

	"github.com/railyard-signalling/interlocking/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supported(main ...element.MainAspect) element.SupportedAspects {
	return element.NewSupportedAspects(main, nil, nil, nil)
}

func newTestSignal(id string, main ...element.MainAspect) *element.Signal {
	return element.NewSignal(id, "", supported(main...), nil)
}

// TestDrivewayID checks the canonical "{start}-{end}" format (spec.md §4.3, §6).
func TestDrivewayID(t *testing.T) {
	start := newTestSignal("Start1", element.Hp0)
	end := newTestSignal("End1", element.Hp0)
	d := New(start, end, NewState(nil, nil, nil), nil)
	assert.Equal(t, "Start1-End1", d.ID())
}

func TestDrivewaySetWaySucceedsAndIsMonotone(t *testing.T) {
	start := newTestSignal("Start1", element.Hp0)
	end := newTestSignal("End1", element.Hp0, element.Ks1)
	d := New(start, end, NewState(nil, []SignalTarget{{Signal: end, Target: element.FromMain(element.Ks1)}}, nil), nil)

	assert.False(t, d.IsSet())
	require.NoError(t, d.SetWay())
	assert.True(t, d.IsSet())
	assert.Equal(t, element.Ks1, end.State().Main)
}

// TestDrivewayConflictBlock is scenario S2 from spec.md §8.
func TestDrivewayConflictBlock(t *testing.T) {
	a := newTestSignal("A", element.Hp0, element.Ks1)
	b := newTestSignal("B", element.Hp0, element.Ks1)
	c := newTestSignal("C", element.Hp0, element.Ks1)
	d := newTestSignal("D", element.Hp0, element.Ks1)

	start1, end1 := newTestSignal("Start1", element.Hp0), newTestSignal("End1", element.Hp0)
	dw1 := New(start1, end1, NewState(nil, []SignalTarget{
		{Signal: a, Target: element.FromMain(element.Ks1)},
		{Signal: b, Target: element.FromMain(element.Ks1)},
	}, nil), nil)

	start2, end2 := newTestSignal("Start2", element.Hp0), newTestSignal("End2", element.Hp0)
	dw2 := New(start2, end2, NewState(nil, []SignalTarget{
		{Signal: c, Target: element.FromMain(element.Ks1)},
		{Signal: d, Target: element.FromMain(element.Ks1)},
	}, nil), nil)
	dw2.addConflict(dw1)

	require.NoError(t, dw1.SetWay())

	err := dw2.SetWay()
	require.Error(t, err)
	var target *ErrHasConflictingDriveways
	require.ErrorAs(t, err, &target)
	assert.Equal(t, dw1.ID(), target.ConflictID)

	assert.Equal(t, element.Hp0, c.State().Main)
	assert.Equal(t, element.Hp0, d.State().Main)
	assert.False(t, dw2.IsSet())
}

// TestDrivewaySetWayLeavesStateUntouchedOnConflict is invariant 1 from
// spec.md §8: a failed set_way leaves every element at its pre-call aspect.
func TestDrivewaySetWayLeavesStateUntouchedOnConflict(t *testing.T) {
	p := element.NewPoint("P1", "", nil)
	require.NoError(t, p.SetState(element.Right))

	start, end := newTestSignal("Start1", element.Hp0), newTestSignal("End1", element.Hp0)
	other := New(newTestSignal("Start2", element.Hp0), newTestSignal("End2", element.Hp0), NewState(nil, nil, nil), nil)
	d := New(start, end, NewState([]PointTarget{{Point: p, Target: element.Left}}, nil, nil), nil)
	d.addConflict(other)
	other.isSet = true

	err := d.SetWay()
	require.Error(t, err)
	assert.Equal(t, element.Right, p.State(), "conflict check must short-circuit before commit touches any element")
}

func TestDrivewayStateSnapshotIncludesEndSignalAndPreviousSignals(t *testing.T) {
	start := newTestSignal("Start1", element.Hp0)
	mid := newTestSignal("Mid", element.Hp0, element.Ks1)
	end := newTestSignal("End1", element.Hp0)
	section := element.NewVacancySection("V1", []element.SignalElement{mid}, nil)

	d := New(start, end, NewState(nil, nil, []SectionTarget{{Section: section, Target: element.Free}}), nil)
	snap := d.State()

	ids := map[string]bool{}
	for _, s := range snap.Signals {
		ids[s.Signal.ID()] = true
	}
	assert.True(t, ids["End1"], "end signal must appear in the snapshot")
	assert.True(t, ids["Mid"], "previous signal of a target section must appear in the snapshot")
}

// TestDrivewayStateAlwaysAppendsEndSignal locks in that the end signal is
// pushed unconditionally, even when it also appears in the target's own
// signal list — only previous_signals get the "not already listed" guard.
func TestDrivewayStateAlwaysAppendsEndSignal(t *testing.T) {
	start := newTestSignal("Start1", element.Hp0)
	end := newTestSignal("End1", element.Hp0, element.Ks1)

	d := New(start, end, NewState(nil, []SignalTarget{{Signal: end, Target: element.FromMain(element.Ks1)}}, nil), nil)
	snap := d.State()

	count := 0
	for _, s := range snap.Signals {
		if s.Signal.ID() == "End1" {
			count++
		}
	}
	assert.Equal(t, 2, count, "end signal must be appended unconditionally, in addition to its target-list entry")
}
