package driveway

import (
	"context"
	"testing"

	"github.com/railyard-signalling/interlocking/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpdateConflictingDrivewaysContinuousExempt is scenario S5 from
// spec.md §8: two driveways meeting end-to-start at a shared boundary
// signal are not flagged as conflicting on that signal alone.
func TestUpdateConflictingDrivewaysContinuousExempt(t *testing.T) {
	x := newTestSignal("X", element.Hp0, element.Ks1)
	a := newTestSignal("A", element.Hp0)
	b := newTestSignal("B", element.Hp0)

	// dw1: A -> X
	dw1 := New(a, x, NewState(nil, []SignalTarget{{Signal: x, Target: element.FromMain(element.Ks1)}}, nil), nil)
	// dw2: X -> B
	dw2 := New(x, b, NewState(nil, []SignalTarget{{Signal: x, Target: element.FromMain(element.Ks1)}}, nil), nil)

	m := NewManager(nil)
	m.Add(dw1)
	m.Add(dw2)
	require.NoError(t, m.UpdateConflictingDriveways(context.Background()))

	assert.NotContains(t, dw1.conflicts, dw2)
	assert.NotContains(t, dw2.conflicts, dw1)
}

// TestUpdateConflictingDrivewaysSharedPoint is scenario S6 from spec.md §8.
func TestUpdateConflictingDrivewaysSharedPoint(t *testing.T) {
	p7 := element.NewPoint("P7", "", nil)

	dw1 := New(newTestSignal("Start1", element.Hp0), newTestSignal("End1", element.Hp0),
		NewState([]PointTarget{{Point: p7, Target: element.Left}}, nil, nil), nil)
	dw2 := New(newTestSignal("Start2", element.Hp0), newTestSignal("End2", element.Hp0),
		NewState([]PointTarget{{Point: p7, Target: element.Right}}, nil, nil), nil)

	m := NewManager(nil)
	m.Add(dw1)
	m.Add(dw2)
	require.NoError(t, m.UpdateConflictingDriveways(context.Background()))

	assert.Contains(t, dw1.conflicts, dw2)
	assert.Contains(t, dw2.conflicts, dw1)

	require.NoError(t, dw1.SetWay())
	err := dw2.SetWay()
	require.Error(t, err)
}

func TestManagerSetDrivewayByID(t *testing.T) {
	start, end := newTestSignal("Start1", element.Hp0), newTestSignal("End1", element.Hp0, element.Ks1)
	dw := New(start, end, NewState(nil, []SignalTarget{{Signal: end, Target: element.FromMain(element.Ks1)}}, nil), nil)

	m := NewManager(nil)
	m.Add(dw)

	require.NoError(t, m.SetDriveway("Start1", "End1"))
	assert.True(t, dw.IsSet())
}

func TestManagerSetDrivewayByName(t *testing.T) {
	start := element.NewSignal("S1", "Alpha", supported(element.Hp0), nil)
	end := element.NewSignal("E1", "Bravo", supported(element.Hp0, element.Ks1), nil)
	// the start signal is listed in the target so that it appears in the
	// driveway's State snapshot, which is what name resolution searches
	dw := New(start, end, NewState(nil, []SignalTarget{
		{Signal: start, Target: element.FromMain(element.Hp0)},
		{Signal: end, Target: element.FromMain(element.Ks1)},
	}, nil), nil)

	m := NewManager(nil)
	m.Add(dw)

	require.NoError(t, m.SetDriveway("Alpha", "Bravo"))
	assert.True(t, dw.IsSet())
}

func TestManagerSetDrivewayDoesNotExist(t *testing.T) {
	m := NewManager(nil)
	err := m.SetDriveway("Nope", "AlsoNope")
	require.Error(t, err)
	var target *ErrDrivewayDoesNotExist
	assert.ErrorAs(t, err, &target)
}

func TestManagerAddOverwritesDuplicateKey(t *testing.T) {
	start, end := newTestSignal("Start1", element.Hp0), newTestSignal("End1", element.Hp0)
	first := New(start, end, NewState(nil, nil, nil), nil)
	second := New(start, end, NewState(nil, nil, nil), nil)

	m := NewManager(nil)
	m.Add(first)
	m.Add(second)

	got, ok := m.Get("Start1-End1")
	require.True(t, ok)
	assert.Same(t, second, got)
}
