package control

import (
	"bytes"
	"strings"
	"testing"

	"github.com/railyard-signalling/interlocking/driveway"
	"github.com/railyard-signalling/interlocking/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSignal(id string, main ...element.MainAspect) *element.Signal {
	return element.NewSignal(id, "", element.NewSupportedAspects(main, nil, nil, nil), nil)
}

func TestStationSetDrivewayCommand(t *testing.T) {
	start := newTestSignal("Start1", element.Hp0)
	end := newTestSignal("End1", element.Hp0, element.Ks1)
	dw := driveway.New(start, end, driveway.NewState(nil, []driveway.SignalTarget{{Signal: end, Target: element.FromMain(element.Ks1)}}, nil), nil)

	m := driveway.NewManager(nil)
	m.Add(dw)

	in := strings.NewReader("set Start1 End1\nquit\n")
	var out bytes.Buffer
	s := NewStation(m, in, &out, nil)

	require.NoError(t, s.Run())
	assert.True(t, dw.IsSet())
	assert.Contains(t, out.String(), "Setting driveway from Start1 to End1")
	assert.Contains(t, out.String(), "Exiting control station")
}

func TestStationUnknownCommand(t *testing.T) {
	m := driveway.NewManager(nil)
	in := strings.NewReader("frobnicate\nquit\n")
	var out bytes.Buffer
	s := NewStation(m, in, &out, nil)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Sorry, command 'frobnicate' is unknown")
}

func TestStationSetMissingArguments(t *testing.T) {
	m := driveway.NewManager(nil)
	in := strings.NewReader("set OnlyOne\nquit\n")
	var out bytes.Buffer
	s := NewStation(m, in, &out, nil)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Please provide two valid signals")
}

func TestStationSetUnknownDrivewayReportsError(t *testing.T) {
	m := driveway.NewManager(nil)
	in := strings.NewReader("set A B\nquit\n")
	var out bytes.Buffer
	s := NewStation(m, in, &out, nil)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "An error occurred")
}

func TestStationHelp(t *testing.T) {
	m := driveway.NewManager(nil)
	in := strings.NewReader("help\nquit\n")
	var out bytes.Buffer
	s := NewStation(m, in, &out, nil)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "==== HELP ====")
}

func TestStationStopsAtEOFWithoutQuit(t *testing.T) {
	m := driveway.NewManager(nil)
	in := strings.NewReader("")
	var out bytes.Buffer
	s := NewStation(m, in, &out, nil)

	require.NoError(t, s.Run())
}
