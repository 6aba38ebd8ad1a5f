package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVacancySectionOccupancyForcesHp0 is scenario S4 from spec.md §8.
func TestVacancySectionOccupancyForcesHp0(t *testing.T) {
	s1 := NewSignal("S1", "", NewSupportedAspects([]MainAspect{Hp0, Ks1}, nil, nil, nil), nil)
	s2 := NewSignal("S2", "", NewSupportedAspects([]MainAspect{Hp0, Ks1}, nil, nil, nil), nil)
	require.NoError(t, s1.SetState(FromMain(Ks1)))
	require.NoError(t, s2.SetState(FromMain(Ks1)))

	section := NewVacancySection("V1", []SignalElement{s1, s2}, nil)
	require.NoError(t, section.SetState(Occupied))

	assert.Equal(t, Hp0, s1.State().Main)
	assert.Equal(t, Hp0, s2.State().Main)
	assert.Equal(t, Occupied, section.State())
}

func TestVacancySectionNonOccupiedLeavesSignalsAlone(t *testing.T) {
	s1 := NewSignal("S1", "", NewSupportedAspects([]MainAspect{Hp0, Ks1}, nil, nil, nil), nil)
	require.NoError(t, s1.SetState(FromMain(Ks1)))

	section := NewVacancySection("V1", []SignalElement{s1}, nil)
	require.NoError(t, section.SetState(Disturbed))

	assert.Equal(t, Ks1, s1.State().Main)
	assert.Equal(t, Disturbed, section.State())
}

func TestVacancySectionPropagatesFirstSignalRejection(t *testing.T) {
	// a previous signal that doesn't support Hp0 at all (misconfiguration)
	broken := NewSignal("SBroken", "", NewSupportedAspects([]MainAspect{Ks1}, nil, nil, nil), nil)
	require.NoError(t, broken.SetState(FromMain(Ks1)))

	section := NewVacancySection("V2", []SignalElement{broken}, nil)
	err := section.SetState(Occupied)
	require.Error(t, err)
	var target *ErrInvalidMainAspect
	require.ErrorAs(t, err, &target)
	// section state assignment itself never fails, even though the signal push did
	assert.Equal(t, Occupied, section.State())
}
