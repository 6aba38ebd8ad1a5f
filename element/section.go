package element

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// SectionState is a vacancy section's occupancy state.
type SectionState int

const (
	Free SectionState = iota
	Occupied
	CommunicationError
	Disturbed
)

func (s SectionState) String() string {
	switch s {
	case Free:
		return "Free"
	case Occupied:
		return "Occupied"
	case CommunicationError:
		return "CommunicationError"
	case Disturbed:
		return "Disturbed"
	default:
		return "Unknown"
	}
}

// VacancySection is a track segment whose occupancy drives the signals
// upstream of it to Hp0 (danger) whenever it becomes occupied.
type VacancySection struct {
	mu              sync.RWMutex
	id              string
	state           SectionState
	previousSignals []SignalElement
	log             *logiface.Logger[logiface.Event]
}

// NewVacancySection constructs a Free VacancySection. previousSignals is
// the ordered list of signals this section forces to Hp0 on occupancy.
func NewVacancySection(id string, previousSignals []SignalElement, log *logiface.Logger[logiface.Event]) *VacancySection {
	return &VacancySection{id: id, state: Free, previousSignals: previousSignals, log: log}
}

func (v *VacancySection) ID() string { return v.id }

func (v *VacancySection) State() SectionState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// PreviousSignals returns the signals this section forces to Hp0 on
// occupancy, in declaration order.
func (v *VacancySection) PreviousSignals() []SignalElement {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]SignalElement, len(v.previousSignals))
	copy(out, v.previousSignals)
	return out
}

// SetState assigns the section's state, then — only when the new state
// is Occupied — forces every previous signal to Hp0. Assignment of the
// section state itself never fails; the first signal rejection (e.g. a
// previous signal that doesn't support Hp0, a plant misconfiguration) is
// surfaced as an *element.ErrInvalidMainAspect, but the section's own
// state has already been updated by that point.
func (v *VacancySection) SetState(new SectionState) error {
	v.mu.Lock()
	v.state = new
	signals := make([]SignalElement, len(v.previousSignals))
	copy(signals, v.previousSignals)
	v.mu.Unlock()

	if v.log != nil {
		v.log.Debug().Str("section", v.id).Str("state", new.String()).Log("vacancy section state changed")
	}

	if new != Occupied {
		return nil
	}
	danger := FromMain(Hp0)
	for _, sig := range signals {
		if err := sig.SetState(danger); err != nil {
			return err
		}
	}
	return nil
}

// Reset returns the section to Free. Previous signals are untouched, per
// the invariant that only transitions INTO Occupied touch them.
func (v *VacancySection) Reset() {
	v.mu.Lock()
	v.state = Free
	v.mu.Unlock()
}
