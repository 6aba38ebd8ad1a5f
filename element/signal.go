package element

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// Signal is a main/additional/Zs3 composite light signal. A transition
// is accepted only if every field of the target SignalAspect lies in
// the signal's SupportedAspects.
type Signal struct {
	mu        sync.RWMutex
	id        string
	name      string
	state     SignalAspect
	supported SupportedAspects
	log       *logiface.Logger[logiface.Event]
}

// NewSignal constructs a Signal with the default Hp0 composite aspect.
// If name is empty, it defaults to id.
func NewSignal(id, name string, supported SupportedAspects, log *logiface.Logger[logiface.Event]) *Signal {
	if name == "" {
		name = id
	}
	return &Signal{id: id, name: name, state: DefaultSignalAspect(), supported: supported, log: log}
}

func (s *Signal) ID() string { return s.id }

// Name returns the signal's human-readable name, used by DrivewayManager
// when resolving a driveway by operator-facing labels rather than ids.
func (s *Signal) Name() string { return s.name }

func (s *Signal) State() SignalAspect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetState accepts the target aspect only if every field lies in the
// signal's supported set. On rejection the signal is left unchanged.
func (s *Signal) SetState(new SignalAspect) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.supported.Supports(new) {
		return &ErrInvalidMainAspect{Aspect: new.Main}
	}
	s.state = new
	if s.log != nil {
		s.log.Debug().Str("signal", s.id).Str("aspect", new.String()).Log("signal aspect changed")
	}
	return nil
}

// Reset drives the signal back to the default Hp0 composite
// unconditionally, bypassing SetState's SupportedAspects check entirely
// — it can never fail, even for a signal whose supported set excludes
// Hp0. This matters because driveway.State.Commit's rollback-without-
// abort pass calls Reset on every signal in a failed commit specifically
// to guarantee they all end up at the safe default, regardless of what
// state they were in before.
func (s *Signal) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DefaultSignalAspect()
	if s.log != nil {
		s.log.Debug().Str("signal", s.id).Log("signal reset to default aspect")
	}
}
