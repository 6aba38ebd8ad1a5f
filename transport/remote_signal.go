package transport

import (
	"sync"

	"github.com/google/uuid"
	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/element"
	"github.com/railyard-signalling/interlocking/sci"
)

// signalCommand is a queued show-aspect request, tagged with a
// correlation id for the same reason pointCommand is.
type signalCommand struct {
	id     uuid.UUID
	target element.SignalAspect
}

// RemoteSignal is the SCI-LS counterpart of RemotePoint (source:
// sci_signal.rs SCISignal). It additionally carries a Name so it
// satisfies element.NamedSignal and can stand in for a local Signal as
// a driveway's start or end signal.
type RemoteSignal struct {
	mu       sync.RWMutex
	id       string
	name     string
	state    element.SignalAspect
	sender   string
	receiver string
	peer     Peer
	queue    chan signalCommand
	closed   chan struct{}
	log      *logiface.Logger[logiface.Event]
}

// NewRemoteSignal constructs a RemoteSignal and starts its worker
// goroutine.
func NewRemoteSignal(id, name string, initial element.SignalAspect, sender, receiver string, peer Peer, log *logiface.Logger[logiface.Event]) *RemoteSignal {
	s := &RemoteSignal{
		id:       id,
		name:     name,
		state:    initial,
		sender:   sender,
		receiver: receiver,
		peer:     peer,
		queue:    make(chan signalCommand, 256),
		closed:   make(chan struct{}),
		log:      log,
	}
	go s.run()
	return s
}

func (s *RemoteSignal) run() {
	for {
		select {
		case <-s.closed:
			return
		case cmd := <-s.queue:
			tg := sci.ShowSignalAspect(s.sender, s.receiver, cmd.target)
			if err := s.peer.Send(tg); err != nil && s.log != nil {
				s.log.Warning().Str("signal", s.id).Str("command", cmd.id.String()).Err(err).Log("failed to send show-aspect telegram")
			}
		}
	}
}

func (s *RemoteSignal) ID() string   { return s.id }
func (s *RemoteSignal) Name() string { return s.name }

func (s *RemoteSignal) State() element.SignalAspect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetState enqueues a show-aspect command; a full queue surfaces as
// ErrTransport. Unlike element.Signal, no SupportedAspects check
// happens here: aspect validity against the remote's configuration is
// enforced on the peer side, not locally.
func (s *RemoteSignal) SetState(target element.SignalAspect) error {
	select {
	case s.queue <- signalCommand{id: uuid.New(), target: target}:
		return nil
	default:
		return &ErrTransport{}
	}
}

// Reset drives the signal to its default aspect, logging rather than
// propagating a full-queue failure.
func (s *RemoteSignal) Reset() {
	if err := s.SetState(element.DefaultSignalAspect()); err != nil && s.log != nil {
		s.log.Warning().Str("signal", s.id).Err(err).Log("reset command dropped, queue full")
	}
}

// ApplyConfirmedState updates the cached State() from a simulated
// incoming signal-aspect-status telegram.
func (s *RemoteSignal) ApplyConfirmedState(confirmed element.SignalAspect) {
	s.mu.Lock()
	s.state = confirmed
	s.mu.Unlock()
}

// Close stops the worker goroutine. Pending queued commands are
// dropped.
func (s *RemoteSignal) Close() {
	close(s.closed)
}
