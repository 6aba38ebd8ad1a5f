package transport

import (
	"sync"

	"github.com/google/uuid"
	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/element"
	"github.com/railyard-signalling/interlocking/sci"
)

// pointCommand is a queued change-location request, tagged with a
// correlation id so the worker's log lines can be traced back to the
// SetState call that produced them (the source has no such id; the
// telegram wire format itself carries none either, so this is purely
// an in-process tracing aid).
type pointCommand struct {
	id     uuid.UUID
	target element.PointAspect
}

// RemotePoint is a point whose authoritative state lives behind a
// remote SCI-P peer (source: sci_point.rs SCIPoint). SetState enqueues
// a change-location command onto a bounded queue and returns
// immediately; a background worker drains it and hands the resulting
// telegram to Peer. The cached State() is updated separately, by
// ApplyConfirmedState, standing in for an incoming location-status
// telegram.
type RemotePoint struct {
	mu       sync.RWMutex
	id       string
	state    element.PointAspect
	sender   string
	receiver string
	peer     Peer
	queue    chan pointCommand
	closed   chan struct{}
	log      *logiface.Logger[logiface.Event]
}

// NewRemotePoint constructs a RemotePoint and starts its worker
// goroutine. sender/receiver are the SCI names used to address
// telegrams to and from the peer.
func NewRemotePoint(id string, initial element.PointAspect, sender, receiver string, peer Peer, log *logiface.Logger[logiface.Event]) *RemotePoint {
	p := &RemotePoint{
		id:       id,
		state:    initial,
		sender:   sender,
		receiver: receiver,
		peer:     peer,
		queue:    make(chan pointCommand, 256),
		closed:   make(chan struct{}),
		log:      log,
	}
	go p.run()
	return p
}

func (p *RemotePoint) run() {
	for {
		select {
		case <-p.closed:
			return
		case cmd := <-p.queue:
			tg := sci.ChangeLocation(p.sender, p.receiver, cmd.target)
			if err := p.peer.Send(tg); err != nil && p.log != nil {
				p.log.Warning().Str("point", p.id).Str("command", cmd.id.String()).Err(err).Log("failed to send change-location telegram")
			}
		}
	}
}

func (p *RemotePoint) ID() string { return p.id }

func (p *RemotePoint) State() element.PointAspect {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// SetState enqueues a change-location command. It does not block: a
// full queue surfaces as ErrTransport, matching spec.md §7's
// TransportError kind.
func (p *RemotePoint) SetState(target element.PointAspect) error {
	select {
	case p.queue <- pointCommand{id: uuid.New(), target: target}:
		return nil
	default:
		return &ErrTransport{}
	}
}

// Reset drives the point to Left. Unlike element.Point, a remote
// point's reset is itself a remote command and can fail the same way
// any other SetState call can; failures are logged rather than
// propagated, since Reset has no error return (spec.md §3's Element
// contract).
func (p *RemotePoint) Reset() {
	if err := p.SetState(element.Left); err != nil && p.log != nil {
		p.log.Warning().Str("point", p.id).Err(err).Log("reset command dropped, queue full")
	}
}

// ApplyConfirmedState updates the cached State() from a simulated
// incoming location-status telegram.
func (p *RemotePoint) ApplyConfirmedState(confirmed element.PointAspect) {
	p.mu.Lock()
	p.state = confirmed
	p.mu.Unlock()
}

// Close stops the worker goroutine. Pending queued commands are
// dropped.
func (p *RemotePoint) Close() {
	close(p.closed)
}
