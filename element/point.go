package element

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// PointAspect is a point's orientation.
type PointAspect int

const (
	Left PointAspect = iota
	Right
)

func (a PointAspect) String() string {
	if a == Right {
		return "Right"
	}
	return "Left"
}

// Point is a trackside switch. It accepts any target aspect
// unconditionally: points are mechanically reversible, so there is no
// notion of an "unsupported" orientation.
type Point struct {
	mu    sync.RWMutex
	id    string
	name  string
	state PointAspect
	log   *logiface.Logger[logiface.Event]
}

// NewPoint constructs a Point with the default Left aspect. If name is
// empty, it defaults to id.
func NewPoint(id, name string, log *logiface.Logger[logiface.Event]) *Point {
	if name == "" {
		name = id
	}
	return &Point{id: id, name: name, state: Left, log: log}
}

func (p *Point) ID() string { return p.id }

// Name returns the point's human-readable name.
func (p *Point) Name() string { return p.name }

func (p *Point) State() PointAspect {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// SetState always succeeds: it assigns the new aspect and traces the
// transition.
func (p *Point) SetState(new PointAspect) error {
	p.mu.Lock()
	p.state = new
	p.mu.Unlock()
	if p.log != nil {
		p.log.Debug().Str("point", p.id).Str("aspect", new.String()).Log("point state changed")
	}
	return nil
}

// Reset returns the point to its default Left aspect.
func (p *Point) Reset() {
	_ = p.SetState(Left)
}
