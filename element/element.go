package element

// Element is the capability contract shared by every trackside element
// kind: points, signals, vacancy sections, and Zs3 additional signals,
// whether backed by in-process state or a remote SCI-P/SCI-LS driver.
// A DrivewayState references elements only through this interface, so
// local and remote implementations plug in interchangeably.
type Element[S any] interface {
	// ID returns the element's stable, plant-unique identifier.
	ID() string
	// State returns the element's current aspect.
	State() S
	// SetState attempts to drive the element to the given aspect.
	SetState(S) error
	// Reset returns the element to its default aspect. Implementations
	// that cannot fail simply ignore errors internally; Reset itself
	// never returns one, since commit-time rollback (DrivewayState.Commit)
	// calls it unconditionally.
	Reset()
}

type (
	// PointElement is the capability a VacancySection or DrivewayState
	// requires of anything it drives as a point — local or remote.
	PointElement = Element[PointAspect]

	// SignalElement is the capability a VacancySection or DrivewayState
	// requires of anything it drives as a signal — local or remote.
	// VacancySection in particular holds SignalElement references for
	// its previous_signals, not concrete *Signal values, so a
	// remote-backed signal plugs in transparently (spec.md §9).
	SignalElement = Element[SignalAspect]

	// SectionElement is the capability required of a vacancy section,
	// local or remote.
	SectionElement = Element[SectionState]
)

// NamedSignal is a SignalElement that additionally exposes the
// operator-facing name DrivewayManager uses to resolve a driveway when
// no id-keyed entry matches (spec.md §4.4, set_driveway step 2).
type NamedSignal interface {
	SignalElement
	Name() string
}

// HasPreviousSignals is a SectionElement that exposes the signals it
// forces to Hp0 on occupancy. A Driveway's State snapshot uses this to
// surface those signals without depending on the concrete
// VacancySection type, so a remote-backed section plugs in the same way.
type HasPreviousSignals interface {
	SectionElement
	PreviousSignals() []SignalElement
}
