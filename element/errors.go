package element

import "fmt"

// ErrInvalidMainAspect is returned by Signal.SetState when the target
// aspect's main field (or any other field) is not in the signal's
// supported set.
type ErrInvalidMainAspect struct {
	Aspect MainAspect
}

func (e *ErrInvalidMainAspect) Error() string {
	return fmt.Sprintf("invalid main aspect %s", e.Aspect)
}

// ErrInvalidAdditionalAspect is returned when a raw wire byte or symbol
// does not decode to a valid AdditionalAspect or Zs3Symbol.
type ErrInvalidAdditionalAspect struct {
	Raw    byte
	Reason string
}

func (e *ErrInvalidAdditionalAspect) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid additional signal aspect 0x%02X", e.Raw)
}
