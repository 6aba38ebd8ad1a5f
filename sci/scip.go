package sci

import "github.com/railyard-signalling/interlocking/element"

// Point target-location wire codes (source: SCIPointTargetLocation /
// SCIPointLocation in sci_point.rs).
const (
	wirePointLeft  byte = 0x01
	wirePointRight byte = 0x02
)

// PointAspectToWire converts a point aspect to its SCI-P wire byte.
func PointAspectToWire(a element.PointAspect) byte {
	if a == element.Right {
		return wirePointRight
	}
	return wirePointLeft
}

// WireToPointAspect converts an SCI-P wire byte to a point aspect. The
// source's PointNoTargetLocation / PointBumped variants have no
// matching element.PointAspect value and are rejected here.
func WireToPointAspect(raw byte) (element.PointAspect, error) {
	switch raw {
	case wirePointLeft:
		return element.Left, nil
	case wirePointRight:
		return element.Right, nil
	default:
		return 0, &ErrUnknownMessageType{Raw: uint16(raw)}
	}
}
