package sci

import "fmt"

// ErrUnknownProtocol reports a ProtocolType byte this codec does not
// recognise (source: SciError::UnknownProtocol).
type ErrUnknownProtocol struct {
	Raw byte
}

func (e *ErrUnknownProtocol) Error() string {
	return fmt.Sprintf("sci: unknown protocol type 0x%02X", e.Raw)
}

// ErrUnknownMessageType reports a MessageType value with no known
// mapping in the requested protocol's namespace. WireToMainAspect,
// WireToPointAspect and ParseVersionCheckResult also return it for a raw
// byte they do not recognise.
type ErrUnknownMessageType struct {
	Raw uint16
}

func (e *ErrUnknownMessageType) Error() string {
	return fmt.Sprintf("sci: unknown message type 0x%04X", e.Raw)
}

// ErrTruncatedTelegram reports a byte slice too short to hold a valid
// telegram header (protocol + message type + sender + receiver).
type ErrTruncatedTelegram struct {
	Len int
}

func (e *ErrTruncatedTelegram) Error() string {
	return fmt.Sprintf("sci: telegram truncated at %d bytes, need at least %d", e.Len, headerLen)
}
