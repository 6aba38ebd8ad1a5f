// Package sci implements the SCI-P / SCI-LS wire telegram shape and the
// aspect codecs the core uses to interpret what a remote driver reports.
// It is grounded in original_source/src/grpc_signal/sci_message.rs; no
// RaSTA safety-transport handshake, retransmission, or telegram-level
// CRC is implemented here, since that is a different external
// collaborator outside this repository's scope.
package sci

import (
	"bytes"

	"github.com/railyard-signalling/interlocking/element"
)

// ProtocolType distinguishes the two telegram families this codec
// frames, since they reuse overlapping MessageType codes.
type ProtocolType byte

const (
	ProtocolSCIP ProtocolType = 0x40
	ProtocolLS   ProtocolType = 0x30
)

// ParseProtocolType validates a raw protocol byte.
func ParseProtocolType(raw byte) (ProtocolType, error) {
	switch ProtocolType(raw) {
	case ProtocolSCIP, ProtocolLS:
		return ProtocolType(raw), nil
	default:
		return 0, &ErrUnknownProtocol{Raw: raw}
	}
}

func (p ProtocolType) String() string {
	switch p {
	case ProtocolSCIP:
		return "SCI-P"
	case ProtocolLS:
		return "SCI-LS"
	default:
		return "Unknown"
	}
}

// MessageType is a newtype over uint16 rather than a closed enum,
// because SCI-P and SCI-LS assign different meanings to the same raw
// code (e.g. 0x01 is ChangeLocation under SCI-P but ShowSignalAspect
// under SCI-LS). Construct values with the named functions below.
type MessageType uint16

const (
	mtVersionRequest  MessageType = 0x0024
	mtVersionResponse MessageType = 0x0025
	mtStatusRequest   MessageType = 0x0021
	mtStatusBegin     MessageType = 0x0022
	mtStatusFinish    MessageType = 0x0023
	mtTimeout         MessageType = 0x000C

	mtChangeLocation  MessageType = 0x0001
	mtLocationStatus  MessageType = 0x000B
	mtShowAspect      MessageType = 0x0001
	mtChangeBrightness MessageType = 0x0002
	mtAspectStatus    MessageType = 0x0003
	mtBrightnessStatus MessageType = 0x0004
)

func VersionRequestType() MessageType  { return mtVersionRequest }
func VersionResponseType() MessageType { return mtVersionResponse }
func StatusRequestType() MessageType   { return mtStatusRequest }
func StatusBeginType() MessageType     { return mtStatusBegin }
func StatusFinishType() MessageType    { return mtStatusFinish }
func TimeoutType() MessageType         { return mtTimeout }

func ChangeLocationType() MessageType  { return mtChangeLocation }
func LocationStatusType() MessageType  { return mtLocationStatus }

func ShowSignalAspectType() MessageType  { return mtShowAspect }
func ChangeBrightnessType() MessageType  { return mtChangeBrightness }
func SignalAspectStatusType() MessageType { return mtAspectStatus }
func BrightnessStatusType() MessageType  { return mtBrightnessStatus }

// Name describes the message type in the given protocol's namespace.
func (m MessageType) Name(p ProtocolType) (string, error) {
	switch m {
	case mtVersionRequest:
		return "VersionRequest", nil
	case mtVersionResponse:
		return "VersionResponse", nil
	case mtStatusRequest:
		return "StatusRequest", nil
	case mtStatusBegin:
		return "StatusBegin", nil
	case mtStatusFinish:
		return "StatusFinish", nil
	case mtTimeout:
		return "Timeout", nil
	}
	switch p {
	case ProtocolSCIP:
		switch m {
		case mtChangeLocation:
			return "ChangeLocation", nil
		case mtLocationStatus:
			return "LocationStatus", nil
		}
	case ProtocolLS:
		switch m {
		case mtShowAspect:
			return "ShowSignalAspect", nil
		case mtChangeBrightness:
			return "ChangeBrightness", nil
		case mtAspectStatus:
			return "SignalAspectStatus", nil
		case mtBrightnessStatus:
			return "BrightnessStatus", nil
		}
	}
	return "", &ErrUnknownMessageType{Raw: uint16(m)}
}

// VersionCheckResult is carried in a VersionResponse payload's first
// byte. The source's raw-to-variant mapping collapsed both raw 1 and
// raw 2 onto VersionsAreEqual; this implementation uses the corrected
// mapping: raw 1 is VersionsAreNotEqual, raw 2 is VersionsAreEqual.
type VersionCheckResult byte

const (
	NotAllowedToUse     VersionCheckResult = 0
	VersionsAreNotEqual VersionCheckResult = 1
	VersionsAreEqual    VersionCheckResult = 2
)

func ParseVersionCheckResult(raw byte) (VersionCheckResult, error) {
	switch VersionCheckResult(raw) {
	case NotAllowedToUse, VersionsAreNotEqual, VersionsAreEqual:
		return VersionCheckResult(raw), nil
	default:
		return 0, &ErrUnknownMessageType{Raw: uint16(raw)}
	}
}

const (
	nameLen    = 20
	payloadLen = 85
	// headerLen covers protocol (1 byte) + message type (1 byte on the
	// wire, even though MessageType is a uint16 in memory) + sender +
	// receiver names.
	headerLen = 1 + 1 + nameLen + nameLen
)

// strToSCIName pads name with '_' to nameLen bytes, truncating if it's
// longer (source: str_to_sci_name).
func strToSCIName(name string) [nameLen]byte {
	var out [nameLen]byte
	for i := range out {
		out[i] = '_'
	}
	copy(out[:], name)
	return out
}

func sciNameToStr(raw [nameLen]byte) string {
	return string(bytes.TrimRight(raw[:], "_"))
}

// Telegram is a single SCI message: protocol, message type, sender and
// receiver names, and an opaque payload of at most 85 bytes.
type Telegram struct {
	ProtocolType ProtocolType
	MessageType  MessageType
	Sender       string
	Receiver     string
	Payload      []byte
}

// VersionRequest builds a version-check request telegram.
func VersionRequest(protocol ProtocolType, sender, receiver string, version byte) *Telegram {
	return &Telegram{ProtocolType: protocol, MessageType: mtVersionRequest, Sender: sender, Receiver: receiver, Payload: []byte{version}}
}

// VersionResponse builds a version-check response telegram.
func VersionResponse(protocol ProtocolType, sender, receiver string, version byte, result VersionCheckResult, checksum []byte) *Telegram {
	payload := make([]byte, 0, 3+len(checksum))
	payload = append(payload, byte(result), version, byte(len(checksum)))
	payload = append(payload, checksum...)
	return &Telegram{ProtocolType: protocol, MessageType: mtVersionResponse, Sender: sender, Receiver: receiver, Payload: payload}
}

func StatusRequest(protocol ProtocolType, sender, receiver string) *Telegram {
	return &Telegram{ProtocolType: protocol, MessageType: mtStatusRequest, Sender: sender, Receiver: receiver}
}

func StatusBegin(protocol ProtocolType, sender, receiver string) *Telegram {
	return &Telegram{ProtocolType: protocol, MessageType: mtStatusBegin, Sender: sender, Receiver: receiver}
}

func StatusFinish(protocol ProtocolType, sender, receiver string) *Telegram {
	return &Telegram{ProtocolType: protocol, MessageType: mtStatusFinish, Sender: sender, Receiver: receiver}
}

func Timeout(protocol ProtocolType, sender, receiver string) *Telegram {
	return &Telegram{ProtocolType: protocol, MessageType: mtTimeout, Sender: sender, Receiver: receiver}
}

// ChangeLocation builds an SCI-P point change-location command.
func ChangeLocation(sender, receiver string, target element.PointAspect) *Telegram {
	return &Telegram{ProtocolType: ProtocolSCIP, MessageType: mtChangeLocation, Sender: sender, Receiver: receiver, Payload: []byte{PointAspectToWire(target)}}
}

// LocationStatus builds an SCI-P point location-status report.
func LocationStatus(sender, receiver string, current element.PointAspect) *Telegram {
	return &Telegram{ProtocolType: ProtocolSCIP, MessageType: mtLocationStatus, Sender: sender, Receiver: receiver, Payload: []byte{PointAspectToWire(current)}}
}

// ShowSignalAspect builds an SCI-LS show-aspect command.
func ShowSignalAspect(sender, receiver string, aspect element.SignalAspect) *Telegram {
	return &Telegram{ProtocolType: ProtocolLS, MessageType: mtShowAspect, Sender: sender, Receiver: receiver, Payload: SignalAspectToWire(aspect)}
}

// SignalAspectStatus builds an SCI-LS aspect-status report.
func SignalAspectStatus(sender, receiver string, aspect element.SignalAspect) *Telegram {
	return &Telegram{ProtocolType: ProtocolLS, MessageType: mtAspectStatus, Sender: sender, Receiver: receiver, Payload: SignalAspectToWire(aspect)}
}

// Encode serialises t as protocol byte, message-type low byte, 20-byte
// sender name, 20-byte receiver name, then the payload (source: the
// Vec<u8> From<SCITelegram> impl; message type truncates to a single
// byte there, so this codec matches that on the wire even though
// MessageType itself is a uint16 in memory). A non-empty payload is
// always emitted as the full fixed-size 85-byte buffer, zero-padded
// past its used length, matching the source's SCIPayload::data array;
// an empty payload contributes no trailing bytes at all.
func (t *Telegram) Encode() []byte {
	out := make([]byte, 0, headerLen+payloadLen)
	out = append(out, byte(t.ProtocolType), byte(t.MessageType))
	sender := strToSCIName(t.Sender)
	receiver := strToSCIName(t.Receiver)
	out = append(out, sender[:]...)
	out = append(out, receiver[:]...)
	if len(t.Payload) > 0 {
		var buf [payloadLen]byte
		copy(buf[:], t.Payload)
		out = append(out, buf[:]...)
	}
	return out
}

// DecodeTelegram parses the wire format Encode produces.
func DecodeTelegram(data []byte) (*Telegram, error) {
	if len(data) < headerLen {
		return nil, &ErrTruncatedTelegram{Len: len(data)}
	}
	protocol, err := ParseProtocolType(data[0])
	if err != nil {
		return nil, err
	}
	var sender, receiver [nameLen]byte
	copy(sender[:], data[2:2+nameLen])
	copy(receiver[:], data[2+nameLen:2+2*nameLen])
	payload := append([]byte(nil), data[headerLen:]...)
	return &Telegram{
		ProtocolType: protocol,
		MessageType:  MessageType(data[1]),
		Sender:       sciNameToStr(sender),
		Receiver:     sciNameToStr(receiver),
		Payload:      payload,
	}, nil
}
