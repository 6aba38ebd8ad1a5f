package sci

import "github.com/railyard-signalling/interlocking/element"

// MainAspectToWire returns the wire-exact byte for a main aspect.
// element.MainAspect values are already defined byte-exact with the
// SCI-LS wire encoding, so this is a direct cast; it exists so callers
// never need to know that.
func MainAspectToWire(a element.MainAspect) byte {
	return byte(a)
}

// WireToMainAspect validates raw as a known main aspect code.
func WireToMainAspect(raw byte) (element.MainAspect, error) {
	a := element.MainAspect(raw)
	switch a {
	case element.Hp0, element.Hp0PlusSh1, element.Hp0WithDrivingIndicator,
		element.Ks1, element.Ks1Flashing, element.Ks1FlashingWithAdditionalLight,
		element.Ks2, element.Ks2WithAdditionalLight, element.Sh1, element.IdLight,
		element.Hp0Hv, element.Hp1, element.Hp2, element.Vr0, element.Vr1, element.Vr2,
		element.MainOff:
		return a, nil
	default:
		return 0, &ErrUnknownMessageType{Raw: uint16(raw)}
	}
}

// AdditionalAspectToWire returns the wire-exact byte for an additional
// signal aspect.
func AdditionalAspectToWire(a element.AdditionalAspect) byte {
	return byte(a)
}

// WireToAdditionalAspect validates raw as a known additional aspect
// code.
func WireToAdditionalAspect(raw byte) (element.AdditionalAspect, error) {
	a := element.AdditionalAspect(raw)
	switch a {
	case element.Zs1, element.Zs7, element.Zs8, element.Zs6, element.Zs13, element.AdditionalOff:
		return a, nil
	default:
		return 0, &element.ErrInvalidAdditionalAspect{Raw: raw}
	}
}

// Zs3SymbolToWire returns the wire-exact byte for a Zs3 symbol.
func Zs3SymbolToWire(s element.Zs3Symbol) byte {
	return s.ToByte()
}

// WireToZs3Symbol decodes a Zs3 symbol byte; 0x00 and 0xFF both fold to
// Off, per element.Zs3FromByte.
func WireToZs3Symbol(raw byte) (element.Zs3Symbol, error) {
	return element.Zs3FromByte(raw)
}

// SignalAspectToWire serialises a composite SignalAspect as four bytes:
// main, additional, zs3, zs3v, matching the order the SCI-LS show-aspect
// and aspect-status telegrams carry it in.
func SignalAspectToWire(a element.SignalAspect) []byte {
	return []byte{
		MainAspectToWire(a.Main),
		AdditionalAspectToWire(a.Additional),
		Zs3SymbolToWire(a.Zs3),
		Zs3SymbolToWire(a.Zs3V),
	}
}

// WireToSignalAspect parses the four-byte encoding SignalAspectToWire
// produces.
func WireToSignalAspect(data []byte) (element.SignalAspect, error) {
	if len(data) < 4 {
		return element.SignalAspect{}, &ErrTruncatedTelegram{Len: len(data)}
	}
	main, err := WireToMainAspect(data[0])
	if err != nil {
		return element.SignalAspect{}, err
	}
	additional, err := WireToAdditionalAspect(data[1])
	if err != nil {
		return element.SignalAspect{}, err
	}
	zs3, err := WireToZs3Symbol(data[2])
	if err != nil {
		return element.SignalAspect{}, err
	}
	zs3v, err := WireToZs3Symbol(data[3])
	if err != nil {
		return element.SignalAspect{}, err
	}
	return element.SignalAspect{Main: main, Additional: additional, Zs3: zs3, Zs3V: zs3v}, nil
}
