// Package element implements the trackside element model: points,
// signals, vacancy sections and Zs3 additional signals, together with
// the aspect vocabulary they accept. Every element type exposes the
// same capability contract (see Element) so that driveway targets can
// reference local or remote-backed implementations interchangeably.
package element

import "fmt"

// MainAspect is the main signal aspect enumeration. Values are byte-exact
// with the SCI-LS wire encoding; do not renumber.
type MainAspect byte

const (
	Hp0                            MainAspect = 0x01
	Hp0PlusSh1                     MainAspect = 0x02
	Hp0WithDrivingIndicator        MainAspect = 0x03
	Ks1                            MainAspect = 0x04
	Ks1Flashing                    MainAspect = 0x05
	Ks1FlashingWithAdditionalLight MainAspect = 0x06
	Ks2                            MainAspect = 0x07
	Ks2WithAdditionalLight         MainAspect = 0x08
	Sh1                            MainAspect = 0x09
	IdLight                        MainAspect = 0x0A
	Hp0Hv                          MainAspect = 0xA0
	Hp1                            MainAspect = 0xA1
	Hp2                            MainAspect = 0xA2
	Vr0                            MainAspect = 0xB0
	Vr1                            MainAspect = 0xB1
	Vr2                            MainAspect = 0xB2
	MainOff                        MainAspect = 0xFF
)

func (a MainAspect) String() string {
	switch a {
	case Hp0:
		return "Hp0"
	case Hp0PlusSh1:
		return "Hp0PlusSh1"
	case Hp0WithDrivingIndicator:
		return "Hp0WithDrivingIndicator"
	case Ks1:
		return "Ks1"
	case Ks1Flashing:
		return "Ks1Flashing"
	case Ks1FlashingWithAdditionalLight:
		return "Ks1FlashingWithAdditionalLight"
	case Ks2:
		return "Ks2"
	case Ks2WithAdditionalLight:
		return "Ks2WithAdditionalLight"
	case Sh1:
		return "Sh1"
	case IdLight:
		return "IdLight"
	case Hp0Hv:
		return "Hp0Hv"
	case Hp1:
		return "Hp1"
	case Hp2:
		return "Hp2"
	case Vr0:
		return "Vr0"
	case Vr1:
		return "Vr1"
	case Vr2:
		return "Vr2"
	case MainOff:
		return "Off"
	default:
		return fmt.Sprintf("MainAspect(0x%02X)", byte(a))
	}
}

// AdditionalAspect is the additional-signal aspect enumeration.
type AdditionalAspect byte

const (
	Zs1           AdditionalAspect = 0x01
	Zs7           AdditionalAspect = 0x02
	Zs8           AdditionalAspect = 0x03
	Zs6           AdditionalAspect = 0x04
	Zs13          AdditionalAspect = 0x05
	AdditionalOff AdditionalAspect = 0xFF
)

func (a AdditionalAspect) String() string {
	switch a {
	case Zs1:
		return "Zs1"
	case Zs7:
		return "Zs7"
	case Zs8:
		return "Zs8"
	case Zs6:
		return "Zs6"
	case Zs13:
		return "Zs13"
	case AdditionalOff:
		return "Off"
	default:
		return fmt.Sprintf("AdditionalAspect(0x%02X)", byte(a))
	}
}

// Zs3Symbol is a Zs3 speed/distance indicator symbol: Off, or a numeric
// symbol 1..16.
type Zs3Symbol byte

const Zs3Off Zs3Symbol = 0xFF

func (s Zs3Symbol) String() string {
	if s == Zs3Off {
		return "Off"
	}
	return fmt.Sprintf("%d", byte(s))
}

// Zs3FromByte converts a raw wire byte to a Zs3Symbol. 0x00 and 0xFF both
// fold to Off; 0x01..0x10 map to the matching numeric symbol; any other
// raw value is rejected.
func Zs3FromByte(raw byte) (Zs3Symbol, error) {
	switch {
	case raw == 0x00 || raw == 0xFF:
		return Zs3Off, nil
	case raw >= 0x01 && raw <= 0x10:
		return Zs3Symbol(raw), nil
	default:
		return 0, &ErrInvalidAdditionalAspect{Raw: raw, Reason: "invalid additional signal aspect"}
	}
}

// ToByte returns the wire-exact byte for a Zs3Symbol. Off always encodes
// as 0xFF (0x00 is only ever accepted on decode, per Zs3FromByte).
func (s Zs3Symbol) ToByte() byte {
	return byte(s)
}

// SignalAspect is the composite aspect carried by a Signal: main plus the
// three supplementary fields. The zero value is NOT a valid default;
// use DefaultSignalAspect.
type SignalAspect struct {
	Main       MainAspect
	Additional AdditionalAspect
	Zs3        Zs3Symbol
	Zs3V       Zs3Symbol
}

// DefaultSignalAspect is (Hp0, Off, Off, Off).
func DefaultSignalAspect() SignalAspect {
	return SignalAspect{Main: Hp0, Additional: AdditionalOff, Zs3: Zs3Off, Zs3V: Zs3Off}
}

// FromMain promotes a bare MainAspect to a composite SignalAspect with
// every other field Off.
func FromMain(m MainAspect) SignalAspect {
	return SignalAspect{Main: m, Additional: AdditionalOff, Zs3: Zs3Off, Zs3V: Zs3Off}
}

func (a SignalAspect) String() string {
	return fmt.Sprintf("%s/%s/zs3=%s/zs3v=%s", a.Main, a.Additional, a.Zs3, a.Zs3V)
}

// SupportedAspects is the set of composite aspects a Signal will accept,
// expressed as four independent per-field sets: a composite aspect is
// supported iff every one of its fields lies in the matching set.
type SupportedAspects struct {
	Main       map[MainAspect]struct{}
	Additional map[AdditionalAspect]struct{}
	Zs3        map[Zs3Symbol]struct{}
	Zs3V       map[Zs3Symbol]struct{}
}

// NewSupportedAspects builds a SupportedAspects from the given field
// slices. Unspecified fields default to accepting only Off.
func NewSupportedAspects(main []MainAspect, additional []AdditionalAspect, zs3, zs3v []Zs3Symbol) SupportedAspects {
	s := SupportedAspects{
		Main:       map[MainAspect]struct{}{},
		Additional: map[AdditionalAspect]struct{}{AdditionalOff: {}},
		Zs3:        map[Zs3Symbol]struct{}{Zs3Off: {}},
		Zs3V:       map[Zs3Symbol]struct{}{Zs3Off: {}},
	}
	for _, m := range main {
		s.Main[m] = struct{}{}
	}
	if len(s.Main) == 0 {
		s.Main[MainOff] = struct{}{}
	}
	for _, a := range additional {
		s.Additional[a] = struct{}{}
	}
	for _, z := range zs3 {
		s.Zs3[z] = struct{}{}
	}
	for _, z := range zs3v {
		s.Zs3V[z] = struct{}{}
	}
	return s
}

// Supports reports whether every field of a lies in its respective set.
func (s SupportedAspects) Supports(a SignalAspect) bool {
	_, mainOK := s.Main[a.Main]
	_, addOK := s.Additional[a.Additional]
	_, zs3OK := s.Zs3[a.Zs3]
	_, zs3vOK := s.Zs3V[a.Zs3V]
	return mainOK && addOK && zs3OK && zs3vOK
}
