package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/railyard-signalling/interlocking/element"
)

var mainAspectsByName = map[string]element.MainAspect{
	"hp0": element.Hp0, "hp0plussh1": element.Hp0PlusSh1, "hp0withdrivingindicator": element.Hp0WithDrivingIndicator,
	"ks1": element.Ks1, "ks1flashing": element.Ks1Flashing, "ks1flashingwithadditionallight": element.Ks1FlashingWithAdditionalLight,
	"ks2": element.Ks2, "ks2withadditionallight": element.Ks2WithAdditionalLight,
	"sh1": element.Sh1, "idlight": element.IdLight,
	"hp0hv": element.Hp0Hv, "hp1": element.Hp1, "hp2": element.Hp2,
	"vr0": element.Vr0, "vr1": element.Vr1, "vr2": element.Vr2,
	"off": element.MainOff,
}

var additionalAspectsByName = map[string]element.AdditionalAspect{
	"zs1": element.Zs1, "zs7": element.Zs7, "zs8": element.Zs8, "zs6": element.Zs6, "zs13": element.Zs13,
	"off": element.AdditionalOff,
}

// ParseMainAspect resolves a TOML aspect name (case-insensitive) to a
// MainAspect.
func ParseMainAspect(name string) (element.MainAspect, error) {
	if a, ok := mainAspectsByName[strings.ToLower(name)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("config: unknown main aspect %q", name)
}

// ParseAdditionalAspect resolves a TOML aspect name to an
// AdditionalAspect.
func ParseAdditionalAspect(name string) (element.AdditionalAspect, error) {
	if a, ok := additionalAspectsByName[strings.ToLower(name)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("config: unknown additional aspect %q", name)
}

// ParseZs3Symbol resolves "off" or a decimal 1..16 to a Zs3Symbol.
func ParseZs3Symbol(name string) (element.Zs3Symbol, error) {
	if strings.EqualFold(name, "off") || name == "" {
		return element.Zs3Off, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 1 || n > 16 {
		return 0, fmt.Errorf("config: unknown zs3 symbol %q", name)
	}
	return element.Zs3Symbol(n), nil
}

// ParsePointAspect resolves "left"/"right" to a PointAspect.
func ParsePointAspect(name string) (element.PointAspect, error) {
	switch strings.ToLower(name) {
	case "left":
		return element.Left, nil
	case "right":
		return element.Right, nil
	default:
		return 0, fmt.Errorf("config: unknown point aspect %q", name)
	}
}

// ParseSectionState resolves a section-state name.
func ParseSectionState(name string) (element.SectionState, error) {
	switch strings.ToLower(name) {
	case "free":
		return element.Free, nil
	case "occupied":
		return element.Occupied, nil
	case "communicationerror":
		return element.CommunicationError, nil
	case "disturbed":
		return element.Disturbed, nil
	default:
		return 0, fmt.Errorf("config: unknown section state %q", name)
	}
}
