// Package config loads a declarative TOML plant topology and wires it
// into live element and driveway instances. It is read-only input,
// never a dump of runtime state, consistent with spec.md's non-goal of
// persistence across restarts.
package config

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/driveway"
	"github.com/railyard-signalling/interlocking/element"
)

// Load parses the TOML document at path.
func Load(path string) (*Document, error) {
	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &doc, nil
}

// Plant is the fully wired result of Build: every element keyed by id,
// and a Manager with every driveway registered and its conflict graph
// already computed.
type Plant struct {
	Points   map[string]*element.Point
	Signals  map[string]*element.Signal
	Sections map[string]*element.VacancySection
	Manager  *driveway.Manager
}

// Build wires a Document into a Plant. It calls
// Manager.UpdateConflictingDriveways once, after every driveway has been
// registered (spec.md §4.8).
func Build(doc *Document, log *logiface.Logger[logiface.Event]) (*Plant, error) {
	p := &Plant{
		Points:   map[string]*element.Point{},
		Signals:  map[string]*element.Signal{},
		Sections: map[string]*element.VacancySection{},
		Manager:  driveway.NewManager(log),
	}

	for _, pd := range doc.Points {
		initial, err := ParsePointAspect(pd.Initial)
		if err != nil {
			if pd.Initial == "" {
				initial = element.Left
			} else {
				return nil, fmt.Errorf("config: point %s: %w", pd.ID, err)
			}
		}
		pt := element.NewPoint(pd.ID, pd.Name, log)
		if err := pt.SetState(initial); err != nil {
			return nil, fmt.Errorf("config: point %s: %w", pd.ID, err)
		}
		p.Points[pd.ID] = pt
	}

	for _, sd := range doc.Signals {
		supported, err := buildSupportedAspects(sd)
		if err != nil {
			return nil, fmt.Errorf("config: signal %s: %w", sd.ID, err)
		}
		p.Signals[sd.ID] = element.NewSignal(sd.ID, sd.Name, supported, log)
	}

	for _, secd := range doc.Sections {
		prev := make([]element.SignalElement, 0, len(secd.PreviousSignals))
		for _, id := range secd.PreviousSignals {
			sig, ok := p.Signals[id]
			if !ok {
				return nil, fmt.Errorf("config: section %s references unknown signal %s", secd.ID, id)
			}
			prev = append(prev, sig)
		}
		p.Sections[secd.ID] = element.NewVacancySection(secd.ID, prev, log)
	}

	for _, dd := range doc.Driveways {
		d, err := buildDriveway(p, dd, log)
		if err != nil {
			return nil, err
		}
		p.Manager.Add(d)
	}

	if err := p.Manager.UpdateConflictingDriveways(context.Background()); err != nil {
		return nil, fmt.Errorf("config: computing conflict graph: %w", err)
	}

	return p, nil
}

func buildSupportedAspects(sd SignalDoc) (element.SupportedAspects, error) {
	main := make([]element.MainAspect, 0, len(sd.Main))
	for _, name := range sd.Main {
		a, err := ParseMainAspect(name)
		if err != nil {
			return element.SupportedAspects{}, err
		}
		main = append(main, a)
	}
	additional := make([]element.AdditionalAspect, 0, len(sd.Additional))
	for _, name := range sd.Additional {
		a, err := ParseAdditionalAspect(name)
		if err != nil {
			return element.SupportedAspects{}, err
		}
		additional = append(additional, a)
	}
	zs3 := make([]element.Zs3Symbol, 0, len(sd.Zs3))
	for _, name := range sd.Zs3 {
		s, err := ParseZs3Symbol(name)
		if err != nil {
			return element.SupportedAspects{}, err
		}
		zs3 = append(zs3, s)
	}
	zs3v := make([]element.Zs3Symbol, 0, len(sd.Zs3V))
	for _, name := range sd.Zs3V {
		s, err := ParseZs3Symbol(name)
		if err != nil {
			return element.SupportedAspects{}, err
		}
		zs3v = append(zs3v, s)
	}
	return element.NewSupportedAspects(main, additional, zs3, zs3v), nil
}

func buildDriveway(p *Plant, dd DrivewayDoc, log *logiface.Logger[logiface.Event]) (*driveway.Driveway, error) {
	start, ok := p.Signals[dd.Start]
	if !ok {
		return nil, fmt.Errorf("config: driveway references unknown start signal %s", dd.Start)
	}
	end, ok := p.Signals[dd.End]
	if !ok {
		return nil, fmt.Errorf("config: driveway references unknown end signal %s", dd.End)
	}

	points := make([]driveway.PointTarget, 0, len(dd.Points))
	for _, pd := range dd.Points {
		pt, ok := p.Points[pd.ID]
		if !ok {
			return nil, fmt.Errorf("config: driveway %s-%s references unknown point %s", dd.Start, dd.End, pd.ID)
		}
		target, err := ParsePointAspect(pd.Target)
		if err != nil {
			return nil, err
		}
		points = append(points, driveway.PointTarget{Point: pt, Target: target})
	}

	signals := make([]driveway.SignalTarget, 0, len(dd.Signals))
	for _, sd := range dd.Signals {
		sig, ok := p.Signals[sd.ID]
		if !ok {
			return nil, fmt.Errorf("config: driveway %s-%s references unknown signal %s", dd.Start, dd.End, sd.ID)
		}
		target, err := buildSignalTarget(sd)
		if err != nil {
			return nil, err
		}
		signals = append(signals, driveway.SignalTarget{Signal: sig, Target: target})
	}

	sections := make([]driveway.SectionTarget, 0, len(dd.Sections))
	for _, secd := range dd.Sections {
		sec, ok := p.Sections[secd.ID]
		if !ok {
			return nil, fmt.Errorf("config: driveway %s-%s references unknown section %s", dd.Start, dd.End, secd.ID)
		}
		target, err := ParseSectionState(secd.Target)
		if err != nil {
			return nil, err
		}
		sections = append(sections, driveway.SectionTarget{Section: sec, Target: target})
	}

	return driveway.New(start, end, driveway.NewState(points, signals, sections), log), nil
}

func buildSignalTarget(sd SignalTargetDoc) (element.SignalAspect, error) {
	main, err := ParseMainAspect(sd.Main)
	if err != nil {
		return element.SignalAspect{}, err
	}
	additional := element.AdditionalOff
	if sd.Additional != "" {
		additional, err = ParseAdditionalAspect(sd.Additional)
		if err != nil {
			return element.SignalAspect{}, err
		}
	}
	zs3, err := ParseZs3Symbol(sd.Zs3)
	if err != nil {
		return element.SignalAspect{}, err
	}
	zs3v, err := ParseZs3Symbol(sd.Zs3V)
	if err != nil {
		return element.SignalAspect{}, err
	}
	return element.SignalAspect{Main: main, Additional: additional, Zs3: zs3, Zs3V: zs3v}, nil
}
