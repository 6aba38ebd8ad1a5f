package driveway

import (
	"context"
	"sort"
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/element"
	"golang.org/x/sync/errgroup"
)

// Manager is an ordered catalogue of driveways keyed by canonical id
// ("{start.id}-{end.id}"), with deterministic lexicographic iteration
// order so conflict-graph construction is reproducible (spec.md §3, §4.4).
type Manager struct {
	mu        sync.RWMutex
	driveways map[string]*Driveway
	log       *logiface.Logger[logiface.Event]
}

// NewManager constructs an empty Manager.
func NewManager(log *logiface.Logger[logiface.Event]) *Manager {
	return &Manager{driveways: map[string]*Driveway{}, log: log}
}

// Add inserts d under its canonical id. A second insertion under the
// same id overwrites the first — duplicates are treated as
// redefinitions, matching the source (Open Questions); a warning is
// logged on overwrite since the source is silent about it.
func (m *Manager) Add(d *Driveway) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := d.ID()
	if _, exists := m.driveways[id]; exists && m.log != nil {
		m.log.Warning().Str("driveway", id).Log("duplicate driveway registration overwrote existing entry")
	}
	m.driveways[id] = d
}

// Get looks up a driveway by its canonical id.
func (m *Manager) Get(id string) (*Driveway, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.driveways[id]
	return d, ok
}

// sortedKeysLocked returns driveway ids in lexicographic order. Callers
// must already hold m.mu.
func (m *Manager) sortedKeysLocked() []string {
	keys := make([]string, 0, len(m.driveways))
	for k := range m.driveways {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IDs returns the catalogue's driveway ids, in lexicographic order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedKeysLocked()
}

// State is the pairwise fold of every driveway's State snapshot, visited
// in catalogue order. The result may contain duplicate elements if
// driveways share them; it is used for name-based lookup in
// SetDriveway, never for commit (spec.md §4.4).
func (m *Manager) State() *State {
	m.mu.RLock()
	keys := m.sortedKeysLocked()
	rows := make([]*Driveway, len(keys))
	for i, k := range keys {
		rows[i] = m.driveways[k]
	}
	m.mu.RUnlock()

	if len(rows) == 0 {
		return &State{}
	}
	combined := rows[0].State()
	for _, d := range rows[1:] {
		combined = combined.join(d.State())
	}
	return combined
}

// SetDriveway resolves (fromID, toID) to a driveway and sets it.
// Resolution first tries the canonical "{from}-{to}" key. If that's
// absent, fromID/toID are treated as signal NAMES: the combined
// catalogue state is searched for signals with matching names, the key
// is rebuilt from their ids, and the lookup is retried. If still absent,
// ErrDrivewayDoesNotExist is returned (spec.md §4.4).
func (m *Manager) SetDriveway(fromID, toID string) error {
	key := fromID + "-" + toID
	if d, ok := m.Get(key); ok {
		return d.SetWay()
	}

	snapshot := m.State()
	startID, startOK := findSignalIDByName(snapshot, fromID)
	endID, endOK := findSignalIDByName(snapshot, toID)
	if !startOK || !endOK {
		return &ErrDrivewayDoesNotExist{Key: key}
	}

	resolvedKey := startID + "-" + endID
	d, ok := m.Get(resolvedKey)
	if !ok {
		return &ErrDrivewayDoesNotExist{Key: resolvedKey}
	}
	return d.SetWay()
}

func findSignalIDByName(s *State, name string) (string, bool) {
	for _, st := range s.Signals {
		if named, ok := st.Signal.(element.NamedSignal); ok && named.Name() == name {
			return named.ID(), true
		}
	}
	return "", false
}

// UpdateConflictingDriveways derives the conflict graph from shared
// resources and route geometry (spec.md §4.4). For every ordered pair
// (a, b) with a != b: a shared point id, or a shared (non-continuous)
// signal id, appends b to a.conflicts. The relation is symmetric by
// construction, since both orderings of every pair are visited. Vacancy
// sections do not participate in the test (Open Questions, carried
// unchanged).
//
// The outer loop runs one goroutine per driveway row via errgroup; each
// goroutine only ever appends to its own row's conflict list, so there
// is no shared mutable state between goroutines and the result does not
// depend on scheduling order.
func (m *Manager) UpdateConflictingDriveways(ctx context.Context) error {
	m.mu.RLock()
	keys := m.sortedKeysLocked()
	rows := make([]*Driveway, len(keys))
	for i, k := range keys {
		rows[i] = m.driveways[k]
	}
	m.mu.RUnlock()

	g, _ := errgroup.WithContext(ctx)
	for _, a := range rows {
		g.Go(func() error {
			for _, b := range rows {
				if a == b {
					continue
				}
				if conflicts(a, b) {
					a.addConflict(b)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func conflicts(a, b *Driveway) bool {
	continuous := a.startID() == b.endID() || b.startID() == a.endID()

	for _, p := range a.target.Points {
		for _, q := range b.target.Points {
			if p.Point.ID() == q.Point.ID() {
				return true
			}
		}
	}

	if !continuous {
		for _, s := range a.target.Signals {
			for _, t := range b.target.Signals {
				if s.Signal.ID() == t.Signal.ID() {
					return true
				}
			}
		}
	}

	return false
}
