package tween

import (
	"slices"
	"strings"
)

// PrefixPolicy selects how Registry.ClearByPrefix treats units whose
// identifier does not carry the prefix.
type PrefixPolicy int

const (
	// PrefixMatching disposes and forgets only the units whose identifier
	// starts with the prefix. Other units keep running.
	PrefixMatching PrefixPolicy = iota

	// PrefixLegacy disposes every active unit and empties the active set,
	// but only drops prefix-matching identifiers from the index. Index
	// entries for the other units survive, pointing at disposed units,
	// until their identifiers are registered again.
	PrefixLegacy
)

func (p PrefixPolicy) String() string {
	switch p {
	case PrefixMatching:
		return "matching"
	case PrefixLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// A Registry owns a set of active units and advances them once per frame.
// Units are disposed and dropped when they complete.
//
// Unit callbacks may call back into the Registry while it is updating.
// Units added during an update are first advanced on the next update.
type Registry struct {
	active []Unit
	byID   map[string]Unit
	policy PrefixPolicy

	updating bool
}

// NewRegistry returns an empty Registry using the PrefixMatching policy.
func NewRegistry() *Registry {
	r := new(Registry)
	r.byID = make(map[string]Unit)
	r.policy = PrefixMatching
	return r
}

// SetPrefixPolicy sets the behaviour of ClearByPrefix.
func (r *Registry) SetPrefixPolicy(p PrefixPolicy) {
	r.policy = p
}

// PrefixPolicy returns the behaviour of ClearByPrefix.
func (r *Registry) PrefixPolicy() PrefixPolicy {
	return r.policy
}

// Len returns the number of units held in the active set. Units disposed
// during an update are counted until the next update drops them.
func (r *Registry) Len() int {
	return len(r.active)
}

// Lookup returns the unit indexed under id.
func (r *Registry) Lookup(id string) (Unit, bool) {
	u, ok := r.byID[id]
	return u, ok
}

// Add makes u active. If another unit is indexed under u's identifier it is
// disposed and replaced by u. Adding a nil or disposed unit has no effect.
func (r *Registry) Add(u Unit) {
	if nilUnit(u) || u.IsDisposed() {
		return
	}
	if id := u.ID(); id != "" {
		if old, ok := r.byID[id]; ok {
			if old == u {
				return
			}
			delete(r.byID, id)
			old.Dispose()
			r.drop(old)
		}
		r.byID[id] = u
	}
	r.active = append(r.active, u)
}

// Update advances every active unit, using unscaledDt for units that use
// unscaled time and scaledDt for the rest. Completed units are disposed and
// dropped.
func (r *Registry) Update(scaledDt, unscaledDt float64) {
	r.updating = true
	defer func() { r.updating = false }()

	for i := len(r.active) - 1; i >= 0; i-- {
		if i >= len(r.active) {
			continue
		}
		u := r.active[i]
		if u.IsDisposed() {
			r.forget(u)
			r.active = slices.Delete(r.active, i, i+1)
			continue
		}

		dt := scaledDt
		if u.UsesUnscaledTime() {
			dt = unscaledDt
		}
		u.Update(dt)

		if u.IsCompleted() {
			r.forget(u)
			u.Dispose()
			// Callbacks may have reshaped the active set.
			if i < len(r.active) && r.active[i] == u {
				r.active = slices.Delete(r.active, i, i+1)
			}
		}
	}
}

// Remove disposes u and stops tracking it, whether or not it has completed.
// Removing a nil or disposed unit, or one the Registry does not hold, has no
// effect.
func (r *Registry) Remove(u Unit) {
	if nilUnit(u) || u.IsDisposed() || !slices.Contains(r.active, u) {
		return
	}
	r.forget(u)
	u.Dispose()
	r.drop(u)
}

// Clear disposes every active unit.
func (r *Registry) Clear() {
	active := r.active
	r.byID = make(map[string]Unit)
	if !r.updating {
		r.active = nil
	}
	for _, u := range active {
		u.Dispose()
	}
}

// ClearByPrefix disposes units by identifier prefix according to the
// Registry's PrefixPolicy.
func (r *Registry) ClearByPrefix(prefix string) {
	switch r.policy {
	case PrefixLegacy:
		r.clearByPrefixLegacy(prefix)
	default:
		r.clearByPrefixMatching(prefix)
	}
}

func (r *Registry) clearByPrefixMatching(prefix string) {
	var matched []Unit
	for _, u := range r.active {
		if id := u.ID(); id != "" && strings.HasPrefix(id, prefix) {
			matched = append(matched, u)
		}
	}
	for _, u := range matched {
		r.Remove(u)
	}
}

func (r *Registry) clearByPrefixLegacy(prefix string) {
	active := r.active
	for _, u := range active {
		if id := u.ID(); id != "" && strings.HasPrefix(id, prefix) && r.byID[id] == u {
			delete(r.byID, id)
		}
	}
	if !r.updating {
		r.active = nil
	}
	for _, u := range active {
		u.Dispose()
	}
}

// PauseAll pauses every active unit.
func (r *Registry) PauseAll() {
	for _, u := range slices.Clone(r.active) {
		u.Pause()
	}
}

// ResumeAll resumes every active unit.
func (r *Registry) ResumeAll() {
	for _, u := range slices.Clone(r.active) {
		u.Resume()
	}
}

// forget removes u from the identifier index if it is the unit indexed
// under its identifier.
func (r *Registry) forget(u Unit) {
	if id := u.ID(); id != "" && r.byID[id] == u {
		delete(r.byID, id)
	}
}

// drop removes u from the active set. During an update the disposed unit is
// left in place for the update loop to drop.
func (r *Registry) drop(u Unit) {
	if r.updating {
		return
	}
	if i := slices.Index(r.active, u); i >= 0 {
		r.active = slices.Delete(r.active, i, i+1)
	}
}
