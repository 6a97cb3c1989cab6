package tween

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryIDCollision(t *testing.T) {
	var aKilled bool
	a := newFloat(t, &prop{}, 1, 1).WithID("x").OnKill(func() { aKilled = true })
	b := newFloat(t, &prop{}, 1, 1).WithID("x")

	r := NewRegistry()
	r.Add(a)
	r.Add(b)

	if !aKilled || !a.IsDisposed() {
		t.Error("expected replaced unit to be disposed")
	}
	got, ok := r.Lookup("x")
	if !ok || got != Unit(b) {
		t.Errorf("unexpected unit indexed under id: got:%v ok:%t", got, ok)
	}
	if r.Len() != 1 {
		t.Errorf("unexpected active count: got:%d want:1", r.Len())
	}

	r.Remove(b)
	if !b.IsDisposed() {
		t.Error("expected removed unit to be disposed")
	}
	if _, ok := r.Lookup("x"); ok {
		t.Error("expected removed unit to be dropped from index")
	}
}

func TestRegistryAddSameTwice(t *testing.T) {
	a := newFloat(t, &prop{}, 1, 1).WithID("x")
	r := NewRegistry()
	r.Add(a)
	r.Add(a)
	if a.IsDisposed() || r.Len() != 1 {
		t.Errorf("unexpected state after re-adding: disposed:%t active:%d", a.IsDisposed(), r.Len())
	}
}

func TestRegistryIgnoresInvalid(t *testing.T) {
	r := NewRegistry()
	r.Add(nil)
	r.Remove(nil)

	d := newFloat(t, &prop{}, 1, 1)
	d.Dispose()
	r.Add(d)
	r.Remove(d)
	if r.Len() != 0 {
		t.Errorf("unexpected active count: got:%d want:0", r.Len())
	}

	var killed bool
	untracked := newFloat(t, &prop{}, 1, 1).OnKill(func() { killed = true })
	r.Remove(untracked)
	if killed || untracked.IsDisposed() {
		t.Error("unexpected disposal of untracked unit")
	}
}

func TestRegistryIgnoresNilTween(t *testing.T) {
	var v point
	tw, err := New(func() point { return v }, func(p point) { v = p }, point{1, 1}, 1)
	if err == nil {
		t.Fatal("expected error for unregistered type")
	}

	r := NewRegistry()
	r.Add(tw)
	r.Remove(tw)
	r.Update(0.1, 0.1)
	if r.Len() != 0 {
		t.Errorf("unexpected active count: got:%d want:0", r.Len())
	}

	seq := NewSequence("", false).Append((*Tween[float64])(nil))
	if seq.Len() != 0 {
		t.Errorf("unexpected sequence length: got:%d want:0", seq.Len())
	}
	seq.Update(0.1)
	if !seq.IsCompleted() {
		t.Error("expected empty sequence to complete")
	}
}

func TestRegistryTimeScale(t *testing.T) {
	scaled := &prop{}
	unscaled := &prop{}
	r := NewRegistry()
	r.Add(newFloat(t, scaled, 10, 1))
	r.Add(newFloat(t, unscaled, 10, 1).WithUnscaledTime(true))

	r.Update(0.25, 0.5)
	if scaled.v != 2.5 {
		t.Errorf("unexpected scaled value: got:%v want:2.5", scaled.v)
	}
	if unscaled.v != 5 {
		t.Errorf("unexpected unscaled value: got:%v want:5", unscaled.v)
	}
}

func TestRegistryRemoveMidFlight(t *testing.T) {
	p := &prop{}
	var kills, completes int
	tw := newFloat(t, p, 10, 1).
		OnKill(func() { kills++ }).
		OnComplete(func() { completes++ })
	r := NewRegistry()
	r.Add(tw)
	r.Update(0.25, 0.25)
	r.Remove(tw)
	r.Update(0.25, 0.25)

	if kills != 1 || completes != 0 {
		t.Errorf("unexpected callbacks: kills:%d completes:%d", kills, completes)
	}
	if p.v != 2.5 {
		t.Errorf("unexpected value after removal: got:%v want:2.5", p.v)
	}
	if r.Len() != 0 {
		t.Errorf("unexpected active count: got:%d want:0", r.Len())
	}
}

func TestRegistryDisposedUnitIsCollected(t *testing.T) {
	tw := newFloat(t, &prop{}, 10, 1).WithID("a")
	r := NewRegistry()
	r.Add(tw)
	tw.Dispose()
	r.Update(0.25, 0.25)
	if r.Len() != 0 {
		t.Errorf("unexpected active count: got:%d want:0", r.Len())
	}
	if _, ok := r.Lookup("a"); ok {
		t.Error("expected disposed unit to be dropped from index")
	}
}

func TestRegistryCallbackAdds(t *testing.T) {
	r := NewRegistry()
	next := &prop{}
	first := newFloat(t, &prop{}, 1, 0.5).OnComplete(func() {
		r.Add(newFloat(t, next, 10, 1))
	})
	r.Add(first)

	r.Update(0.5, 0.5)
	if r.Len() != 1 {
		t.Fatalf("unexpected active count: got:%d want:1", r.Len())
	}
	if len(next.writes) != 0 {
		t.Error("unexpected update of unit added during the same pass")
	}
	r.Update(0.5, 0.5)
	if next.v != 5 {
		t.Errorf("unexpected value of chained unit: got:%v want:5", next.v)
	}
}

func TestRegistryCallbackRemoves(t *testing.T) {
	r := NewRegistry()
	victim := &prop{}
	v := newFloat(t, victim, 10, 1)
	killer := newFloat(t, &prop{}, 1, 0.25).OnComplete(func() { r.Remove(v) })
	r.Add(v)
	r.Add(killer)

	// killer is updated first and removes v before v is reached.
	r.Update(0.25, 0.25)
	if !v.IsDisposed() {
		t.Fatal("expected victim to be disposed")
	}
	if len(victim.writes) != 0 {
		t.Errorf("unexpected writes by removed unit: %v", victim.writes)
	}
	if r.Len() != 0 {
		t.Errorf("unexpected active count: got:%d want:0", r.Len())
	}
}

func TestRegistryReplaceDuringUpdate(t *testing.T) {
	r := NewRegistry()
	var replacement *Tween[float64]
	old := newFloat(t, &prop{}, 1, 0.25).WithID("x").OnComplete(func() {
		replacement = newFloat(t, &prop{}, 1, 1).WithID("x")
		r.Add(replacement)
	})
	r.Add(old)
	r.Update(0.25, 0.25)

	got, ok := r.Lookup("x")
	if !ok || got != Unit(replacement) {
		t.Errorf("expected replacement to stay indexed: got:%v ok:%t", got, ok)
	}
	if r.Len() != 1 {
		t.Errorf("unexpected active count: got:%d want:1", r.Len())
	}
}

func TestRegistryPauseResumeAll(t *testing.T) {
	a, b := &prop{}, &prop{}
	r := NewRegistry()
	r.Add(newFloat(t, a, 10, 1))
	r.Add(newFloat(t, b, 10, 1))

	r.PauseAll()
	r.Update(0.25, 0.25)
	if len(a.writes) != 0 || len(b.writes) != 0 {
		t.Error("unexpected writes while paused")
	}
	r.ResumeAll()
	r.Update(0.25, 0.25)
	if a.v != 2.5 || b.v != 2.5 {
		t.Errorf("unexpected values after resume: a:%v b:%v", a.v, b.v)
	}
}

func TestRegistryClear(t *testing.T) {
	var kills int
	r := NewRegistry()
	for _, id := range []string{"a", "b", ""} {
		r.Add(newFloat(t, &prop{}, 1, 1).WithID(id).OnKill(func() { kills++ }))
	}
	r.Clear()
	if kills != 3 {
		t.Errorf("unexpected number of kills: got:%d want:3", kills)
	}
	if r.Len() != 0 {
		t.Errorf("unexpected active count: got:%d want:0", r.Len())
	}
	if _, ok := r.Lookup("a"); ok {
		t.Error("unexpected index entry after clear")
	}
}

func TestRegistryClearByPrefix(t *testing.T) {
	ids := []string{"fx_a", "fx_b", "ui_c", ""}

	tests := []struct {
		policy       PrefixPolicy
		wantDisposed []bool
		wantActive   int
		wantIndexed  []string
	}{
		{
			policy:       PrefixMatching,
			wantDisposed: []bool{true, true, false, false},
			wantActive:   2,
			wantIndexed:  []string{"ui_c"},
		},
		{
			policy:       PrefixLegacy,
			wantDisposed: []bool{true, true, true, true},
			wantActive:   0,
			wantIndexed:  []string{"ui_c"},
		},
	}

	for _, test := range tests {
		t.Run(test.policy.String(), func(t *testing.T) {
			r := NewRegistry()
			r.SetPrefixPolicy(test.policy)
			var units []*Tween[float64]
			for _, id := range ids {
				u := newFloat(t, &prop{}, 1, 1).WithID(id)
				units = append(units, u)
				r.Add(u)
			}

			r.ClearByPrefix("fx_")

			var gotDisposed []bool
			for _, u := range units {
				gotDisposed = append(gotDisposed, u.IsDisposed())
			}
			if !cmp.Equal(test.wantDisposed, gotDisposed) {
				t.Errorf("unexpected disposal:\n--- want:\n+++ got:\n%s", cmp.Diff(test.wantDisposed, gotDisposed))
			}
			if r.Len() != test.wantActive {
				t.Errorf("unexpected active count: got:%d want:%d", r.Len(), test.wantActive)
			}
			var gotIndexed []string
			for _, id := range ids[:3] {
				if _, ok := r.Lookup(id); ok {
					gotIndexed = append(gotIndexed, id)
				}
			}
			if !cmp.Equal(test.wantIndexed, gotIndexed) {
				t.Errorf("unexpected index:\n--- want:\n+++ got:\n%s", cmp.Diff(test.wantIndexed, gotIndexed))
			}
		})
	}
}

func TestRegistryLegacyStaleIndexReplaced(t *testing.T) {
	r := NewRegistry()
	r.SetPrefixPolicy(PrefixLegacy)
	old := newFloat(t, &prop{}, 1, 1).WithID("ui_c")
	r.Add(old)
	r.ClearByPrefix("fx_")

	u, ok := r.Lookup("ui_c")
	if !ok || !u.IsDisposed() {
		t.Fatalf("expected stale disposed entry: got:%v ok:%t", u, ok)
	}

	fresh := newFloat(t, &prop{}, 1, 1).WithID("ui_c")
	r.Add(fresh)
	if fresh.IsDisposed() {
		t.Error("unexpected disposal of fresh unit")
	}
	u, _ = r.Lookup("ui_c")
	if u != Unit(fresh) {
		t.Error("expected fresh unit to replace stale entry")
	}
	if r.Len() != 1 {
		t.Errorf("unexpected active count: got:%d want:1", r.Len())
	}
}
