package storage

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKV(db)
}

func TestKVRoundTrip(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	want := WellnessMetrics{Week: PeriodMetrics{ShieldLevel: 42, Trend: "up"}}
	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := kv.Set(ctx, KeyWellnessMetrics, string(raw)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := kv.Get(ctx, KeyWellnessMetrics)
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v", ok, err)
	}
	var m WellnessMetrics
	if err := json.Unmarshal([]byte(got), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != want {
		t.Fatalf("round-trip = %+v, want %+v", m, want)
	}

	// Overwrite wins.
	if err := kv.Set(ctx, KeyWellnessMetrics, `{"week":{"shieldLevel":7}}`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _, _ = kv.Get(ctx, KeyWellnessMetrics)
	if got != `{"week":{"shieldLevel":7}}` {
		t.Fatalf("overwrite = %q", got)
	}
}

func TestKVUpdateCommitsAndRollsBack(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	err := kv.Update(ctx, func(tx *Tx) error {
		if err := tx.Set(ctx, "a", "1"); err != nil {
			return err
		}
		// Writes must be visible within the same transaction.
		v, ok, err := tx.Get(ctx, "a")
		if err != nil || !ok || v != "1" {
			t.Fatalf("in-tx Get = %q ok=%v err=%v", v, ok, err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v, ok, _ := kv.Get(ctx, "a"); !ok || v != "1" {
		t.Fatalf("committed Get = %q ok=%v", v, ok)
	}

	boom := errors.New("boom")
	err = kv.Update(ctx, func(tx *Tx) error {
		if err := tx.Set(ctx, "b", "2"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update err = %v, want boom", err)
	}
	if _, ok, _ := kv.Get(ctx, "b"); ok {
		t.Fatalf("rolled-back key b is visible")
	}
}

func TestStateDefaults(t *testing.T) {
	kv := newTestKV(t)
	st := NewState(kv, zerolog.Nop())
	ctx := context.Background()

	m, err := st.Metrics(ctx)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m.Week.Trend != TrendStable || m.Week.ShieldLevel != 0 {
		t.Fatalf("default metrics = %+v", m.Week)
	}

	week, err := st.MoodWeek(ctx)
	if err != nil {
		t.Fatalf("MoodWeek: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("mood week has %d entries, want 7", len(week))
	}
	wantDays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for i, e := range week {
		if e.Day != wantDays[i] {
			t.Fatalf("mood week[%d].Day = %q, want %q", i, e.Day, wantDays[i])
		}
		if e.Mood != 0 {
			t.Fatalf("mood week[%d].Mood = %d, want 0", i, e.Mood)
		}
	}

	missions, err := st.Missions(ctx)
	if err != nil {
		t.Fatalf("Missions: %v", err)
	}
	if len(missions) != 5 {
		t.Fatalf("default missions = %d, want 5", len(missions))
	}
	for _, mi := range missions {
		if mi.Completed {
			t.Fatalf("default mission %d is completed", mi.ID)
		}
	}

	achievements, err := st.Achievements(ctx)
	if err != nil {
		t.Fatalf("Achievements: %v", err)
	}
	if len(achievements) != 4 {
		t.Fatalf("default achievements = %d, want 4", len(achievements))
	}
	for _, a := range achievements {
		if a.Earned || a.Progress != 0 {
			t.Fatalf("default achievement %d = %+v", a.ID, a)
		}
	}
}

func TestStateMalformedValuesFallBackToDefaults(t *testing.T) {
	kv := newTestKV(t)
	st := NewState(kv, zerolog.Nop())
	ctx := context.Background()

	if err := kv.Set(ctx, KeyWellnessMetrics, "not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	m, err := st.Metrics(ctx)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if m != DefaultMetrics() {
		t.Fatalf("malformed metrics = %+v, want defaults", m)
	}

	if err := kv.Set(ctx, KeyBreathingExercises, "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	n, err := st.BreathingCount(ctx)
	if err != nil {
		t.Fatalf("BreathingCount: %v", err)
	}
	if n != 0 {
		t.Fatalf("malformed counter = %d, want 0", n)
	}
}

func TestStateCounters(t *testing.T) {
	kv := newTestKV(t)
	st := NewState(kv, zerolog.Nop())
	ctx := context.Background()

	if n, _ := st.SleepCount(ctx); n != 0 {
		t.Fatalf("fresh sleep count = %d", n)
	}
	if err := st.SetSleepCount(ctx, 3); err != nil {
		t.Fatalf("SetSleepCount: %v", err)
	}
	if n, _ := st.SleepCount(ctx); n != 3 {
		t.Fatalf("sleep count = %d, want 3", n)
	}

	// Stored form is a string-encoded integer.
	raw, ok, err := kv.Get(ctx, KeySleepMelodyUsage)
	if err != nil || !ok || raw != "3" {
		t.Fatalf("raw sleep counter = %q ok=%v err=%v", raw, ok, err)
	}
}
