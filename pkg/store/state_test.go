package store

import (
	"encoding/json"
	"errors"
	"testing"
)

type write struct {
	key   string
	value string
}

// fakeKV records every write and can simulate failures.
type fakeKV struct {
	data    map[string][]byte
	writes  []write
	readErr error
	setErr  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}}
}

func (f *fakeKV) Get(key string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (f *fakeKV) Set(key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	f.writes = append(f.writes, write{key: key, value: string(value)})
	return nil
}

func (f *fakeKV) Has(key string) bool {
	_, ok := f.data[key]
	return ok
}

func TestNoWriteBeforeHydration(t *testing.T) {
	kv := newFakeKV()
	kv.data["k"] = []byte(`"persisted"`)

	st := NewState(kv, "k", "initial", nil)
	st.Set("changed before hydration")

	if len(kv.writes) != 0 {
		t.Fatalf("write happened before hydration: %v", kv.writes)
	}

	st.Hydrate()
	if st.Get() != "persisted" {
		t.Fatalf("hydration should load the stored value, got %q", st.Get())
	}
}

func TestHydrateKeepsInitialWhenKeyMissing(t *testing.T) {
	kv := newFakeKV()
	st := NewState(kv, "k", "initial", nil)
	st.Hydrate()

	if !st.Hydrated() {
		t.Fatalf("expected hydrated after Hydrate")
	}
	if st.Get() != "initial" {
		t.Fatalf("expected initial value kept, got %q", st.Get())
	}
	if len(kv.writes) != 0 {
		t.Fatalf("hydration must not write: %v", kv.writes)
	}
}

func TestHydrateSurvivesCorruptBlob(t *testing.T) {
	kv := newFakeKV()
	kv.data["k"] = []byte(`{not json`)

	st := NewState(kv, "k", 42, nil)
	st.Hydrate()
	if st.Get() != 42 {
		t.Fatalf("corrupt blob should keep initial value, got %v", st.Get())
	}
}

func TestWritesFollowChangesInOrder(t *testing.T) {
	kv := newFakeKV()
	st := NewState(kv, "k", 0, nil)
	st.Hydrate()

	for i := 1; i <= 3; i++ {
		st.Set(i)
	}

	if len(kv.writes) != 3 {
		t.Fatalf("expected one write per change, got %d", len(kv.writes))
	}
	for i, w := range kv.writes {
		var got int
		if err := json.Unmarshal([]byte(w.value), &got); err != nil {
			t.Fatalf("write %d not JSON: %v", i, err)
		}
		if got != i+1 {
			t.Fatalf("write %d out of order: got %d", i, got)
		}
	}
}

func TestSetFailureKeepsInMemoryValue(t *testing.T) {
	kv := newFakeKV()
	st := NewState(kv, "k", "a", nil)
	st.Hydrate()

	kv.setErr = errors.New("disk full")
	st.Set("b")

	if st.Get() != "b" {
		t.Fatalf("in-memory value must survive persistence failure, got %q", st.Get())
	}
}

func TestHydrateIsIdempotent(t *testing.T) {
	kv := newFakeKV()
	kv.data["k"] = []byte(`"persisted"`)

	st := NewState(kv, "k", "initial", nil)
	st.Hydrate()
	st.Set("changed")
	// A second Hydrate must not re-read and clobber the session value.
	st.Hydrate()
	if st.Get() != "changed" {
		t.Fatalf("repeated hydration replaced the session value: %q", st.Get())
	}
}
