package session

import (
	"testing"

	"github.com/nathoo/seedcraft/rng"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	e := rng.New(42)
	for i := 0; i < 25; i++ {
		e.Value()
	}

	data, err := Save(e)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sd.Seed != 42 {
		t.Errorf("Seed = %d, want 42", sd.Seed)
	}
	if sd.Position != 25 {
		t.Errorf("Position = %d, want 25", sd.Position)
	}
	if sd.Version != FormatVersion {
		t.Errorf("Version = %q, want %q", sd.Version, FormatVersion)
	}
}

func TestApply_ResumesStream(t *testing.T) {
	e := rng.New(7)
	for i := 0; i < 10; i++ {
		e.Value()
	}
	data, err := Save(e)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var want [5]float64
	for i := range want {
		want[i] = e.Value()
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	resumed := Apply(sd)
	for i, w := range want {
		if got := resumed.Value(); got != w {
			t.Fatalf("draw %d: got %v, want %v", i, got, w)
		}
	}
}

func TestLoad_NegativePosition(t *testing.T) {
	sd, err := Load([]byte(`{"version":"1","seed":3,"position":-4}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sd.Position != 0 {
		t.Errorf("Position = %d, want 0", sd.Position)
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
