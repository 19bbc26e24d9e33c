package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nathoo/seedcraft/rng"
)

func TestExec_Value_Deterministic(t *testing.T) {
	a := Exec(rng.New(42), "value")
	b := Exec(rng.New(42), "value")
	if len(a) != 1 || a[0] != b[0] {
		t.Fatalf("same seed, different output: %v vs %v", a, b)
	}
	want := formatFloat(rng.New(42).Value())
	if a[0] != want {
		t.Errorf("value = %q, want %q", a[0], want)
	}
}

func TestExec_Int(t *testing.T) {
	out := Exec(rng.New(7), "int 3 9")
	if len(out) != 1 {
		t.Fatalf("output = %v", out)
	}
	n, err := strconv.Atoi(out[0])
	if err != nil || n < 3 || n >= 9 {
		t.Errorf("int 3 9 = %q", out[0])
	}
}

func TestExec_Int_BadRange(t *testing.T) {
	out := Exec(rng.New(1), "int 5 5")
	if len(out) != 1 || !strings.Contains(out[0], "greater than") {
		t.Errorf("output = %v", out)
	}
}

func TestExec_Int_BadArgs(t *testing.T) {
	out := Exec(rng.New(1), "int five nine")
	if len(out) != 1 || !strings.HasPrefix(out[0], "usage:") {
		t.Errorf("output = %v", out)
	}
}

func TestExec_Bias(t *testing.T) {
	out := Exec(rng.New(3), "bias lower 0.8")
	if len(out) != 1 {
		t.Fatalf("output = %v", out)
	}
	want := formatFloat(rng.New(3).ValueBiasLower(0.8))
	if out[0] != want {
		t.Errorf("bias lower = %q, want %q", out[0], want)
	}
}

func TestExec_Bias_BadStrength(t *testing.T) {
	out := Exec(rng.New(1), "bias lower 1.5")
	if len(out) != 1 || !strings.Contains(out[0], "[0,1]") {
		t.Errorf("output = %v", out)
	}
}

func TestExec_Weighted_DefaultStrength(t *testing.T) {
	out := Exec(rng.New(11), "weighted centre")
	want := formatFloat(rng.New(11).WeightedValue(rng.WeightCentre, rng.DefaultWeightStrength))
	if len(out) != 1 || out[0] != want {
		t.Errorf("weighted centre = %v, want %q", out, want)
	}
}

func TestExec_Pick(t *testing.T) {
	out := Exec(rng.New(9), "pick sword axe bow")
	if len(out) != 1 {
		t.Fatalf("output = %v", out)
	}
	switch out[0] {
	case "sword", "axe", "bow":
	default:
		t.Errorf("pick returned %q", out[0])
	}
}

func TestExec_Shuffle_IsPermutation(t *testing.T) {
	out := Exec(rng.New(5), "shuffle a b c d")
	if len(out) != 1 {
		t.Fatalf("output = %v", out)
	}
	got := strings.Fields(out[0])
	if len(got) != 4 {
		t.Fatalf("shuffle output %q", out[0])
	}
	seen := map[string]bool{}
	for _, s := range got {
		seen[s] = true
	}
	for _, s := range []string{"a", "b", "c", "d"} {
		if !seen[s] {
			t.Errorf("shuffle lost %q: %q", s, out[0])
		}
	}
}

func TestExec_Color(t *testing.T) {
	out := Exec(rng.New(2), "color 0.2 0.8 0.4 1.0")
	if len(out) != 1 || !strings.HasPrefix(out[0], "#") {
		t.Errorf("output = %v", out)
	}
}

func TestExec_Hist(t *testing.T) {
	out := Exec(rng.New(13), "hist weighted lower")
	// 10 bin rows plus a summary line.
	if len(out) != histBins+1 {
		t.Fatalf("expected %d lines, got %d", histBins+1, len(out))
	}
	last := out[len(out)-1]
	if !strings.Contains(last, "n=10000") || !strings.Contains(last, "mean=") {
		t.Errorf("summary = %q", last)
	}
	// Weighted lower: the first bin should carry the most samples.
	if !strings.Contains(out[0], "█") {
		t.Errorf("first bin empty for weighted lower: %q", out[0])
	}
}

func TestExec_Unknown(t *testing.T) {
	out := Exec(rng.New(1), "frobnicate")
	if len(out) != 1 || !strings.Contains(out[0], "Unknown command") {
		t.Errorf("output = %v", out)
	}
}

func TestExec_Empty(t *testing.T) {
	if out := Exec(rng.New(1), "   "); out != nil {
		t.Errorf("output = %v, want nil", out)
	}
}

func TestRun_QuitAndEcho(t *testing.T) {
	var buf bytes.Buffer
	c := New(rng.New(42))
	c.In = strings.NewReader("value\n/quit\n")
	c.Out = &buf
	c.Run()

	out := buf.String()
	if !strings.Contains(out, formatFloat(rng.New(42).Value())) {
		t.Errorf("missing value output:\n%s", out)
	}
	if !strings.Contains(out, "[Goodbye.]") {
		t.Errorf("missing goodbye:\n%s", out)
	}
}

func TestRun_SeedMeta(t *testing.T) {
	var buf bytes.Buffer
	c := New(rng.New(1))
	c.In = strings.NewReader("/seed 42\nvalue\n/quit\n")
	c.Out = &buf
	c.Run()

	if !strings.Contains(buf.String(), formatFloat(rng.New(42).Value())) {
		t.Errorf("reseeded value missing:\n%s", buf.String())
	}
}

func TestRun_Again(t *testing.T) {
	var buf bytes.Buffer
	c := New(rng.New(8))
	c.In = strings.NewReader("value\ng\n/quit\n")
	c.Out = &buf
	c.Run()

	ref := rng.New(8)
	first := formatFloat(ref.Value())
	second := formatFloat(ref.Value())
	out := buf.String()
	if !strings.Contains(out, first) || !strings.Contains(out, second) {
		t.Errorf("repeat draw missing:\n%s", out)
	}
}

func TestRun_SaveLoad(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	c := New(rng.New(42))
	c.SaveDir = dir
	c.In = strings.NewReader("value\nvalue\n/save test\n/quit\n")
	c.Out = &buf
	c.Run()
	if !strings.Contains(buf.String(), "Session saved") {
		t.Fatalf("save missing:\n%s", buf.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "test.json")); err != nil {
		t.Fatalf("save file: %v", err)
	}

	// A fresh CLI loading the session continues the same stream.
	ref := rng.New(42)
	ref.Value()
	ref.Value()
	want := formatFloat(ref.Value())

	var buf2 bytes.Buffer
	c2 := New(rng.New(999))
	c2.SaveDir = dir
	c2.In = strings.NewReader("/load test\nvalue\n/quit\n")
	c2.Out = &buf2
	c2.Run()
	if !strings.Contains(buf2.String(), want) {
		t.Errorf("resumed stream wrong:\n%s", buf2.String())
	}
}
