package script

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nathoo/seedcraft/rng"
)

func TestRunString_ReturnsValue(t *testing.T) {
	out, err := RunString(`return 1 + 2`, rng.New(1))
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if out != 3.0 {
		t.Errorf("result = %v, want 3", out)
	}
}

func TestRunString_Deterministic(t *testing.T) {
	src := `
		local out = {}
		for i = 1, 10 do
			out[i] = rng.value()
		end
		return out
	`
	a, err := RunString(src, rng.New(42))
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := RunString(src, rng.New(42))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed, different results:\n%v\n%v", a, b)
	}
}

func TestRunString_IntRange(t *testing.T) {
	out, err := RunString(`
		for i = 1, 100 do
			local v = rng.int(3, 9)
			if v < 3 or v >= 9 then
				error("out of range: " .. v)
			end
		end
		return true
	`, rng.New(5))
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if out != true {
		t.Errorf("result = %v", out)
	}
}

func TestRunString_InvalidRangeRaises(t *testing.T) {
	_, err := RunString(`return rng.int(5, 5)`, rng.New(1))
	if err == nil {
		t.Fatal("expected error for empty integer range")
	}
	if !strings.Contains(err.Error(), "greater than") {
		t.Errorf("error = %v", err)
	}
}

func TestRunString_Weighted(t *testing.T) {
	out, err := RunString(`
		local sum = 0
		for i = 1, 2000 do
			sum = sum + rng.weighted("lower")
		end
		return sum / 2000
	`, rng.New(7))
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	// min of 5 uniforms has mean 1/6.
	m := out.(float64)
	if m < 0.1 || m > 0.25 {
		t.Errorf("weighted lower mean = %v, want ~1/6", m)
	}
}

func TestRunString_WeightedUnknownCategory(t *testing.T) {
	_, err := RunString(`return rng.weighted("sideways")`, rng.New(1))
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("error = %v, want unknown category", err)
	}
}

func TestRunString_PickAndShuffle(t *testing.T) {
	out, err := RunString(`
		local items = { "a", "b", "c", "d" }
		rng.shuffle(items)
		table.sort(items)
		return { shuffled = table.concat(items), picked = rng.pick(items) }
	`, rng.New(9))
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	m := out.(map[string]any)
	if m["shuffled"] != "abcd" {
		t.Errorf("shuffle is not a permutation: %v", m["shuffled"])
	}
	picked := m["picked"].(string)
	if !strings.Contains("abcd", picked) || picked == "" {
		t.Errorf("picked = %q", picked)
	}
}

func TestRunString_PickEmptyRaises(t *testing.T) {
	_, err := RunString(`return rng.pick({})`, rng.New(1))
	if err == nil || !strings.Contains(err.Error(), "empty sequence") {
		t.Fatalf("error = %v, want empty sequence", err)
	}
}

func TestRunString_ColorAndJiggle(t *testing.T) {
	out, err := RunString(`
		return {
			tint = rng.color_hsv(0.2, 0.8, 0.4, 1.0),
			grey = rng.greyscale(0.1, 0.9),
			offset = rng.jiggle(1, 2, 3),
		}
	`, rng.New(21))
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	m := out.(map[string]any)
	tint := m["tint"].(map[string]any)
	if hex := tint["hex"].(string); !strings.HasPrefix(hex, "#") || len(hex) != 7 {
		t.Errorf("hex = %q", hex)
	}
	grey := m["grey"].(map[string]any)
	if grey["r"] != grey["g"] || grey["g"] != grey["b"] {
		t.Errorf("greyscale channels differ: %v", grey)
	}
	off := m["offset"].(map[string]any)
	if x := off["x"].(float64); x < -1 || x > 1 {
		t.Errorf("jiggle x = %v", x)
	}
}

func TestRunString_SandboxBlocksAmbientRandom(t *testing.T) {
	out, err := RunString(`return math.random == nil and math.randomseed == nil`, rng.New(1))
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if out != true {
		t.Error("math.random leaked into the sandbox")
	}
}

func TestRunString_SandboxBlocksIO(t *testing.T) {
	out, err := RunString(`return os == nil and io == nil and dofile == nil`, rng.New(1))
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if out != true {
		t.Error("os/io/dofile leaked into the sandbox")
	}
}

func TestRun_LootScript(t *testing.T) {
	out, err := Run("testdata/loot.lua", rng.New(42))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	m := out.(map[string]any)
	if m["seed"] != 42.0 {
		t.Errorf("seed = %v, want 42", m["seed"])
	}
	drops := m["drops"].([]any)
	if len(drops) != 5 {
		t.Fatalf("expected 5 drops, got %d", len(drops))
	}
	first := drops[0].(map[string]any)
	for _, key := range []string{"item", "rarity", "gold", "tint"} {
		if _, ok := first[key]; !ok {
			t.Errorf("drop missing %q: %v", key, first)
		}
	}

	// Same seed, same loot.
	again, err := Run("testdata/loot.lua", rng.New(42))
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if !reflect.DeepEqual(out, again) {
		t.Error("same seed produced different loot")
	}
}
