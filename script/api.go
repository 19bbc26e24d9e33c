package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nathoo/seedcraft/rng"
)

// registerAPI registers the global `rng` table backed by the engine.
// Argument errors are raised as Lua errors, so a bad call fails the
// script with a location instead of panicking the host.
func registerAPI(L *lua.LState, e *rng.Engine) {
	tbl := L.NewTable()
	L.SetGlobal("rng", tbl)

	reg := func(name string, fn lua.LGFunction) {
		tbl.RawSetString(name, L.NewFunction(fn))
	}

	reg("seed", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.Seed()))
		return 1
	})

	reg("position", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.Position()))
		return 1
	})

	reg("value", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.Value()))
		return 1
	})

	reg("signed", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.SignedValue()))
		return 1
	})

	// rng.int(min, max) — uniform integer in [min, max).
	reg("int", func(L *lua.LState) int {
		min := L.CheckInt(1)
		max := L.CheckInt(2)
		if max <= min {
			L.RaiseError("int: max (%d) must be greater than min (%d)", max, min)
		}
		L.Push(lua.LNumber(e.IntRange(min, max)))
		return 1
	})

	// rng.range(min, max) — uniform float in [min, max).
	reg("range", func(L *lua.LState) int {
		min := float64(L.CheckNumber(1))
		max := float64(L.CheckNumber(2))
		if max < min {
			L.RaiseError("range: max (%v) must not be below min (%v)", max, min)
		}
		L.Push(lua.LNumber(e.FloatRange(min, max)))
		return 1
	})

	reg("raw", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.RawInt()))
		return 1
	})

	reg("sign", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.Sign()))
		return 1
	})

	reg("bias_lower", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.ValueBiasLower(float64(L.CheckNumber(1)))))
		return 1
	})

	reg("bias_upper", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.ValueBiasUpper(float64(L.CheckNumber(1)))))
		return 1
	})

	reg("bias_extremes", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.ValueBiasExtremes(float64(L.CheckNumber(1)))))
		return 1
	})

	reg("bias_centre", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.ValueBiasCentre(float64(L.CheckNumber(1)))))
		return 1
	})

	// rng.weighted(category [, strength])
	reg("weighted", func(L *lua.LState) int {
		name := L.CheckString(1)
		w, ok := rng.ParseWeight(name)
		if !ok {
			L.RaiseError("weighted: unknown category %q", name)
		}
		strength := rng.DefaultWeightStrength
		if L.GetTop() >= 2 {
			strength = L.CheckInt(2)
		}
		L.Push(lua.LNumber(e.WeightedValue(w, strength)))
		return 1
	})

	// rng.extreme(n, kind) — kind: "smallest" | "largest" | "centred".
	reg("extreme", func(L *lua.LState) int {
		n := L.CheckInt(1)
		if n < 1 {
			L.RaiseError("extreme: need at least one draw, got %d", n)
		}
		name := L.CheckString(2)
		kind, ok := rng.ParseExtreme(name)
		if !ok {
			L.RaiseError("extreme: unknown kind %q", name)
		}
		L.Push(lua.LNumber(e.ExtremeOf(n, kind)))
		return 1
	})

	// rng.jiggle(wx, wy, wz) -> {x=, y=, z=}
	reg("jiggle", func(L *lua.LState) int {
		v := e.Jiggle(
			float64(L.CheckNumber(1)),
			float64(L.CheckNumber(2)),
			float64(L.CheckNumber(3)),
		)
		out := L.NewTable()
		out.RawSetString("x", lua.LNumber(v.X))
		out.RawSetString("y", lua.LNumber(v.Y))
		out.RawSetString("z", lua.LNumber(v.Z))
		L.Push(out)
		return 1
	})

	// rng.color_hsv(satMin, satMax, valMin, valMax) -> {r=, g=, b=, hex=}
	reg("color_hsv", func(L *lua.LState) int {
		c := e.ColorHSV(
			float64(L.CheckNumber(1)),
			float64(L.CheckNumber(2)),
			float64(L.CheckNumber(3)),
			float64(L.CheckNumber(4)),
		)
		L.Push(colorTable(L, c))
		return 1
	})

	// rng.greyscale(min, max) -> {r=, g=, b=, hex=}
	reg("greyscale", func(L *lua.LState) int {
		c := e.Greyscale(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
		L.Push(colorTable(L, c))
		return 1
	})

	// rng.pick(list) — element at a uniformly drawn index.
	reg("pick", func(L *lua.LState) int {
		t := L.CheckTable(1)
		n := t.Len()
		if n == 0 {
			L.RaiseError("pick: empty sequence")
		}
		L.Push(t.RawGetInt(e.IntRange(1, n+1)))
		return 1
	})

	// rng.shuffle(list) — in-place Fisher–Yates; returns the list.
	reg("shuffle", func(L *lua.LState) int {
		t := L.CheckTable(1)
		n := t.Len()
		for i := 1; i < n; i++ {
			j := e.IntRange(i, n+1)
			a, b := t.RawGetInt(i), t.RawGetInt(j)
			t.RawSetInt(i, b)
			t.RawSetInt(j, a)
		}
		L.Push(t)
		return 1
	})
}

func colorTable(L *lua.LState, c colorful.Color) *lua.LTable {
	out := L.NewTable()
	out.RawSetString("r", lua.LNumber(c.R))
	out.RawSetString("g", lua.LNumber(c.G))
	out.RawSetString("b", lua.LNumber(c.B))
	out.RawSetString("hex", lua.LString(c.Hex()))
	return out
}
