// Package script runs sandboxed Lua generator scripts against a
// seedcraft engine. A script draws through the global `rng` table and
// returns a value (usually a table) describing the generated content;
// with a fixed seed the result is fully reproducible.
package script

import (
	"fmt"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/seedcraft/rng"
)

// Run executes a Lua script file with the given engine and returns the
// script's return value converted to Go values. The Lua VM is discarded
// after the run.
func Run(path string, e *rng.Engine) (any, error) {
	L := newState(e)
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", filepath.Base(path), err)
	}
	return returned(L), nil
}

// RunString executes Lua source text. Used by tests and the explorers.
func RunString(src string, e *rng.Engine) (any, error) {
	L := newState(e)
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("executing script: %w", err)
	}
	return returned(L), nil
}

// newState creates a sandboxed VM with the rng API registered.
func newState(e *rng.Engine) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	registerAPI(L, e)
	return L
}

// returned converts the last value the script left on the stack.
func returned(L *lua.LState) any {
	if L.GetTop() == 0 {
		return nil
	}
	return luaToGo(L.Get(-1))
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	// Table library (table.insert, table.sort, etc.)
	lua.OpenTable(L)
	// String library (string.format, string.sub, etc.)
	lua.OpenString(L)
	// Math library (math.floor, math.max, etc.)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and every ambient randomness source,
// so all draws go through the engine and stay deterministic.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("random", lua.LNil)
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
