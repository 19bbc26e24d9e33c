package script

import lua "github.com/yuin/gopher-lua"

// luaToGo converts a Lua value into plain Go values. Tables with a
// non-empty array part become []any; everything else becomes
// map[string]any keyed by the stringified key.
func luaToGo(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if n := v.Len(); n > 0 {
			arr := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				arr = append(arr, luaToGo(v.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		v.ForEach(func(k, val lua.LValue) {
			m[lua.LVAsString(k)] = luaToGo(val)
		})
		return m
	default:
		// nil, functions, userdata: nothing useful to carry across.
		return nil
	}
}
