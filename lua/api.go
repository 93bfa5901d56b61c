package lua

import glua "github.com/yuin/gopher-lua"

// --- API Registration ---

func (e *Engine) registerAPIs() {
	e.apiTable = e.L.NewTable()
	e.L.SetGlobal("autocomplete", e.apiTable)

	// autocomplete.words({"cat", "car"}) - Add suggestion words
	e.L.SetField(e.apiTable, "words", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.CheckTable(1)
		tbl.ForEach(func(_, v glua.LValue) {
			if s, ok := v.(glua.LString); ok {
				e.words = append(e.words, string(s))
			}
		})
		return 0
	}))

	// autocomplete.render_item(function(item) return "> " .. item end)
	e.L.SetField(e.apiTable, "render_item", e.L.NewFunction(func(L *glua.LState) int {
		e.renderFn = L.CheckFunction(1)
		return 0
	}))

	// autocomplete.log(msg) - Write to the debug log
	e.L.SetField(e.apiTable, "log", e.L.NewFunction(func(L *glua.LState) int {
		e.logger.Printf("lua: %s", L.CheckString(1))
		return 0
	}))
}
