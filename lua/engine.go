package lua

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	glua "github.com/yuin/gopher-lua"
)

// Engine wraps gopher-lua and runs the user's init script.
// Scripts contribute words to the suggestion source and may replace the
// row renderer through the autocomplete table.
type Engine struct {
	L *glua.LState

	// Cached table reference
	apiTable *glua.LTable

	words    []string
	renderFn *glua.LFunction
	logger   *log.Logger
}

// NewEngine creates an Engine. A nil logger discards script output.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{logger: logger}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// It registers the API but does NOT load any scripts - that's the caller's job.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()
	e.words = nil
	e.renderFn = nil

	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	e.renderFn = nil
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// --- Execution Primitives ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	// Temporarily prepend script's directory to package.path
	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	newPath := dir + "/?.lua;" + oldPath
	e.L.SetField(pkg, "path", glua.LString(newPath))

	err = e.L.DoFile(absPath)

	// Restore original path
	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return err
}

// Open creates an engine and runs the script at path.
func Open(path string, logger *log.Logger) (*Engine, error) {
	e := NewEngine(logger)
	if err := e.Init(); err != nil {
		return nil, err
	}
	if err := e.DoFile(path); err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to load script %s: %w", path, err)
	}
	return e, nil
}

// --- Results ---

// Words returns the words the script registered.
func (e *Engine) Words() []string {
	out := make([]string, len(e.words))
	copy(out, e.words)
	return out
}

// HasRenderer reports whether the script installed a row renderer.
func (e *Engine) HasRenderer() bool {
	return e.renderFn != nil
}

// RenderItem runs the script's renderer on item. Errors and non-string
// results fall back to the item itself.
func (e *Engine) RenderItem(item string) string {
	if e.L == nil || e.renderFn == nil {
		return item
	}

	if err := e.L.CallByParam(glua.P{
		Fn:      e.renderFn,
		NRet:    1,
		Protect: true,
	}, glua.LString(item)); err != nil {
		e.logger.Printf("lua: render_item(%q): %v", item, err)
		return item
	}

	ret := e.L.Get(-1)
	e.L.Pop(1)

	s, ok := ret.(glua.LString)
	if !ok {
		return item
	}
	return string(s)
}

func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
