package lua

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTest creates an initialized engine and returns it with its log buffer.
func setupTest(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	engine := NewEngine(log.New(&buf, "", 0))
	require.NoError(t, engine.Init())
	t.Cleanup(engine.Close)

	return engine, &buf
}

func TestWordsAccumulateInOrder(t *testing.T) {
	engine, _ := setupTest(t)

	require.NoError(t, engine.DoString("test", `
		autocomplete.words({"cat", "car"})
		autocomplete.words({"cart", 42})
	`))

	assert.Equal(t, []string{"cat", "car", "cart"}, engine.Words())
}

func TestRenderItem(t *testing.T) {
	engine, _ := setupTest(t)
	assert.False(t, engine.HasRenderer())
	assert.Equal(t, "cat", engine.RenderItem("cat"))

	require.NoError(t, engine.DoString("test", `
		autocomplete.render_item(function(item) return "> " .. string.upper(item) end)
	`))

	assert.True(t, engine.HasRenderer())
	assert.Equal(t, "> CAT", engine.RenderItem("cat"))
}

func TestRenderItemFallsBackOnError(t *testing.T) {
	engine, buf := setupTest(t)

	require.NoError(t, engine.DoString("test", `
		autocomplete.render_item(function(item)
			if item == "bad" then error("boom") end
			if item == "nil" then return nil end
			return item .. "!"
		end)
	`))

	assert.Equal(t, "bad", engine.RenderItem("bad"))
	assert.Contains(t, buf.String(), "boom")
	assert.Equal(t, "nil", engine.RenderItem("nil"))
	assert.Equal(t, "ok!", engine.RenderItem("ok"))
}

func TestLogWritesToLogger(t *testing.T) {
	engine, buf := setupTest(t)

	require.NoError(t, engine.DoString("test", `autocomplete.log("loaded")`))
	assert.Contains(t, buf.String(), "lua: loaded")
}

func TestInitResetsState(t *testing.T) {
	engine, _ := setupTest(t)
	require.NoError(t, engine.DoString("test", `
		autocomplete.words({"cat"})
		autocomplete.render_item(function(item) return item end)
	`))

	require.NoError(t, engine.Init())
	assert.Empty(t, engine.Words())
	assert.False(t, engine.HasRenderer())
}

func TestOpenRunsScriptWithLocalRequire(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "animals.lua"),
		[]byte(`return {"owl", "ox"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.lua"),
		[]byte(`autocomplete.words(require("animals"))`), 0o644))

	engine, err := Open(filepath.Join(dir, "init.lua"), nil)
	require.NoError(t, err)
	defer engine.Close()

	assert.Equal(t, []string{"owl", "ox"}, engine.Words())
}

func TestOpenReportsScriptErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	require.NoError(t, os.WriteFile(path, []byte(`autocomplete.words(`), 0o644))

	_, err := Open(path, nil)
	assert.ErrorContains(t, err, "failed to load script")
}
