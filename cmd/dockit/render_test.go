package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/dockit/internal/render"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderFile_PlainData(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "notes.json", `{"content": "# Meeting Notes"}`)

	out, err := renderFile(input, "", "freeform", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.html"), out)

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Meeting Notes")
	assert.Contains(t, string(html), "<!DOCTYPE html>")
}

func TestRenderFile_WrapperPicksKindAndTheme(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "inv.json", `{
		"kind": "invoice",
		"data": {"invoice_number": "INV-7"},
		"theme": {"mode": "dark"}
	}`)

	out, err := renderFile(input, "", "freeform", nil)
	require.NoError(t, err)

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Invoice INV-7")
	assert.Contains(t, string(html), "--bg: #1a1a2e")
}

func TestRenderFile_OutDir(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"content": "hello"}`)

	out, err := renderFile(input, outDir, "freeform", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "doc.html"), out)
}

func TestRenderFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := renderFile(filepath.Join(dir, "missing.json"), "", "freeform", nil)
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.json", `not json`)
	_, err = renderFile(bad, "", "freeform", nil)
	assert.Error(t, err)

	plain := writeFile(t, dir, "plain.json", `{"content": "x"}`)
	_, err = renderFile(plain, "", "spreadsheet", nil)
	assert.ErrorIs(t, err, render.ErrUnknownKind)
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "theme.json", `{"mode": "dark", "colors": {"primary": "#10b981"}}`)

	theme, err := loadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Mode)
	assert.Equal(t, "#10b981", theme.Colors.Primary)

	theme, err = loadTheme("")
	require.NoError(t, err)
	assert.Nil(t, theme)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b.html"), outputPath(filepath.Join("a", "b.json"), ""))
	assert.Equal(t, filepath.Join("out", "b.html"), outputPath(filepath.Join("a", "b.json"), "out"))
}
