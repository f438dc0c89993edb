package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
tracing:
  adapter: test
tracelevel:
  root: Info
  widgets.activate: Debug
wactivate:
  format: tree
  families: [selector, switch]
  verbose: true
  depth: 3
  nothing: ~
`

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "go", c.GetString(KeyTracingAdapter))
	assert.Equal(t, "Error", c.GetString("tracelevel.root"))
	assert.Equal(t, "html", c.GetString(KeyFormat))
	assert.False(t, c.IsSet(KeyFamilies))
	assert.Nil(t, c.GetStringList(KeyFamilies))
	assert.False(t, c.IsInteractive())
}

func TestLoadYAMLFlattensKeys(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "test", c.GetString("tracing.adapter"))
	assert.Equal(t, "Info", c.GetString("tracelevel.root"))
	assert.Equal(t, "Debug", c.GetString("tracelevel.widgets.activate"))
	assert.Equal(t, "tree", c.GetString(KeyFormat))
	assert.Equal(t, []string{"selector", "switch"}, c.GetStringList(KeyFamilies))
	assert.True(t, c.GetBool("wactivate.verbose"))
	assert.Equal(t, 3, c.GetInt("wactivate.depth"))
	assert.False(t, c.IsSet("wactivate.nothing"))
	assert.Equal(t, 0, c.GetInt("wactivate.format"))
	assert.Contains(t, c.Keys(), "tracelevel.widgets.activate")
}

func TestLoadYAMLErrors(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("- a\n- b\n"))
	assert.ErrorIs(t, err, ErrNotAMapping)
	_, err = LoadYAML(strings.NewReader("a: [b, {c: d}]\n"))
	assert.Error(t, err)
	_, err = LoadYAML(strings.NewReader("a: [unclosed\n"))
	assert.Error(t, err)
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "html", c.GetString(KeyFormat))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wactivate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tree", c.GetString(KeyFormat))
	old := c.Set(KeyFormat, "dot")
	assert.Equal(t, "tree", old)
	assert.Equal(t, "dot", c.GetString(KeyFormat))
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
