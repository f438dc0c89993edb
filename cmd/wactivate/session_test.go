package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgets/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var page = `<html><body>
<ul id="menu" data-type="selector">
  <li id="home" data-selector data-value="home" data-state="on">Home</li>
  <li id="about" data-selector data-value="about">About</li>
</ul>
<div id="dark" data-type="switch" data-state="off" data-value="dark">Dark</div>
<div id="faq" data-collapsible data-state="collapsed">
  <h3 id="faq-h" data-collapsible-header>FAQ</h3>
  <p data-collapsible-content>Answers</p>
</div>
<form>
  <div><label class="form-label" data-type="placeholder" for="name">Name</label><input id="name"></div>
  <span id="cnt" data-counter="name"></span>
  <div id="broken" data-type="form-switch"></div>
</form>
</body></html>`

var script = `
- click: "#about"
- click: "#dark"
- click: "#faq-h"
- focus: "#name"
- input: {target: "#name", value: "Alice"}
- blur: "#name"
`

func runSession(t *testing.T, conf *config.Conf, script string) (string, string, error) {
	steps, err := ReadScript(strings.NewReader(script))
	require.NoError(t, err)
	var out, errs bytes.Buffer
	s, err := newSession(conf, strings.NewReader(page), &out, &errs)
	require.NoError(t, err)
	err = s.run(steps)
	return out.String(), errs.String(), err
}

func TestSessionReplaysScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.activate")
	defer teardown()
	//
	out, errs, err := runSession(t, config.New(), script)
	require.NoError(t, err)
	assert.Contains(t, out, "callback selector value=about element=li#about")
	assert.Contains(t, out, "callback switch value=dark element=div#dark")
	assert.Contains(t, out, "callback collapsible value=expanded element=div#faq")
	assert.Contains(t, out, `data-counter-val="5"`)
	assert.Contains(t, out, `<li id="about" data-selector="" data-value="about" data-state="on">`)
	assert.Contains(t, errs, "missing collaborator")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestSessionFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.activate")
	defer teardown()
	//
	conf := config.New()
	conf.Set(config.KeyFormat, "tree")
	out, _, err := runSession(t, conf, "")
	require.NoError(t, err)
	assert.Contains(t, out, "#document")
	assert.Contains(t, out, "li#home [selector=] [state=on] [value=home]")
	conf.Set(config.KeyFormat, "dot")
	out, _, err = runSession(t, conf, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	conf.Set(config.KeyFormat, "pdf")
	_, _, err = runSession(t, conf, "")
	assert.Error(t, err)
}

func TestSessionFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.activate")
	defer teardown()
	//
	conf := config.New()
	conf.Set(config.KeyFamilies, "switch")
	out, _, err := runSession(t, conf, script)
	require.NoError(t, err)
	assert.Contains(t, out, "callback switch")
	assert.NotContains(t, out, "callback selector")
	conf.Set(config.KeyFamilies, "switch,slider")
	_, _, err = runSession(t, conf, "")
	assert.Error(t, err)
}

func TestUnknownTarget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgets.activate")
	defer teardown()
	//
	_, _, err := runSession(t, config.New(), `- click: "#nowhere"`)
	assert.True(t, errors.Is(err, ErrUnknownTarget))
}

func TestReadScript(t *testing.T) {
	steps, err := ReadScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, steps, 6)
	assert.Equal(t, "click #about", steps[0].String())
	assert.Equal(t, `input #name "Alice"`, steps[4].String())
	_, err = ReadScript(strings.NewReader(`- {click: "#a", blur: "#b"}`))
	assert.Error(t, err)
	_, err = ReadScript(strings.NewReader(`- {}`))
	assert.Error(t, err)
	_, err = ReadScript(strings.NewReader(`- hover: "#a"`))
	assert.Error(t, err)
	steps, err = ReadScript(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "page.html")
	scriptPath := filepath.Join(dir, "events.yaml")
	require.NoError(t, os.WriteFile(pagePath, []byte(page), 0o600))
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o600))
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--script", scriptPath, "--format", "tree", pagePath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "callback selector value=about")
	assert.Contains(t, out.String(), "#document")
}
