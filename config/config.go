/*
Package config implements application configuration for widget activation
tools on top of YAML files.

Conf implements schuko.Configuration and may therefore be handed to the
tracing infrastructure of schuko (package trace2go). Nested YAML mappings
are flattened into dotted keys, i.e.

    tracelevel:
      root: Error
      widgets.activate: Debug

results in keys "tracelevel.root" and "tracelevel.widgets.activate".
Sequences are joined with commas; use GetStringList to split them again.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// Keys known to the tools of this module.
const (
	KeyTracingAdapter = "tracing.adapter"
	KeyTraceLevels    = "tracelevel" // prefix for trace levels per tracer
	KeyFormat         = "wactivate.format"
	KeyFamilies       = "wactivate.families"
)

// ErrNotAMapping is returned for YAML documents without a top-level mapping.
var ErrNotAMapping = errors.New("configuration is not a YAML mapping")

// Conf is a flat key/value configuration.
type Conf struct {
	values map[string]string
}

var _ schuko.Configuration = &Conf{}

// New creates an empty configuration, populated with defaults.
func New() *Conf {
	c := &Conf{values: make(map[string]string)}
	c.InitDefaults()
	return c
}

// Load reads a YAML configuration file. Values found in the file
// override the defaults.
func Load(path string) (*Conf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML reads a YAML configuration from r. Values found override the
// defaults. An empty input results in the default configuration.
func LoadYAML(r io.Reader) (*Conf, error) {
	c := New()
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if len(doc.Content) == 0 {
		return c, nil
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrNotAMapping
	}
	if err := c.flatten("", doc.Content[0]); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Conf) flatten(prefix string, n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := c.flatten(key, n.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("configuration key %q: only lists of scalars are supported (line %d)",
					prefix, item.Line)
			}
			items = append(items, item.Value)
		}
		c.values[prefix] = strings.Join(items, ",")
	case yaml.AliasNode:
		return c.flatten(prefix, n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
		c.values[prefix] = n.Value
	}
	return nil
}

// InitDefaults sets the defaults: tracing with the Go logger on level
// Error, and HTML output.
func (c *Conf) InitDefaults() {
	c.values[KeyTracingAdapter] = "go"
	c.values[KeyTraceLevels+".root"] = "Error"
	c.values[KeyFormat] = "html"
}

// Set overrides the value for key and returns the previous value.
func (c *Conf) Set(key string, value string) (oldval string) {
	oldval = c.values[key]
	c.values[key] = value
	return
}

// IsSet is part of interface schuko.Configuration.
func (c *Conf) IsSet(key string) bool {
	_, found := c.values[key]
	return found
}

// GetString is part of interface schuko.Configuration.
func (c *Conf) GetString(key string) string {
	return c.values[key]
}

// GetInt is part of interface schuko.Configuration. Missing or non-numeric
// values yield 0.
func (c *Conf) GetInt(key string) int {
	n, _ := strconv.Atoi(c.values[key])
	return n
}

// GetBool is part of interface schuko.Configuration.
func (c *Conf) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.values[key])
	return b
}

// GetStringList splits a comma-separated value. Missing values yield nil.
func (c *Conf) GetStringList(key string) []string {
	v := strings.TrimSpace(c.values[key])
	if v == "" {
		return nil
	}
	var list []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// Keys returns all keys set, sorted.
func (c *Conf) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsInteractive is part of interface schuko.Configuration and always false.
func (c *Conf) IsInteractive() bool { return false }
