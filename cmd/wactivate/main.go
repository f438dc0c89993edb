/*
Command wactivate activates the declarative widgets of an HTML page,
optionally replays a script of user events, and prints the resulting
document.

Usage:

    wactivate [flags] page.html

Every callback of a widget is printed as a line

    callback <family> value=<value> element=<element>

The final document is printed as HTML (default), as a tree sketch or in
GraphViz DOT format.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/widgets/config"
	"github.com/spf13/cobra"
)

// tracer keys of the packages of this module
var tracerKeys = []string{"widgets.tree", "widgets.dom", "widgets.style", "widgets.activate"}

type options struct {
	configPath string
	scriptPath string
	format     string
	trace      string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wactivate: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "wactivate [flags] page.html",
		Short: "Activate the declarative widgets of an HTML page",
		Long: `wactivate parses an HTML page and activates its widgets: selectors,
switches, collapsibles, accordions, floating labels and input counters.

An event script (YAML) may be replayed against the activated page, e.g.

  - click: "#menu-item-2"
  - input: {target: "#name", value: "Alice"}

Callbacks of widgets are printed as they happen, followed by the final
state of the document.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if err := setupTracing(conf, opts.trace); err != nil {
				return err
			}
			defer trace2go.Teardown()
			page, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer page.Close()
			var steps []Step
			if opts.scriptPath != "" {
				if steps, err = LoadScript(opts.scriptPath); err != nil {
					return err
				}
			}
			s, err := newSession(conf, page, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return s.run(steps)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "", "event script to replay (YAML)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: html, tree or dot")
	cmd.Flags().StringVarP(&opts.trace, "trace", "t", "", "trace level for all tracers: Error, Info or Debug")
	return cmd
}

func loadConfig(opts *options) (*config.Conf, error) {
	conf := config.New()
	if opts.configPath != "" {
		var err error
		if conf, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.format != "" {
		conf.Set(config.KeyFormat, opts.format)
	}
	return conf, nil
}

// setupTracing installs trace2go with the Go logger as the tracing
// backend. Tracers without a configured level get the root level.
func setupTracing(conf *config.Conf, level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	root := config.KeyTraceLevels + ".root"
	if level != "" {
		conf.Set(root, level)
	}
	for _, key := range tracerKeys {
		k := config.KeyTraceLevels + "." + key
		if level != "" || !conf.IsSet(k) {
			conf.Set(k, conf.GetString(root))
		}
	}
	if err := trace2go.ConfigureRoot(conf, config.KeyTraceLevels, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
