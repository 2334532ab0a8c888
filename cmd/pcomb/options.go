package main

import (
	"fmt"

	"github.com/dhamidi/pcomb/combinator"
	"github.com/dhamidi/pcomb/config"
	"github.com/dhamidi/pcomb/ebnfgrammar"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// options holds the persistent flags and the configuration they override.
type options struct {
	configPath string
	grammar    string
	start      string
	format     string
	verbose    int

	cfg config.Config
}

func (o *options) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default ./pcomb.yaml or $"+config.ConfigEnv+")")
	flags.StringVarP(&o.grammar, "grammar", "g", "", "EBNF grammar file")
	flags.StringVarP(&o.start, "start", "s", "", "start production")
	flags.StringVarP(&o.format, "format", "f", "", "output format (text, json, yaml)")
	flags.CountVarP(&o.verbose, "verbose", "v", "increase log verbosity")
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("grammar") {
		cfg.Grammar = o.grammar
	}
	if flags.Changed("start") {
		cfg.Start = o.start
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("verbose") {
		cfg.Verbosity = o.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	commonlog.Configure(cfg.Verbosity, nil)
	return nil
}

func (o *options) loadGrammar() (*ebnfgrammar.Grammar, error) {
	if o.cfg.Grammar == "" {
		return nil, fmt.Errorf("no grammar given: use --grammar or set grammar in pcomb.yaml")
	}
	return ebnfgrammar.Load(o.cfg.Grammar)
}

// matcher loads the grammar and builds the start production.
func (o *options) matcher() (combinator.Matcher, error) {
	g, err := o.loadGrammar()
	if err != nil {
		return nil, err
	}
	if o.cfg.Start == "" {
		return nil, fmt.Errorf("no start production given: use --start or set start in pcomb.yaml")
	}
	m, err := g.Build(o.cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", o.cfg.Start, err)
	}
	return m, nil
}
