package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/treeforth/internal/eval"
)

// Config collects settings from an optional YAML file and command line flags.
type Config struct {
	Prompt         string        `yaml:"prompt"`
	ContinuePrompt string        `yaml:"continue_prompt"`
	History        string        `yaml:"history"`
	Trace          bool          `yaml:"trace"`
	Dump           bool          `yaml:"dump"`
	DepthLimit     int           `yaml:"depth_limit"`
	Timeout        time.Duration `yaml:"timeout"`
	Prelude        []string      `yaml:"prelude"`

	Batch   bool     `yaml:"-"`
	NoTTY   bool     `yaml:"-"`
	Scripts []string `yaml:"-"`
}

const historyFile = ".treeforth_history"

func defaultConfig() Config {
	cfg := Config{
		Prompt:         "> ",
		ContinuePrompt: "... ",
		DepthLimit:     eval.DefaultDepthLimit,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.History = filepath.Join(home, historyFile)
	}
	return cfg
}

// decodeConfig overlays YAML from r onto cfg; unknown fields are an error.
func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// parseConfig builds a Config from defaults, then any -config file, then any
// explicitly set flags.
func parseConfig(name string, args []string) (Config, error) {
	cfg := defaultConfig()

	var (
		configPath string
		flagCfg    Config
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "read settings from a YAML file")
	fs.StringVar(&flagCfg.Prompt, "prompt", cfg.Prompt, "interactive prompt")
	fs.StringVar(&flagCfg.History, "history", cfg.History, "interactive history file; empty to disable")
	fs.BoolVar(&flagCfg.Trace, "trace", false, "enable trace logging")
	fs.BoolVar(&flagCfg.Dump, "dump", false, "print the stack and dictionary when the session ends")
	fs.IntVar(&flagCfg.DepthLimit, "depth-limit", cfg.DepthLimit, "limit nested execution depth; 0 for none")
	fs.DurationVar(&flagCfg.Timeout, "timeout", 0, "specify a time limit")
	fs.BoolVar(&flagCfg.Batch, "batch", false, "run each script argument as its own concurrent session")
	fs.BoolVar(&flagCfg.NoTTY, "no-tty", false, "never use the interactive line editor")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return cfg, err
		}
		err = decodeConfig(f, &cfg)
		f.Close()
		if err != nil {
			return cfg, fmt.Errorf("%v: %w", configPath, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = flagCfg.Prompt
		case "history":
			cfg.History = flagCfg.History
		case "trace":
			cfg.Trace = flagCfg.Trace
		case "dump":
			cfg.Dump = flagCfg.Dump
		case "depth-limit":
			cfg.DepthLimit = flagCfg.DepthLimit
		case "timeout":
			cfg.Timeout = flagCfg.Timeout
		}
	})
	cfg.Batch = flagCfg.Batch
	cfg.NoTTY = flagCfg.NoTTY
	cfg.Scripts = fs.Args()

	if cfg.Batch && len(cfg.Scripts) == 0 {
		return cfg, errors.New("-batch needs at least one script")
	}
	return cfg, nil
}
