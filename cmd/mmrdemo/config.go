package main

import (
	"fmt"

	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"
)

var defaultHomeDir = btcutil.AppDataDir("mmr", false)

type config struct {
	Count      int    `short:"n" long:"count" default:"10" description:"How many elements to add this run"`
	DataDir    string `long:"datadir" description:"Directory for the element journal and logs"`
	NoJournal  bool   `long:"nojournal" description:"Skip the journal and run purely in memory"`
	DebugLevel string `short:"d" long:"debuglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// loadConfig parses the command line into a config.
func loadConfig() (*config, error) {
	cfg := config{
		DataDir: defaultHomeDir,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if cfg.Count < 0 {
		return nil, fmt.Errorf("count can't be negative: %d", cfg.Count)
	}

	return &cfg, nil
}
