package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/mit-dci/mmr/accumulator"
	"github.com/mit-dci/mmr/journal"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		// go-flags already printed the problem (or the help text)
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = initLogRotator(filepath.Join(cfg.DataDir, "logs", "mmrdemo.log"))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logRotator.Close()

	err = setLogLevels(cfg.DebugLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = run(cfg)
	if err != nil {
		mainLog.Errorf("%v", err)
		logRotator.Close()
		os.Exit(1)
	}
}

func run(cfg *config) error {
	m := accumulator.NewMMR()

	var jr *journal.Journal
	if !cfg.NoJournal {
		var err error
		jr, err = journal.Open(filepath.Join(cfg.DataDir, "journal"))
		if err != nil {
			return err
		}
		defer jr.Close()

		err = jr.Replay(m.Add)
		if err != nil {
			return err
		}
		if n := m.NumLeaves(); n > 0 {
			mainLog.Infof("journal %s: rebuilt %d elements", jr.ID(), n)
		}
	}

	// keep extending the "1", "11", "111" sequence from wherever the
	// journal left off
	for i := 0; i < cfg.Count; i++ {
		elem := []byte(strings.Repeat("1", int(m.NumLeaves())+1))

		err := m.Add(elem)
		if err != nil {
			return err
		}
		if jr != nil {
			err = jr.Add(elem)
			if err != nil {
				return err
			}
		}

		fmt.Printf("Structure: %s\n\n", m.ToString())
	}

	// everything ever added should still prove against the current roots
	total := m.NumLeaves()
	for i := uint64(1); i <= total; i++ {
		elem := []byte(strings.Repeat("1", int(i)))
		w, err := m.Witness(elem)
		if err != nil {
			return err
		}
		if !m.Verify(w) {
			return fmt.Errorf("element %d of %d failed to verify", i, total)
		}
	}

	mainLog.Infof("verified %d elements against %d roots (%d nodes)",
		total, len(m.GetRoots()), m.NumNodes())
	return nil
}
