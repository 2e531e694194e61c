// Package shell is the entry point for the terminal interface of tddcalc.
package shell

import (
	"fmt"
	"os"

	"src.tddcalc.sh/pkg/logutil"
	"src.tddcalc.sh/pkg/prog"
	"src.tddcalc.sh/pkg/rc"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct {
	codeInArg string
	history   bool
	line      bool
	rcPath    string
	noRC      bool

	json *bool
	db   *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.codeInArg, "c", "",
		"evaluate the keys given as the argument, print the result and quit")
	fs.BoolVar(&p.history, "history", false, "show stored results and quit")
	fs.BoolVar(&p.line, "line", false,
		"read whole lines with a line editor instead of single keys")
	fs.StringVar(&p.rcPath, "rc", "", "path to rc.yaml")
	fs.BoolVar(&p.noRC, "norc", false, "don't read rc.yaml")
	p.json = fs.JSON()
	p.db = fs.DBPath()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	cfg := p.loadRC(fds[2])
	if p.line {
		cfg.Editor = rc.EditorLine
	}

	if p.history {
		st, err := openStore(p.dbPath(cfg))
		if err != nil {
			return err
		}
		defer st.Close()
		return showHistory(fds[1], st, *p.json)
	}

	st, cleanup := initStore(fds[2], p.dbPath(cfg))
	defer cleanup()

	if p.codeInArg != "" {
		return prog.Exit(Script(fds, p.codeInArg, cfg, st))
	}
	Interact(fds, &InteractConfig{RC: cfg, Store: st})
	return nil
}

func (p *Program) loadRC(stderr *os.File) rc.Config {
	if p.noRC {
		return rc.Default()
	}
	path := p.rcPath
	if path == "" {
		var err error
		path, err = rc.Path()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return rc.Default()
		}
	}
	cfg, err := rc.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Using the default configuration.")
	}
	return cfg
}

func (p *Program) dbPath(cfg rc.Config) string {
	if *p.db != "" {
		return *p.db
	}
	return cfg.DB
}
