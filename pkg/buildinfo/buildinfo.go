// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.tddcalc.sh/pkg/buildinfo.Var=value" to "go build" or
// "go get".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"src.tddcalc.sh/pkg/prog"
)

// VersionBase identifies the version of tddcalc. On development commits, it
// identifies the next release.
const VersionBase = "0.3.0"

// VCSOverride may be set during compilation to "time-commit" (e.g.
// "20220401235958-123456789012") to override the version control information
// when it is not available from the Go runtime.
var VCSOverride string

// Reproducible identifies whether the build is reproducible. This can be
// overridden during compilation.
var Reproducible = "false"

// Type contains all the build information fields.
type Type struct {
	Version      string `json:"version"`
	Reproducible bool   `json:"reproducible"`
	GoVersion    string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:      devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	Reproducible: Reproducible == "true",
	GoVersion:    runtime.Version(),
}

func devVersion(next, vcsOverride string, f func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := f()
	if !ok {
		return fallback
	}
	// If the main module's version is known, use it, but without the "v"
	// prefix. This is the case when built with "go install
	// src.tddcalc.sh/cmd/tddcalc@commit".
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	var revision, timeString string
	var modified bool
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timeString = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return fallback
	}
	// Mimic the format of Go's pseudo-versions.
	t, err := time.Parse(time.RFC3339, timeString)
	if err != nil {
		return fallback
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s", next, t.UTC().Format("20060102150405"), revision)
	if modified {
		return v + "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram.
type Program struct {
	version, buildinfo bool
	json               *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
			fmt.Fprintln(fds[1], "Reproducible build:", Value.Reproducible)
		}
	case p.version:
		if *p.json {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNextProgram
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
