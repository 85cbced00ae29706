package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Filled in by main from its linker flags.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// Get merges the linker-set values with what the Go toolchain stamped into
// the binary, so `go install` builds report their module version and VCS
// revision too.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}
	return info
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		}
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	return info
}

// Short is "folio <version>".
func (i Info) Short() string { return "folio " + i.Version }

func (i Info) String() string {
	var extra []string
	if i.Commit != "" {
		extra = append(extra, "commit "+shortCommit(i.Commit))
	}
	if i.Date != "" {
		extra = append(extra, "built "+i.Date)
	}
	extra = append(extra, i.GoVersion, i.Platform)
	return fmt.Sprintf("%s (%s)", i.Short(), strings.Join(extra, ", "))
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
