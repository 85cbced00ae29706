package main

import (
	"fmt"
	"os"

	"github.com/folio-term/folio/cmd"
	"github.com/folio-term/folio/internal/version"
)

// Release builds set these with -ldflags "-X main.buildVersion=...".
var (
	buildVersion = "dev"
	buildCommit  string
	buildDate    string
)

func main() {
	version.Version, version.Commit, version.Date = buildVersion, buildCommit, buildDate

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
