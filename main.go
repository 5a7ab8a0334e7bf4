package main

import (
	"fmt"
	"os"

	"github.com/duyhunghd6/codegraph/cmd"
)

// Version and GitCommit are set at build time via -ldflags, e.g.:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	GitCommit = "none"
)

func main() {
	cmd.Version = Version
	cmd.GitCommit = GitCommit

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
