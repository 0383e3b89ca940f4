// Package main provides the entry point for the boxbluebook CLI tool.
package main

import (
	"github.com/boxbluebook/boxbluebook/cmd/boxbluebook/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
