package main

import (
	"os"

	"github.com/ruromgar/srt-subtitle-adjuster/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
