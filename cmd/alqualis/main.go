package main

import (
	"fmt"
	"os"

	"alqualis/config"
)

func main() {
	cfg := config.Load()
	if err := newRootCommand(cfg).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
