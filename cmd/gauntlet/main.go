package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/benchforge/gauntlet/internal/aggregate"
)

// Exit codes for different failure modes
const (
	ExitSuccess       = 0 // command completed
	ExitError         = 1 // configuration or runtime error
	ExitNotComparable = 2 // a compared configuration is missing from the run
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, aggregate.ErrConfigNotFound) {
			os.Exit(ExitNotComparable)
		}

		os.Exit(ExitError)
	}
}
