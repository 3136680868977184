// Command fetch-discussion runs one discussion fetch outside the service.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(defaultCoreBuilder)
	if err := root.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(2)
	}
}
