package main

import (
	"context"
	"fmt"
	"os"

	"discussion-fetcher/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "discussion-fetcher: %v\n", err)
		os.Exit(1)
	}
}
