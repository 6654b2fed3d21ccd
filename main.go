package main

import (
	"clickchess/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunClickChess(); err != nil {
		fmt.Fprintf(os.Stderr, "clickchess: %v\n", err)
		os.Exit(1)
	}
}
