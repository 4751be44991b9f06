// main is the entry point for the repogem CLI.
package main

import (
	"fmt"
	"os"

	"github.com/repogem/repogem/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
