// Command solar extracts and resolves design tokens.
package main

import (
	"os"

	"github.com/ivanyeors/solar-design-system/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
