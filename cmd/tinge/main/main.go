package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tinge/cmd/tinge"
	"github.com/arthur-debert/tinge/pkg/markup"
)

func main() {
	rootCmd := tinge.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, markup.Sprint(":red", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
