// Package main is the entry point for the combat simulator CLI
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "combatsim",
	Short: "Combat and progression engine simulator",
	Long:  `combatsim drives the combat resolution and character progression engines from the command line: run a scripted battle or check the content registry.`,
}

func main() {
	// Missing .env is fine; env vars may come from the environment
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
