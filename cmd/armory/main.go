// Package main is the entry point for the armory CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "armory",
	Short: "Weapon loadout and progression engine",
	Long:  `Armory manages weapon catalogs, rarity level curves, and per-item progression, with Redis-backed loadout persistence.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(demoCmd)
}
