package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Two-Ocean/armory/internal/catalog"
	"github.com/Two-Ocean/armory/internal/progression"
)

var validateDataPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a content file",
	Long:  `Validate parses a content file and applies it to a throwaway registry and catalog, reporting any curve or weapon definition errors.`,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateDataPath, "data", "data/armory.yaml", "path to the content file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := catalog.LoadFile(validateDataPath)
	if err != nil {
		return err
	}

	curves := progression.NewCurveRegistry()
	cat := catalog.New()
	if err := data.Apply(curves, cat); err != nil {
		return err
	}

	fmt.Printf("%s OK: %d curves, %d weapons\n", validateDataPath, len(curves.Rarities()), cat.Len())
	return nil
}
