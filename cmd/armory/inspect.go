package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Two-Ocean/armory/internal/catalog"
	"github.com/Two-Ocean/armory/internal/progression"
)

var inspectDataPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the curves and weapons in a content file",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectDataPath, "data", "data/armory.yaml", "path to the content file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := catalog.LoadFile(inspectDataPath)
	if err != nil {
		return err
	}

	curves := progression.NewCurveRegistry()
	cat := catalog.New()
	if err := data.Apply(curves, cat); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "RARITY\tRANK\tREQUIRED XP")
	for _, rarity := range curves.Rarities() {
		curve, err := curves.Lookup(rarity)
		if err != nil {
			return err
		}
		for _, level := range curve {
			fmt.Fprintf(w, "%s\t%d\t%d\n", rarity, level.Rank, level.RequiredXP)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ID\tNAME\tRARITY\tTYPE\tMODEL")
	for _, def := range cat.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", def.ID, def.Name, def.Rarity, def.WeaponType, def.ModelAssetID)
	}

	return w.Flush()
}
