package cmd

import (
	"fmt"
	"strings"

	"garment-stock/core/catalog"

	"github.com/spf13/cobra"
)

// sizesCmd prints the size catalog.
var sizesCmd = &cobra.Command{
	Use:   "sizes [type]",
	Short: "Show the sizes offered per garment type",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		types := catalog.Types()
		if len(args) == 1 {
			garmentType, ok := catalog.CanonicalType(args[0])
			if !ok {
				fmt.Printf("%s: no sizes (unknown type)\n", args[0])
				return
			}
			types = []string{garmentType}
		}

		for _, t := range types {
			fmt.Printf("%s: %s\n", t, strings.Join(catalog.SizesFor(t), " "))
		}
	},
}

func init() {
	RootCmd.AddCommand(sizesCmd)
}
