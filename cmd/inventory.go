package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"garment-stock/core/catalog"
	"garment-stock/core/query"
	"garment-stock/core/reconcile"
	"garment-stock/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags shared by add and remove
	itemFlags reconcile.Item

	// Flags for list
	listType   string
	listFabric string
	listSort   string
)

// addCmd imports stock.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add stock for a garment variant",
	Long: `Adds qty units to the line identified by type, code, color, size and fabric.
The line is created when it does not exist yet.

Examples:
  add --type shirt --code AB1 --color red --size xl --qty 3
  add --type pants --size 32 --qty 10 --fabric denim --notes "rack 4"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		rec, err := rt.engine.MergeAndAdd(cmd.Context(), itemFlags)
		if err != nil {
			return err
		}
		rt.log.Info("Stock added", zap.String("type", rec.Type), zap.String("size", rec.Size), zap.Int("qty", rec.Qty))
		return nil
	},
}

// removeCmd exports stock.
var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove stock for a garment variant",
	Long: `Removes qty units from the matching line. The line is deleted when it reaches zero.
Removing more than is on hand fails without changing anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		rec, err := rt.engine.Subtract(cmd.Context(), itemFlags)
		if err != nil {
			return err
		}
		if rec == nil {
			rt.log.Info("Stock removed, line deleted", zap.Int("removed", itemFlags.Qty))
			return nil
		}
		rt.log.Info("Stock removed", zap.Int("removed", itemFlags.Qty), zap.Int("qty", rec.Qty))
		return nil
	},
}

// listCmd prints the inventory view.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, err := query.ParseCriterion(listSort)
		if err != nil {
			return err
		}
		garmentType := listType
		if canonical, ok := catalog.CanonicalType(listType); ok {
			garmentType = canonical
		}
		opts := query.Options{TypeFilter: garmentType, FabricFilter: listFabric, SortBy: sortBy}

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		records, err := rt.engine.List(cmd.Context())
		if err != nil {
			return err
		}
		records = query.Apply(records, opts)
		if len(records) == 0 {
			fmt.Println(query.EmptyMessage(opts))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tCODE\tCOLOR\tSIZE\tFABRIC\tQTY\tNOTES\tADDED")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				r.Type, r.Code, r.Color, r.Size, r.Fabric, r.Qty, r.Notes, utils.FormatTime(r.AddedAt))
		}
		return w.Flush()
	},
}

func init() {
	for _, c := range []*cobra.Command{addCmd, removeCmd} {
		c.Flags().StringVar(&itemFlags.Type, "type", "", "Garment type (Shirt, Jacket, Coverall, Pants, Lapcod)")
		c.Flags().StringVar(&itemFlags.Code, "code", "", "Internal code")
		c.Flags().StringVar(&itemFlags.Color, "color", "", "Color")
		c.Flags().StringVar(&itemFlags.Size, "size", "", "Size (see the sizes command)")
		c.Flags().StringVar(&itemFlags.Fabric, "fabric", "", "Fabric")
		c.Flags().IntVar(&itemFlags.Qty, "qty", 1, "Quantity")
		_ = c.MarkFlagRequired("type")
		_ = c.MarkFlagRequired("size")
	}
	addCmd.Flags().StringVar(&itemFlags.Notes, "notes", "", "Notes (replace the stored notes when set)")

	listCmd.Flags().StringVar(&listType, "type", "", "Only this garment type")
	listCmd.Flags().StringVar(&listFabric, "fabric", "", "Only this fabric (case-insensitive)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by date, type or size")

	RootCmd.AddCommand(addCmd, removeCmd, listCmd)
}
