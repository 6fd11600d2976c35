package bac

import (
	"fmt"

	"github.com/drinkwise/bac-cli/internal/catalog"
	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	skusCategory string
	skusBrand    string
)

var skusCmd = &cobra.Command{
	Use:   "skus",
	Short: "List catalog beverages, most-used first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			favorites, err := st.FavoriteSkuMap()
			if err != nil {
				return err
			}
			skus := catalog.Ranked(catalog.Skus(), favorites)

			fmt.Fprintln(cmd.OutOrStdout(), "ID\tCATEGORY\tBRAND\tNAME\tABV\tVOL\tUSED")
			for _, sku := range skus {
				if skusCategory != "" && sku.Category != skusCategory {
					continue
				}
				if skusBrand != "" && sku.Brand != skusBrand {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%.1f%%\t%.0fml\t%d\n",
					sku.ID, sku.Category, sku.Brand, sku.Name, sku.ABV, sku.VolumeML, favorites[sku.ID])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(skusCmd)

	skusCmd.Flags().StringVar(&skusCategory, "category", "", "Filter by category")
	skusCmd.Flags().StringVar(&skusBrand, "brand", "", "Filter by brand")
}
