package bac

import (
	"fmt"
	"strings"

	"github.com/drinkwise/bac-cli/internal/alc"
	"github.com/drinkwise/bac-cli/internal/catalog"
	"github.com/drinkwise/bac-cli/internal/model"
	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	addSkuID  string
	addName   string
	addABV    float64
	addVolume float64
	addQty    int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a drink, from the catalog or a custom pour",
	Long:  "Log a drink into today's session. Use --sku for a catalog beverage, or --name/--abv/--volume for a custom pour. Ethanol grams and standard-drink count are computed at log time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		qty := addQty
		if qty < 1 {
			qty = 1
		}
		return withStore(func(st *store.Store) error {
			settings, err := st.Settings()
			if err != nil {
				return err
			}

			var item model.DrinkItem
			if addSkuID != "" {
				sku, ok := catalog.Find(catalog.Skus(), addSkuID)
				if !ok {
					return fmt.Errorf("unknown sku %q (see `bac skus`)", addSkuID)
				}
				ethanolSingle := alc.EthanolFromDrink(sku.VolumeML, sku.ABV)
				cupsSingle := alc.CupsFromEthanol(ethanolSingle, settings.StandardDrinkGrams)
				item = model.DrinkItem{
					Type:     model.ItemTypeSku,
					SkuID:    sku.ID,
					Name:     sku.Name,
					Category: sku.Category,
					Brand:    sku.Brand,
					VolumeML: sku.VolumeML,
					ABV:      sku.ABV,
					Qty:      qty,
					EthanolG: ethanolSingle * float64(qty),
					Cups:     cupsSingle * float64(qty),
				}
			} else {
				name := strings.TrimSpace(addName)
				if name == "" {
					return fmt.Errorf("either --sku or --name is required")
				}
				if addABV < 0 {
					return fmt.Errorf("--abv must be >= 0")
				}
				if addVolume <= 0 {
					return fmt.Errorf("--volume must be > 0")
				}
				ethanolSingle := alc.EthanolFromDrink(addVolume, addABV)
				cupsSingle := alc.CupsFromEthanol(ethanolSingle, settings.StandardDrinkGrams)
				item = model.DrinkItem{
					Type:     model.ItemTypeCustom,
					Name:     name,
					Category: "custom",
					Brand:    "custom",
					VolumeML: addVolume,
					ABV:      addABV,
					Qty:      qty,
					EthanolG: ethanolSingle * float64(qty),
					Cups:     cupsSingle * float64(qty),
				}
			}

			sess, err := st.AddSessionItem(item)
			if err != nil {
				return err
			}
			cups, _ := sessionTotals(sess)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s x %d (%.2f cups). Today: %.2f cups across %d drinks\n",
				item.Name, qty, item.Cups, cups, len(sess.Items))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addSkuID, "sku", "", "Catalog SKU ID")
	addCmd.Flags().StringVar(&addName, "name", "", "Custom drink name")
	addCmd.Flags().Float64Var(&addABV, "abv", 0, "Custom drink ABV percent")
	addCmd.Flags().Float64Var(&addVolume, "volume", 0, "Custom drink volume in ml")
	addCmd.Flags().IntVar(&addQty, "qty", 1, "Quantity poured")
}
