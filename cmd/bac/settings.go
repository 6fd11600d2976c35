package bac

import (
	"fmt"

	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage your drinking profile",
}

var (
	cfgWeight   float64
	cfgSex      string
	cfgStdDrink float64
	cfgLimit    float64
	cfgPlan     float64
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile values",
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch store.SettingsPatch
		updates := 0
		if cmd.Flags().Changed("weight") {
			if cfgWeight < 0 {
				return fmt.Errorf("--weight must be >= 0")
			}
			patch.WeightKg = &cfgWeight
			updates++
		}
		if cmd.Flags().Changed("sex") {
			sex, err := parseSex(cfgSex)
			if err != nil {
				return err
			}
			patch.Sex = &sex
			updates++
		}
		if cmd.Flags().Changed("std-drink") {
			if cfgStdDrink != 10 && cfgStdDrink != 14 {
				return fmt.Errorf("invalid --std-drink %.0f (expected 10 or 14)", cfgStdDrink)
			}
			patch.StandardDrinkGrams = &cfgStdDrink
			updates++
		}
		if cmd.Flags().Changed("limit") {
			if cfgLimit != 0.03 && cfgLimit != 0.05 && cfgLimit != 0.08 {
				return fmt.Errorf("invalid --limit %.3f (expected 0.03, 0.05 or 0.08)", cfgLimit)
			}
			patch.BACLimitPercent = &cfgLimit
			updates++
		}
		if cmd.Flags().Changed("plan") {
			if cfgPlan < 0 {
				return fmt.Errorf("--plan must be >= 0")
			}
			patch.PlanHours = &cfgPlan
			updates++
		}
		if updates == 0 {
			return fmt.Errorf("set at least one flag")
		}
		return withStore(func(st *store.Store) error {
			if _, err := st.SaveSettings(patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d setting(s)\n", updates)
			return nil
		})
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := st.Settings()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			if settings.WeightKg > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "weight_kg\t%.1f\n", settings.WeightKg)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "weight_kg\t(not set)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sex\t%s\n", settings.Sex)
			fmt.Fprintf(cmd.OutOrStdout(), "standard_drink_grams\t%.0f\n", settings.StandardDrinkGrams)
			fmt.Fprintf(cmd.OutOrStdout(), "bac_limit_percent\t%.2f\n", settings.BACLimitPercent)
			fmt.Fprintf(cmd.OutOrStdout(), "plan_hours\t%.1f\n", settings.PlanHours)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd, settingsGetCmd)

	settingsSetCmd.Flags().Float64Var(&cfgWeight, "weight", 0, "Body weight in kg")
	settingsSetCmd.Flags().StringVar(&cfgSex, "sex", "", "male, female or unknown")
	settingsSetCmd.Flags().Float64Var(&cfgStdDrink, "std-drink", 10, "Grams of ethanol per standard drink (10 or 14)")
	settingsSetCmd.Flags().Float64Var(&cfgLimit, "limit", 0.05, "BAC ceiling percent (0.03, 0.05 or 0.08)")
	settingsSetCmd.Flags().Float64Var(&cfgPlan, "plan", 6, "Planned hours of drinking")
}
