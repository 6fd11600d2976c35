package bac

import (
	"fmt"

	"github.com/drinkwise/bac-cli/internal/alc"
	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	limitBAC  float64
	limitPlan float64
)

var limitCmd = &cobra.Command{
	Use:   "limit",
	Short: "Suggested drink ceiling for your BAC limit and plan",
	Long:  "Back-solves the standard-drink ceiling that keeps your projected BAC under the configured limit for the planned number of hours, and how much of that ceiling today's drinks already use. --limit and --plan are persisted to settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			var patch store.SettingsPatch
			if cmd.Flags().Changed("limit") {
				if limitBAC != 0.03 && limitBAC != 0.05 && limitBAC != 0.08 {
					return fmt.Errorf("invalid --limit %.3f (expected 0.03, 0.05 or 0.08)", limitBAC)
				}
				patch.BACLimitPercent = &limitBAC
			}
			if cmd.Flags().Changed("plan") {
				if limitPlan < 0 {
					return fmt.Errorf("--plan must be >= 0")
				}
				patch.PlanHours = &limitPlan
			}
			settings, err := st.SaveSettings(patch)
			if err != nil {
				return err
			}

			sess, err := st.TodaySession()
			if err != nil {
				return err
			}
			currentCups, _ := sessionTotals(sess)

			res := alc.LimitCupsRange(alc.LimitCupsInput{
				BACLimitPercent:    settings.BACLimitPercent,
				PlanHours:          settings.PlanHours,
				WeightKg:           settings.WeightKg,
				Sex:                settings.Sex,
				StandardDrinkGrams: settings.StandardDrinkGrams,
				CurrentCups:        currentCups,
			})
			if !res.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), profileIncompleteNotice)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Limit %.2f%% over %.1f h (%.0f g standard drink)\n",
				settings.BACLimitPercent, settings.PlanHours, settings.StandardDrinkGrams)
			fmt.Fprintf(cmd.OutOrStdout(), "Suggested ceiling: %.2f ~ %.2f cups\n", res.CupsLimitMin, res.CupsLimitMax)
			fmt.Fprintf(cmd.OutOrStdout(), "Headroom used: %.1f%% ~ %.1f%% (%.2f cups so far)\n",
				res.UsageRatioMin*100, res.UsageRatioMax*100, currentCups)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(limitCmd)

	limitCmd.Flags().Float64Var(&limitBAC, "limit", 0.05, "BAC ceiling percent (0.03, 0.05 or 0.08)")
	limitCmd.Flags().Float64Var(&limitPlan, "plan", 6, "Planned hours of drinking")
}
