package bac

import (
	"fmt"
	"time"

	"github.com/drinkwise/bac-cli/internal/alc"
	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	calcEthanol float64
	calcWeight  float64
	calcSex     string
	calcHours   float64
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "What-if BAC range for arbitrary inputs",
	Long:  "Estimate a BAC range from ethanol grams, weight, sex and elapsed hours. Flags left unset are filled from your settings and today's session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			settings, err := st.Settings()
			if err != nil {
				return err
			}
			sess, err := st.TodaySession()
			if err != nil {
				return err
			}

			in := alc.BACRangeInput{
				EthanolG:     calcEthanol,
				WeightKg:     calcWeight,
				Sex:          calcSex,
				ElapsedHours: calcHours,
			}
			if !cmd.Flags().Changed("ethanol") {
				_, in.EthanolG = sessionTotals(sess)
			}
			if !cmd.Flags().Changed("weight") {
				in.WeightKg = settings.WeightKg
			}
			if cmd.Flags().Changed("sex") {
				sex, err := parseSex(calcSex)
				if err != nil {
					return err
				}
				in.Sex = sex
			} else {
				in.Sex = settings.Sex
			}
			if !cmd.Flags().Changed("hours") {
				in.ElapsedHours = elapsedHours(sess.StartTime, time.Now())
			}

			res := alc.BACRange(in)
			if !res.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), profileIncompleteNotice)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inputs: %.2f g ethanol, %.1f kg, %s, %.2f h elapsed\n",
				in.EthanolG, in.WeightKg, in.Sex, in.ElapsedHours)
			fmt.Fprintf(cmd.OutOrStdout(), "BAC: %.3f%% ~ %.3f%% (r %.2f-%.2f, beta %.3f %%/h)\n",
				res.BACMinPercent, res.BACMaxPercent, res.RLow, res.RHigh, res.BetaUsedPercentPerHour)
			sober := alc.SoberTimeRange(res.BACMinPercent, res.BACMaxPercent)
			fmt.Fprintf(cmd.OutOrStdout(), "Sober in: %.1fh ~ %.1fh\n", sober.MinHours, sober.MaxHours)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().Float64Var(&calcEthanol, "ethanol", 0, "Ethanol grams (default: today's total)")
	calcCmd.Flags().Float64Var(&calcWeight, "weight", 0, "Body weight in kg (default: settings)")
	calcCmd.Flags().StringVar(&calcSex, "sex", "", "male, female or unknown (default: settings)")
	calcCmd.Flags().Float64Var(&calcHours, "hours", 0, "Elapsed hours since drinking began (default: session clock)")
}
