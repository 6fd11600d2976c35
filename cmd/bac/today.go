package bac

import (
	"fmt"
	"time"

	"github.com/drinkwise/bac-cli/internal/alc"
	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's session, estimated BAC and time to sober",
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
			cups, ethanol := sessionTotals(sess)

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", store.LocalDateKey(time.Now()))
			fmt.Fprintf(cmd.OutOrStdout(), "Drinks: %d | Cups: %.2f | Ethanol: %.2f g\n", len(sess.Items), cups, ethanol)
			if sess.IsActive {
				fmt.Fprintln(cmd.OutOrStdout(), "Session: active")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Session: not started")
			}

			if settings.WeightKg <= 0 {
				fmt.Fprintln(cmd.OutOrStdout(), profileIncompleteNotice)
			} else {
				res := alc.BACRange(alc.BACRangeInput{
					EthanolG:     ethanol,
					WeightKg:     settings.WeightKg,
					Sex:          settings.Sex,
					ElapsedHours: elapsedHours(sess.StartTime, time.Now()),
				})
				sober := alc.SoberTimeRange(res.BACMinPercent, res.BACMaxPercent)
				fmt.Fprintf(cmd.OutOrStdout(), "BAC: %.3f%% ~ %.3f%%\n", res.BACMinPercent, res.BACMaxPercent)
				fmt.Fprintf(cmd.OutOrStdout(), "Sober in: %.1fh ~ %.1fh\n", sober.MinHours, sober.MaxHours)
			}

			if len(sess.Items) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Timeline:")
				for _, it := range sortedByTime(sess.Items) {
					name := it.Name
					if name == "" {
						name = "(unnamed)"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s x %d (%.2f cups)\n", localClock(it.TS), name, it.Qty, it.Cups)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
