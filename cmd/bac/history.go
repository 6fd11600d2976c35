package bac

import (
	"fmt"
	"time"

	"github.com/drinkwise/bac-cli/internal/alc"
	"github.com/drinkwise/bac-cli/internal/model"
	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	historyDays int
	historyDate string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent days with peak BAC estimates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyDays < 1 {
			return fmt.Errorf("--days must be >= 1")
		}
		return withStore(func(st *store.Store) error {
			settings, err := st.Settings()
			if err != nil {
				return err
			}
			sess, err := st.TodaySession()
			if err != nil {
				return err
			}
			history, err := st.History()
			if err != nil {
				return err
			}

			todayCups, todayEthanol := sessionTotals(sess)
			today := model.HistoryEntry{
				Date:          store.LocalDateKey(time.Now()),
				StartTime:     sess.StartTime,
				EndTime:       sess.EndTime,
				Count:         len(sess.Items),
				TotalCups:     todayCups,
				TotalEthanolG: todayEthanol,
				Items:         sess.Items,
			}

			merged := append([]model.HistoryEntry{today}, history...)
			if len(merged) > historyDays {
				merged = merged[:historyDays]
			}

			if historyDate != "" {
				return printDayDetail(cmd, merged, historyDate)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tDRINKS\tCUPS\tPEAK BAC\tOVER")
			for _, day := range merged {
				peak := dayPeakBAC(day, settings)
				peakText := "--"
				overText := ""
				if peak != nil {
					peakText = fmt.Sprintf("%.3f%%~%.3f%%", peak.min, peak.max)
					if peak.max > settings.BACLimitPercent {
						overText = "over"
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.2f\t%s\t%s\n",
					day.Date, day.Count, day.TotalCups, peakText, overText)
			}
			return nil
		})
	},
}

type peakRange struct {
	min float64
	max float64
}

// dayPeakBAC replays a day's drinks in time order, accumulating ethanol
// and taking the highest estimate along the way. Needs a usable weight;
// returns nil otherwise.
func dayPeakBAC(day model.HistoryEntry, settings model.Settings) *peakRange {
	if settings.WeightKg <= 0 {
		return nil
	}
	start, err := time.Parse(time.RFC3339, day.StartTime)
	if err != nil {
		start = time.Now()
	}
	var peak peakRange
	var sumEthanol float64
	for _, it := range sortedByTime(day.Items) {
		sumEthanol += it.EthanolG
		elapsed := 0.0
		if ts, err := time.Parse(time.RFC3339, it.TS); err == nil && ts.After(start) {
			elapsed = ts.Sub(start).Hours()
		}
		res := alc.BACRange(alc.BACRangeInput{
			EthanolG:     sumEthanol,
			WeightKg:     settings.WeightKg,
			Sex:          settings.Sex,
			ElapsedHours: elapsed,
		})
		if res.BACMinPercent > peak.min {
			peak.min = res.BACMinPercent
		}
		if res.BACMaxPercent > peak.max {
			peak.max = res.BACMaxPercent
		}
	}
	return &peak
}

func printDayDetail(cmd *cobra.Command, days []model.HistoryEntry, date string) error {
	for _, day := range days {
		if day.Date != date {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", day.Date)
		fmt.Fprintf(cmd.OutOrStdout(), "Drinks: %d | Cups: %.3f | Ethanol: %.3f g\n", day.Count, day.TotalCups, day.TotalEthanolG)
		for _, it := range sortedByTime(day.Items) {
			name := it.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s x %d (%.2f cups, %.2f g)\n", localClock(it.TS), name, it.Qty, it.Cups, it.EthanolG)
		}
		return nil
	}
	return fmt.Errorf("no day %q in the last %d days", date, historyDays)
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyDays, "days", 7, "Days to show (today included)")
	historyCmd.Flags().StringVar(&historyDate, "date", "", "Show one day's drinks (YYYY-MM-DD)")
}
