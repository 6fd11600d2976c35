package bac

import (
	"fmt"

	"github.com/drinkwise/bac-cli/internal/store"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start (or resume) tonight's session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			sess, err := st.StartDrinking()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session active since %s\n", localClock(sess.StartTime))
			return nil
		})
	},
}

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End tonight's session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			sess, err := st.EndDrinking()
			if err != nil {
				return err
			}
			cups, _ := sessionTotals(sess)
			fmt.Fprintf(cmd.OutOrStdout(), "Session ended at %s (%.2f cups logged)\n", localClock(sess.EndTime), cups)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(startCmd, endCmd)
}
