package bac

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "bac",
	Short: "bac estimates blood alcohol from your drink log",
	Long:  "bac is a local-first drink tracker: log what you pour, see an estimated BAC range, time back to sober, and a suggested ceiling for the night. Estimates only — never drive on them.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
