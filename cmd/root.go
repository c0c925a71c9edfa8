package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagContent string
	flagStore   string
	flagNoStore bool
)

var rootCmd = &cobra.Command{
	Use:   "campusnews",
	Short: "School news and events in the terminal",
	Long:  "campusnews browses a school's news articles and events with search, filters, sorting and accessible display settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp("")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "path to a content YAML file (default: built-in sample)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "path to the preference database")
	rootCmd.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "keep preferences in memory for this session only")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "campusnews %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Open the news list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp("news")
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Open the events list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp("events")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
