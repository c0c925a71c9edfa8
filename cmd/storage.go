package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matheuskafuri/campusnews/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show preference store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := storePath()
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		count, size, err := db.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Store: %s\n", dbPath)
		fmt.Fprintf(w, "Preferences: %d\n", count)
		fmt.Fprintf(w, "Size: %s\n", formatBytes(size))

		values, err := db.All()
		if err != nil {
			return fmt.Errorf("reading preferences: %w", err)
		}
		for _, k := range slices.Sorted(maps.Keys(values)) {
			fmt.Fprintf(w, "  %-14s %s\n", k, values[k])
		}

		// an unset timestamp reads as an error
		if last, err := db.GetLastOpened(); err == nil {
			fmt.Fprintf(w, "Last opened: %s\n", last.Local().Format("Jan 2, 2006 15:04"))
		} else {
			fmt.Fprintln(w, "Last opened: never")
		}
		return nil
	},
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
