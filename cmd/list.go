package cmd

import (
	"fmt"
	"io"

	"github.com/matheuskafuri/campusnews/internal/config"
	"github.com/matheuskafuri/campusnews/internal/content"
	"github.com/matheuskafuri/campusnews/internal/query"
	"github.com/spf13/cobra"
)

var (
	flagSearch   string
	flagCategory string
	flagSort     string
	flagPage     int
)

var listCmd = &cobra.Command{
	Use:   "list [news|events]",
	Short: "Print one page of news or events",
	Long: `Print one page of the filtered, sorted list without opening the TUI.

Unknown categories and sort keys are ignored rather than rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		lib, err := content.LoadLibrary(contentPath(cfg))
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		kind := content.News
		if len(args) == 1 {
			kind = content.ParseKind(args[0])
		}

		params := query.Params{
			Search:   flagSearch,
			Category: flagCategory,
			Sort:     query.SortKey(flagSort),
			Page:     flagPage,
			PageSize: cfg.PageSize(),
		}
		res := query.Run(kind, lib.Items(kind), params)
		printList(cmd.OutOrStdout(), kind, res, content.FilterLabel(kind, flagCategory), params.Sort)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagSearch, "search", "", "case-insensitive text to match")
	listCmd.Flags().StringVar(&flagCategory, "category", content.All, "filter key (e.g. sports, arts, community)")
	listCmd.Flags().StringVar(&flagSort, "sort", string(query.SortDate), "sort order: date, title or popular")
	listCmd.Flags().IntVar(&flagPage, "page", 1, "page number, starting at 1")
}

func printList(w io.Writer, kind content.Kind, res query.Result, filterLabel string, sort query.SortKey) {
	title := "News"
	if kind == content.Events {
		title = "Events"
	}
	fmt.Fprintf(w, "%s · %s · %s\n\n", title, filterLabel, sort.Label())

	if len(res.Items) == 0 {
		fmt.Fprintln(w, "No items match.")
	}
	for _, it := range res.Items {
		mark := " "
		if it.Featured {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-12s %-11s %s", mark, it.Date, it.Category, it.Title)
		if it.Views > 0 {
			fmt.Fprintf(w, " (%d views)", it.Views)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nPage %d of %d · %d matching\n", res.Page, max(res.TotalPages, 1), res.TotalMatching)
}
