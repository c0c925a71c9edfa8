package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/matheuskafuri/campusnews/internal/content"
	"github.com/matheuskafuri/campusnews/internal/feed"
	"github.com/spf13/cobra"
)

var (
	flagImportKind string
	flagImportOut  string
)

var importCmd = &cobra.Command{
	Use:   "import <url|file>",
	Short: "Convert an RSS or Atom feed into a content file",
	Long: `Read an RSS/Atom feed from a URL or a local file and write it as a
content YAML file that --content can load.

Categories come from the feed when present and are otherwise guessed from
the title and description.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := content.Kind(flagImportKind)
		if kind != content.News && kind != content.Events {
			return fmt.Errorf("--kind must be news or events, got %q", flagImportKind)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		items, err := feed.NewImporter().Import(ctx, args[0])
		if err != nil {
			return err
		}

		lib := &content.Library{}
		if kind == content.Events {
			lib.Events = items
		} else {
			lib.News = items
		}
		if err := lib.Validate(); err != nil {
			return fmt.Errorf("imported content is invalid: %w", err)
		}
		data, err := lib.Marshal()
		if err != nil {
			return fmt.Errorf("encoding content: %w", err)
		}

		if flagImportOut == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(flagImportOut, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagImportOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d %s item(s) to %s\n", len(items), kind, flagImportOut)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&flagImportKind, "kind", string(content.News), "collection to fill: news or events")
	importCmd.Flags().StringVarP(&flagImportOut, "out", "o", "", "output file (default: stdout)")
}
