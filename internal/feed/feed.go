package feed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/matheuskafuri/campusnews/internal/classify"
	"github.com/matheuskafuri/campusnews/internal/content"
	"github.com/matheuskafuri/campusnews/internal/logging"
	"github.com/mmcdole/gofeed"
)

const maxDescription = 300

// Importer converts an RSS or Atom feed into library items.
type Importer struct {
	parser *gofeed.Parser
	now    func() time.Time
}

func NewImporter() *Importer {
	return &Importer{parser: gofeed.NewParser(), now: time.Now}
}

// Import reads source, which is either an http(s) URL or a local file path.
func (im *Importer) Import(ctx context.Context, source string) ([]content.Item, error) {
	var (
		feed *gofeed.Feed
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		feed, err = im.parser.ParseURLWithContext(source, ctx)
	} else {
		var f *os.File
		f, err = os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", source, err)
		}
		defer f.Close()
		feed, err = im.parser.Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return im.items(feed), nil
}

// ImportReader parses a feed document from r.
func (im *Importer) ImportReader(r io.Reader) ([]content.Item, error) {
	feed, err := im.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return im.items(feed), nil
}

func (im *Importer) items(feed *gofeed.Feed) []content.Item {
	now := im.now()
	items := make([]content.Item, 0, len(feed.Items))
	for i, it := range feed.Items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			logging.Warn("skipping untitled feed item", "index", i, "link", it.Link)
			continue
		}

		pub := now
		if it.PublishedParsed != nil {
			pub = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			pub = *it.UpdatedParsed
		}

		desc := it.Description
		if desc == "" {
			desc = it.Content
		}
		desc = stripHTML(desc)

		category := ""
		if len(it.Categories) > 0 {
			category = strings.TrimSpace(it.Categories[0])
		}
		if category == "" {
			category = string(classify.Classify(title, desc))
		}

		var author string
		if it.Author != nil {
			author = it.Author.Name
		}

		items = append(items, content.Item{
			ID:          len(items) + 1,
			Title:       title,
			Description: truncate(desc, maxDescription),
			Date:        pub.Format(content.DateLayout),
			Category:    category,
			Tags:        tags(it.Categories),
			Body:        desc,
			Author:      author,
		})
	}
	return items
}

func tags(categories []string) []string {
	var out []string
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
