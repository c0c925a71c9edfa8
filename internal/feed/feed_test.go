package feed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/campusnews/internal/content"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Northfield News</title>
    <item>
      <title>Varsity Soccer Wins League</title>
      <description>&lt;p&gt;A late goal sealed the &lt;b&gt;championship&lt;/b&gt; match.&lt;/p&gt;</description>
      <pubDate>Fri, 14 Nov 2025 09:00:00 GMT</pubDate>
      <category>Sports</category>
      <category>Varsity</category>
    </item>
    <item>
      <title>Winter Concert</title>
      <description>The orchestra and choir perform.</description>
      <pubDate>Mon, 01 Dec 2025 18:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Undated notice</title>
      <description>No date here.</description>
    </item>
  </channel>
</rss>`

func fixedImporter() *Importer {
	im := NewImporter()
	im.now = func() time.Time { return time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC) }
	return im
}

func TestImportReader(t *testing.T) {
	items, err := fixedImporter().ImportReader(strings.NewReader(sampleRSS))
	if err != nil {
		t.Fatalf("ImportReader: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	first := items[0]
	if first.ID != 1 || first.Date != "2025-11-14" || first.Category != "Sports" {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.Description != "A late goal sealed the championship match." {
		t.Errorf("description not stripped: %q", first.Description)
	}
	if len(first.Tags) != 2 || first.Tags[1] != "varsity" {
		t.Errorf("unexpected tags: %v", first.Tags)
	}

	// No feed category: falls back to the classifier.
	if items[1].Category != "Arts" {
		t.Errorf("expected classified Arts, got %q", items[1].Category)
	}

	// No date: stamped with the import time.
	if items[2].Date != "2026-01-05" {
		t.Errorf("expected import date, got %q", items[2].Date)
	}
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	if err := os.WriteFile(path, []byte(sampleRSS), 0o644); err != nil {
		t.Fatalf("writing feed: %v", err)
	}
	items, err := fixedImporter().Import(context.Background(), path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 items, got %d", len(items))
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := NewImporter().Import(context.Background(), filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImportGarbage(t *testing.T) {
	if _, err := NewImporter().ImportReader(strings.NewReader("not a feed")); err == nil {
		t.Error("expected error for non-feed input")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	input := "こんにちは世界です"
	got := truncate(input, 5)
	want := "こん..."
	if got != want {
		t.Errorf("truncate(%q, 5) = %q, want %q", input, got, want)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
		{"<a href=\"url\">Link</a> text", "Link text"},
	}
	for _, tt := range tests {
		got := stripHTML(tt.input)
		if got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestImportReaderSkipsUntitledItems(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Northfield News</title>
    <item><title>Open Day</title><description>Tour the campus.</description></item>
    <item><title>   </title><description>Blank title.</description></item>
    <item><description>No title at all.</description></item>
    <item><title>Career Fair</title><description>Meet employers.</description></item>
  </channel>
</rss>`
	items, err := fixedImporter().ImportReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ImportReader: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for i, want := range []string{"Open Day", "Career Fair"} {
		if items[i].Title != want || items[i].ID != i+1 {
			t.Errorf("items[%d] = {ID:%d Title:%q}, want {ID:%d Title:%q}", i, items[i].ID, items[i].Title, i+1, want)
		}
	}
	lib := &content.Library{News: items}
	if err := lib.Validate(); err != nil {
		t.Errorf("imported library invalid: %v", err)
	}
}
