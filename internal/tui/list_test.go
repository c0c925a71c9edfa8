package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/campusnews/internal/content"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), "today"},
		{time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC), "tomorrow"},
		{time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC), "yesterday"},
		{time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), "in 5d"},
		{time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), "10d ago"},
		{time.Time{}, ""},
	}
	for _, tt := range tests {
		got := relativeDay(tt.t, now)
		if got != tt.want {
			t.Errorf("relativeDay(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	if got := displayDate(content.Item{Date: "2025-11-20"}); got != "Nov 20, 2025" {
		t.Errorf("displayDate = %q", got)
	}
	if got := displayDate(content.Item{Date: "soon"}); got != "soon" {
		t.Errorf("displayDate(unparseable) = %q, want raw value", got)
	}
}

func TestExcerptLimitsLines(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := excerpt(long, 20, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if !strings.HasSuffix(lines[1], "...") {
		t.Errorf("last line %q should mark the cut", lines[1])
	}
	for _, l := range lines {
		if len([]rune(l)) > 20 {
			t.Errorf("line %q wider than 20", l)
		}
	}

	if got := excerpt("short text", 20, 3); got != "short text" {
		t.Errorf("excerpt(short) = %q", got)
	}
}

func TestExcerptLinesFollowScale(t *testing.T) {
	prev := 0
	for scale := 1; scale <= 4; scale++ {
		n := excerptLines(scale)
		if n < prev {
			t.Errorf("excerptLines(%d) = %d, fewer than scale %d", scale, n, scale-1)
		}
		prev = n
	}
	if cardHeight(4) <= cardHeight(1) {
		t.Error("larger font should produce taller cards")
	}
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name                           string
		offset, cursor, visible, total int
		want                           int
	}{
		{"cursor visible", 0, 1, 3, 6, 0},
		{"cursor below window", 0, 4, 3, 6, 2},
		{"cursor above window", 3, 1, 3, 6, 1},
		{"window past end", 5, 5, 3, 6, 3},
		{"fewer items than window", 2, 0, 5, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampOffset(tt.offset, tt.cursor, tt.visible, tt.total); got != tt.want {
				t.Errorf("clampOffset = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderListEmptyState(t *testing.T) {
	st := NewStyleRoot().styles()
	out := renderList(st, nil, content.News, 0, 0, 60, 10, 2, time.Now())
	if !strings.Contains(out, "No items match") {
		t.Errorf("empty list should show the empty state, got %q", out)
	}
}
