package query

import (
	"testing"

	"github.com/matheuskafuri/campusnews/internal/content"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(0)
	if s.Page() != 1 || s.PageSize() != DefaultPageSize {
		t.Errorf("page=%d size=%d, want 1, %d", s.Page(), s.PageSize(), DefaultPageSize)
	}
	if s.Category() != content.All || s.Sort() != SortDate || s.Search() != "" {
		t.Errorf("unexpected defaults: %+v", s.Params())
	}
}

func TestStateResetsPage(t *testing.T) {
	changes := map[string]func(*State){
		"search":     func(s *State) { s.SetSearch("exam") },
		"category":   func(s *State) { s.SetCategory("sports") },
		"sort":       func(s *State) { s.SetSort(SortTitle) },
		"cycle sort": func(s *State) { s.CycleSort() },
	}
	for name, change := range changes {
		s := NewState(6)
		s.SetPage(3, 5)
		if s.Page() != 3 {
			t.Fatalf("%s: setup page = %d", name, s.Page())
		}
		change(&s)
		if s.Page() != 1 {
			t.Errorf("%s: page = %d after change, want 1", name, s.Page())
		}
	}
}

func TestStateCycleSort(t *testing.T) {
	s := NewState(6)
	want := []SortKey{SortTitle, SortPopular, SortDate, SortTitle}
	for i, w := range want {
		s.CycleSort()
		if s.Sort() != w {
			t.Errorf("cycle %d: sort = %q, want %q", i, s.Sort(), w)
		}
	}

	s.SetSort("bogus")
	s.CycleSort()
	if s.Sort() != SortDate {
		t.Errorf("cycling from unknown key = %q, want %q", s.Sort(), SortDate)
	}
}

func TestStatePageBounds(t *testing.T) {
	s := NewState(6)
	s.PrevPage()
	if s.Page() != 1 {
		t.Errorf("PrevPage at 1 moved to %d", s.Page())
	}

	s.NextPage(2)
	s.NextPage(2)
	s.NextPage(2)
	if s.Page() != 2 {
		t.Errorf("NextPage past end = %d, want 2", s.Page())
	}
	if s.HasNext(2) {
		t.Error("HasNext at last page should be false")
	}
	if !s.HasPrev() {
		t.Error("HasPrev at page 2 should be true")
	}

	s.NextPage(0)
	if s.Page() != 1 {
		t.Errorf("NextPage with 0 pages = %d, want 1", s.Page())
	}
}

func TestStateSetCategoryEmpty(t *testing.T) {
	s := NewState(6)
	s.SetCategory("")
	if s.Category() != content.All {
		t.Errorf("category = %q, want %q", s.Category(), content.All)
	}
}
