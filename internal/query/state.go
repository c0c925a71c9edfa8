package query

import "github.com/matheuskafuri/campusnews/internal/content"

// State holds the active query inputs for one list view. Changing search,
// category or sort always resets the page to 1.
type State struct {
	search   string
	category string
	sort     SortKey
	page     int
	pageSize int
}

func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		category: content.All,
		sort:     SortDate,
		page:     1,
		pageSize: pageSize,
	}
}

func (s *State) Search() string   { return s.search }
func (s *State) Category() string { return s.category }
func (s *State) Sort() SortKey    { return s.sort }
func (s *State) Page() int        { return s.page }
func (s *State) PageSize() int    { return s.pageSize }

func (s *State) SetSearch(v string) {
	s.search = v
	s.page = 1
}

func (s *State) SetCategory(key string) {
	if key == "" {
		key = content.All
	}
	s.category = key
	s.page = 1
}

func (s *State) SetSort(k SortKey) {
	s.sort = k
	s.page = 1
}

// CycleSort advances to the next known sort key.
func (s *State) CycleSort() {
	next := sortCycle[0]
	for i, k := range sortCycle {
		if k == s.sort {
			next = sortCycle[(i+1)%len(sortCycle)]
			break
		}
	}
	s.SetSort(next)
}

// SetPage clamps p into [1, max(totalPages, 1)].
func (s *State) SetPage(p, totalPages int) {
	last := max(totalPages, 1)
	switch {
	case p < 1:
		p = 1
	case p > last:
		p = last
	}
	s.page = p
}

func (s *State) NextPage(totalPages int) { s.SetPage(s.page+1, totalPages) }

func (s *State) PrevPage() {
	if s.page > 1 {
		s.page--
	}
}

// HasNext reports whether a page follows the current one.
func (s *State) HasNext(totalPages int) bool { return s.page < totalPages }

func (s *State) HasPrev() bool { return s.page > 1 }

func (s *State) Params() Params {
	return Params{
		Search:   s.search,
		Category: s.category,
		Sort:     s.sort,
		Page:     s.page,
		PageSize: s.pageSize,
	}
}
