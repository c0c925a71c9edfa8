// Package query derives the visible page of a collection from search text,
// a category filter and a sort key. Every function here is pure.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/matheuskafuri/campusnews/internal/content"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortDate    SortKey = "date"
	SortTitle   SortKey = "title"
	SortPopular SortKey = "popular"
)

// DefaultPageSize is used whenever a non-positive page size is supplied.
const DefaultPageSize = 6

var sortCycle = []SortKey{SortDate, SortTitle, SortPopular}

// SortKeys returns the known sort keys in cycle order.
func SortKeys() []SortKey {
	return append([]SortKey(nil), sortCycle...)
}

func (k SortKey) Label() string {
	switch k {
	case SortDate:
		return "Newest"
	case SortTitle:
		return "A-Z"
	case SortPopular:
		return "Most viewed"
	default:
		return string(k)
	}
}

type Result struct {
	Items         []content.Item
	Page          int
	TotalPages    int
	TotalMatching int
}

// Params is a snapshot of the query inputs.
type Params struct {
	Search   string
	Category string
	Sort     SortKey
	Page     int
	PageSize int
}

// Run resolves the category key for kind and runs the pipeline. Unknown
// category keys behave like content.All.
func Run(kind content.Kind, items []content.Item, p Params) Result {
	cats, _ := content.Resolve(kind, p.Category)
	return Query(items, p.Search, cats, p.Sort, p.Page, p.PageSize)
}

// Query filters, sorts and paginates items. A nil category set matches every
// category. The input slice is left untouched.
func Query(items []content.Item, search string, categories []string, key SortKey, page, pageSize int) Result {
	filtered := Filter(items, search, categories)
	sorted := Sort(filtered, key)
	pageItems, pages := Paginate(sorted, page, pageSize)
	if page < 1 {
		page = 1
	}
	return Result{
		Items:         pageItems,
		Page:          page,
		TotalPages:    pages,
		TotalMatching: len(sorted),
	}
}

// Filter keeps items matching the search text and belonging to categories.
func Filter(items []content.Item, search string, categories []string) []content.Item {
	needle := strings.ToLower(search)
	out := make([]content.Item, 0, len(items))
	for _, it := range items {
		if needle != "" && !matchesSearch(it, needle) {
			continue
		}
		if categories != nil && !contains(categories, it.Category) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it content.Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Title), needle) ||
		strings.Contains(strings.ToLower(it.Description), needle) ||
		strings.Contains(strings.ToLower(it.Category), needle) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of items. Unknown keys keep input order.
func Sort(items []content.Item, key SortKey) []content.Item {
	out := make([]content.Item, len(items))
	copy(out, items)

	switch key {
	case SortDate:
		// parse each date once; undated items come last
		type dated struct {
			item content.Item
			at   time.Time
		}
		ds := make([]dated, len(out))
		for i, it := range out {
			ds[i] = dated{item: it, at: it.Published()}
		}
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].at.After(ds[j].at)
		})
		for i := range ds {
			out[i] = ds[i].item
		}
	case SortTitle:
		// Collators keep internal buffers; one per call.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Views > out[j].Views
		})
	}
	return out
}

// Paginate returns the 1-based page of items and the total page count.
// Pages past the end are empty.
func Paginate(items []content.Item, page, pageSize int) ([]content.Item, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items) / pageSize
	if len(items)%pageSize != 0 {
		total++
	}
	// checked before multiplying so huge pages cannot overflow
	if page-1 >= total {
		return []content.Item{}, total
	}

	start := (page - 1) * pageSize
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}
	return items[start:end], total
}
