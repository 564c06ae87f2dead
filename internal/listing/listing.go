// Package listing implements client-side search and pagination over a record snapshot.
package listing

import "strings"

// DefaultWindowSize is the number of page buttons shown at once.
const DefaultWindowSize = 5

// Searchable exposes the fields a search term is matched against. Nil fields never match.
type Searchable interface {
	SearchFields() (name, email, phone *string)
}

// Matches reports whether term is a substring of the lower-cased name or email, or of
// the phone as-is. An empty term matches every record.
func Matches(record Searchable, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	name, email, phone := record.SearchFields()

	if name != nil && strings.Contains(strings.ToLower(*name), needle) {
		return true
	}
	if email != nil && strings.Contains(strings.ToLower(*email), needle) {
		return true
	}
	return phone != nil && strings.Contains(*phone, term)
}

func Filter[T Searchable](records []T, term string) []T {
	matches := make([]T, 0, len(records))
	for _, record := range records {
		if Matches(record, term) {
			matches = append(matches, record)
		}
	}
	return matches
}

// TotalPages is ceil(count / pageSize), zero for an empty list.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage moves page into [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the items in [(page-1)*pageSize, page*pageSize). Callers clamp page
// first; bounds are still cut to the list so a stray page yields an empty slice.
func Paginate[T any](matches []T, page, pageSize int) ([]T, int) {
	totalPages := TotalPages(len(matches), pageSize)
	if pageSize <= 0 || page < 1 {
		return []T{}, totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(matches) {
		return []T{}, totalPages
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], totalPages
}

// VisiblePageWindow picks which page numbers to show. The window stays pinned to the
// first or last pages near either end and is centered on currentPage elsewhere.
// With windowSize w it pins to the start while currentPage <= (w-1)/2+1 and to the
// end while currentPage >= totalPages-(w-1-(w-1)/2). For the default of 5 that is
// currentPage <= 3 and currentPage >= totalPages-2. Even sizes put the extra page
// after currentPage.
func VisiblePageWindow(currentPage, totalPages, windowSize int) []int {
	if totalPages <= 0 || windowSize <= 0 {
		return []int{}
	}
	if totalPages <= windowSize {
		return pageRange(1, totalPages)
	}

	before := (windowSize - 1) / 2
	after := windowSize - 1 - before
	switch {
	case currentPage <= before+1:
		return pageRange(1, windowSize)
	case currentPage >= totalPages-after:
		return pageRange(totalPages-windowSize+1, totalPages)
	default:
		return pageRange(currentPage-before, currentPage+after)
	}
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}
