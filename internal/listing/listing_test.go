package listing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	name, email, phone *string
}

func (c contact) SearchFields() (name, email, phone *string) {
	return c.name, c.email, c.phone
}

func ptr(s string) *string { return &s }

func TestFilter(t *testing.T) {
	records := []contact{
		{name: ptr("Alice Smith"), email: ptr("alice@example.com"), phone: ptr("+1 555 0100")},
		{name: ptr("Bob"), email: ptr("BOB@Shop.io")},
		{phone: ptr("555-ABC")},
		{},
	}

	tests := []struct {
		term string
		want int
	}{
		{"", 4},
		{"alice", 1},
		{"SMITH", 1},
		{"shop.IO", 1},
		{"555", 2},
		{"ABC", 1},
		{"abc", 0},
		{"zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Filter(records, tt.term)
			assert.Len(t, got, tt.want)
			for _, record := range got {
				assert.True(t, Matches(record, tt.term))
			}
		})
	}
}

func TestFilterResultsSatisfyPredicate(t *testing.T) {
	names := []string{"Ana", "ANDRE", "bob", "Carla", "dan"}
	var records []contact
	for i, name := range names {
		records = append(records, contact{name: ptr(name), phone: ptr(fmt.Sprintf("0%d-AN", i))})
	}

	for _, term := range []string{"an", "AN", "a", "-A", "0"} {
		for _, record := range Filter(records, term) {
			lowered := strings.ToLower(term)
			ok := strings.Contains(strings.ToLower(*record.name), lowered) || strings.Contains(*record.phone, term)
			assert.True(t, ok, "%q does not match %q", *record.name, term)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	page, total := Paginate(items, 1, 10)
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, page)

	page, _ = Paginate(items, 3, 10)
	assert.Equal(t, []int{21, 22, 23}, page)

	page, _ = Paginate(items, 4, 10)
	assert.Empty(t, page)

	page, total = Paginate([]int{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, total)
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	for count := 0; count < 40; count++ {
		items := make([]int, count)
		for pageSize := 1; pageSize <= 12; pageSize++ {
			totalPages := TotalPages(count, pageSize)
			for requested := -1; requested <= totalPages+2; requested++ {
				page, _ := Paginate(items, ClampPage(requested, totalPages), pageSize)
				assert.LessOrEqual(t, len(page), pageSize)
			}
		}
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 1, ClampPage(4, 0))
}

func TestVisiblePageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{7, 20, []int{5, 6, 7, 8, 9}},
		{1, 3, []int{1, 2, 3}},
		{1, 20, []int{1, 2, 3, 4, 5}},
		{3, 20, []int{1, 2, 3, 4, 5}},
		{4, 20, []int{2, 3, 4, 5, 6}},
		{17, 20, []int{15, 16, 17, 18, 19}},
		{18, 20, []int{16, 17, 18, 19, 20}},
		{20, 20, []int{16, 17, 18, 19, 20}},
		{5, 5, []int{1, 2, 3, 4, 5}},
		{1, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.current, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, VisiblePageWindow(tt.current, tt.total, DefaultWindowSize))
		})
	}
}

func TestVisiblePageWindowOtherSizes(t *testing.T) {
	tests := []struct {
		current, total, size int
		want                 []int
	}{
		{2, 10, 3, []int{1, 2, 3}},
		{3, 10, 3, []int{2, 3, 4}},
		{8, 10, 3, []int{7, 8, 9}},
		{9, 10, 3, []int{8, 9, 10}},
		{2, 10, 4, []int{1, 2, 3, 4}},
		{3, 10, 4, []int{2, 3, 4, 5}},
		{7, 10, 4, []int{6, 7, 8, 9}},
		{8, 10, 4, []int{7, 8, 9, 10}},
		{1, 10, 1, []int{1}},
		{6, 10, 1, []int{6}},
		{4, 10, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d by %d", tt.current, tt.total, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, VisiblePageWindow(tt.current, tt.total, tt.size))
		})
	}
}

func TestNewPage(t *testing.T) {
	items := make([]string, 25)

	page := NewPage(items, 99, 10)
	require.Len(t, page.Items, 5)
	assert.Equal(t, State{
		CurrentPage:  3,
		ItemsPerPage: 10,
		TotalCount:   25,
		TotalPages:   3,
		From:         21,
		To:           25,
		HasPrevious:  true,
		HasNext:      false,
		ShowControls: true,
		Window:       []int{1, 2, 3},
	}, page.State)

	empty := NewPage([]string{}, 4, 10)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.State.CurrentPage)
	assert.Equal(t, 0, empty.State.TotalPages)
	assert.False(t, empty.State.ShowControls)
	assert.Equal(t, 0, empty.State.From)
}
