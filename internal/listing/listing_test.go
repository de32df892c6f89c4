package listing_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-secadmin-ws/internal/listing"
)

type record struct {
	Name      string
	Status    string
	CreatedAt time.Time
}

func testConfig() listing.Config[record] {
	return listing.Config[record]{
		SearchFields: []func(record) string{
			func(r record) string { return r.Name },
		},
		FilterFields: map[string]func(record) string{
			"status": func(r record) string { return r.Status },
		},
		Comparators: map[string]func(a, b record) int{
			"name":       listing.ByString(func(r record) string { return r.Name }),
			"created_at": listing.ByTime(func(r record) time.Time { return r.CreatedAt }),
		},
		DefaultSort: "name",
	}
}

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func sample() []record {
	return []record{
		{Name: "Cascade Remedies", Status: "active", CreatedAt: day(3)},
		{Name: "Green Valley", Status: "active", CreatedAt: day(1)},
		{Name: "Summit", Status: "inactive", CreatedAt: day(2)},
		{Name: "Alpine Green", Status: "active", CreatedAt: day(5)},
		{Name: "Harbor Security", Status: "inactive", CreatedAt: day(4)},
	}
}

func TestFilterSearchAndFieldFilters(t *testing.T) {
	t.Parallel()

	cfg := testConfig()

	tests := []struct {
		name      string
		query     listing.Query
		wantNames []string
	}{
		{
			name:      "empty search matches everything",
			query:     listing.Query{},
			wantNames: []string{"Cascade Remedies", "Green Valley", "Summit", "Alpine Green", "Harbor Security"},
		},
		{
			name:      "search is case-insensitive substring",
			query:     listing.Query{Search: "gReEn"},
			wantNames: []string{"Green Valley", "Alpine Green"},
		},
		{
			name:      "field filter is exact",
			query:     listing.Query{Filters: map[string]string{"status": "inactive"}},
			wantNames: []string{"Summit", "Harbor Security"},
		},
		{
			name:      "search AND filter",
			query:     listing.Query{Search: "green", Filters: map[string]string{"status": "active"}},
			wantNames: []string{"Green Valley", "Alpine Green"},
		},
		{
			name:      "unknown filter field excludes everything",
			query:     listing.Query{Filters: map[string]string{"owner": "nobody"}},
			wantNames: []string{},
		},
		{
			name:      "empty filter value is ignored",
			query:     listing.Query{Filters: map[string]string{"status": ""}},
			wantNames: []string{"Cascade Remedies", "Green Valley", "Summit", "Alpine Green", "Harbor Security"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := listing.Filter(sample(), tt.query, cfg)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			require.Equal(t, tt.wantNames, names)
		})
	}
}

func TestSortAscendingReversedEqualsDescending(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	for _, field := range []string{"name", "created_at"} {
		asc := sample()
		listing.Sort(asc, listing.Query{SortField: field, Dir: listing.Ascending}, cfg)

		desc := sample()
		listing.Sort(desc, listing.Query{SortField: field, Dir: listing.Descending}, cfg)

		// No duplicate keys in the sample, so reversing ascending must give
		// exactly the descending order.
		for i := range asc {
			require.Equal(t, asc[len(asc)-1-i], desc[i], "field %s index %d", field, i)
		}
	}
}

func TestSortStabilityWithDuplicateKeys(t *testing.T) {
	t.Parallel()

	items := []record{
		{Name: "B", Status: "first", CreatedAt: day(1)},
		{Name: "A", Status: "second", CreatedAt: day(1)},
		{Name: "B", Status: "third", CreatedAt: day(1)},
		{Name: "A", Status: "fourth", CreatedAt: day(1)},
	}
	cfg := testConfig()
	listing.Sort(items, listing.Query{SortField: "name", Dir: listing.Ascending}, cfg)

	// Equal keys keep their original relative order.
	require.Equal(t, "second", items[0].Status)
	require.Equal(t, "fourth", items[1].Status)
	require.Equal(t, "first", items[2].Status)
	require.Equal(t, "third", items[3].Status)

	// All records sort equal on created_at; order must be untouched.
	byDate := []record{
		{Name: "C", CreatedAt: day(1)},
		{Name: "A", CreatedAt: day(1)},
		{Name: "B", CreatedAt: day(1)},
	}
	listing.Sort(byDate, listing.Query{SortField: "created_at", Dir: listing.Descending}, cfg)
	require.Equal(t, "C", byDate[0].Name)
	require.Equal(t, "A", byDate[1].Name)
	require.Equal(t, "B", byDate[2].Name)
}

func TestUnknownSortFieldFallsBackToDefault(t *testing.T) {
	t.Parallel()

	items := sample()
	listing.Sort(items, listing.Query{SortField: "bogus"}, testConfig())
	require.Equal(t, "Alpine Green", items[0].Name)
}

func TestPaginateBounds(t *testing.T) {
	t.Parallel()

	items := sample() // 5 records

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantLen   int
		wantPages int
		wantPage  int
		wantStart int
		wantEnd   int
	}{
		{"first page", 1, 2, 2, 3, 1, 1, 2},
		{"middle page", 2, 2, 2, 3, 2, 3, 4},
		{"last partial page", 3, 2, 1, 3, 3, 5, 5},
		{"page past the end clamps", 99, 2, 1, 3, 3, 5, 5},
		{"page below one clamps", 0, 2, 2, 3, 1, 1, 2},
		{"page size covering everything", 1, 10, 5, 1, 1, 1, 5},
		{"zero page size uses the default", 1, 0, 5, 1, 1, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := listing.Paginate(items, tt.page, tt.pageSize)
			require.Len(t, page.Items, tt.wantLen)
			require.Equal(t, tt.wantPages, page.TotalPages)
			require.Equal(t, tt.wantPage, page.Page)
			require.Equal(t, tt.wantStart, page.StartIndex)
			require.Equal(t, tt.wantEnd, page.EndIndex)
			require.Equal(t, len(items), page.Total)
		})
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	t.Parallel()

	page := listing.Paginate([]record{}, 1, 10)
	require.Empty(t, page.Items)
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, 0, page.Total)
	// "Showing 0 to 0 of 0"
	require.Equal(t, 0, page.StartIndex)
	require.Equal(t, 0, page.EndIndex)
}

func TestApplyCompositionLosesNothing(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	base := listing.Query{Search: "e", SortField: "created_at", Dir: listing.Descending}

	// The reference sequence: filter then sort, unpaged.
	reference := listing.Filter(sample(), base, cfg)
	listing.Sort(reference, base, cfg)

	for _, pageSize := range []int{1, 2, 3, 10} {
		q := base
		q.PageSize = pageSize

		first := listing.Apply(sample(), q, cfg)
		wantPages := (len(reference) + pageSize - 1) / pageSize
		if wantPages < 1 {
			wantPages = 1
		}
		require.Equal(t, wantPages, first.TotalPages, "pageSize %d", pageSize)

		var concat []record
		for p := 1; p <= first.TotalPages; p++ {
			q.Page = p
			page := listing.Apply(sample(), q, cfg)
			require.LessOrEqual(t, len(page.Items), pageSize)
			concat = append(concat, page.Items...)
		}
		require.Equal(t, reference, concat, "pageSize %d", pageSize)
	}
}

func TestConcurrentSortsStayConsistent(t *testing.T) {
	t.Parallel()

	cmp := listing.ByString(func(r record) string { return r.Name })
	items := sample()
	cfg := testConfig()

	var wg sync.WaitGroup
	var violations atomic.Int64
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, a := range items {
					if cmp(a, a) != 0 {
						violations.Add(1)
					}
					for _, b := range items {
						if cmp(a, b) != -cmp(b, a) {
							violations.Add(1)
						}
					}
				}
				sorted := append([]record(nil), items...)
				listing.Sort(sorted, listing.Query{SortField: "name"}, cfg)
				if sorted[0].Name != "Alpine Green" || sorted[len(sorted)-1].Name != "Summit" {
					violations.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	require.Zero(t, violations.Load(), "comparator gave inconsistent answers under concurrency")
}
