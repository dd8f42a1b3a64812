// Package pagination computes compact page-number sequences for display.
// The users and products tables truncate differently, so both rules are
// kept as named strategies behind a single calculator parameterized by the
// item count source.
package pagination

// Strategy selects the truncation rule.
type Strategy int

const (
	// Windowed always shows page 1 and the last page, plus a short run of
	// pages near the current one, with ellipses where pages are skipped.
	// Used by the users table.
	Windowed Strategy = iota
	// Neighbors shows first, last and current±1, with ellipses for any gap.
	// Used by the products table.
	Neighbors
)

// CountSource selects which item count drives the page count.
type CountSource int

const (
	// ServerTotal derives pages from the remote-reported total.
	ServerTotal CountSource = iota
	// FilteredCount derives pages from the locally filtered subset. Known
	// quirk of the products table, preserved deliberately.
	FilteredCount
)

// Item is one display slot: a 1-based page number or an ellipsis.
type Item struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Sequence is the computed pagination control state. CurrentPage stays
// zero-based for reporting clicks back; Items carry 1-based display numbers.
type Sequence struct {
	Items       []Item `json:"items"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	HasPrev     bool   `json:"hasPrev"`
	HasNext     bool   `json:"hasNext"`
}

// Calculator pairs a truncation strategy with an item count source.
type Calculator struct {
	Strategy Strategy
	Source   CountSource
}

// TotalPages is ceil(itemCount / pageSize).
func TotalPages(itemCount, pageSize int) int {
	if pageSize <= 0 || itemCount <= 0 {
		return 0
	}
	return (itemCount + pageSize - 1) / pageSize
}

// Sequence computes the display sequence for the current page. serverTotal
// and filteredCount are both supplied; the configured source picks one.
//
// An empty collection yields zero total pages, yet the windowed strategy
// still renders page 1 and HasNext stays true: prev/next flip off only at
// the exact first and last page, and page 0 is never the last page of zero.
// Callers present an empty table as a single blank page, so this is
// deliberate.
func (c Calculator) Sequence(serverTotal, filteredCount, pageSize, currentPage int) Sequence {
	count := serverTotal
	if c.Source == FilteredCount {
		count = filteredCount
	}
	totalPages := TotalPages(count, pageSize)

	var items []Item
	switch c.Strategy {
	case Neighbors:
		items = neighborItems(totalPages, currentPage)
	default:
		items = windowedItems(totalPages, currentPage)
	}

	return Sequence{
		Items:       items,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		HasPrev:     currentPage != 0,
		HasNext:     currentPage != totalPages-1,
	}
}

func windowedItems(totalPages, currentPage int) []Item {
	p := currentPage + 1

	items := []Item{{Page: 1}}

	start := p - 1
	if start < 2 {
		start = 2
	}
	end := start + 2
	if end > totalPages-1 {
		end = totalPages - 1
	}

	if start > 2 {
		items = append(items, Item{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		items = append(items, Item{Page: i})
	}
	if end < totalPages-1 {
		items = append(items, Item{Ellipsis: true})
	}
	if totalPages > 1 {
		items = append(items, Item{Page: totalPages})
	}
	return items
}

func neighborItems(totalPages, currentPage int) []Item {
	p := currentPage + 1

	items := []Item{}
	prev := 0
	for i := 1; i <= totalPages; i++ {
		if i != 1 && i != totalPages && (i < p-1 || i > p+1) {
			continue
		}
		if prev != 0 && i-prev > 1 {
			items = append(items, Item{Ellipsis: true})
		}
		items = append(items, Item{Page: i})
		prev = i
	}
	return items
}
