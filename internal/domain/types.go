package domain

// CollectionKind names one of the browsable record collections.
type CollectionKind string

const (
	CollectionUsers    CollectionKind = "users"
	CollectionProducts CollectionKind = "products"
)

// PageParams are the remote paging parameters for one fetch.
// Skip sent upstream is always CurrentPage * PageSize.
type PageParams struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// Skip returns the upstream offset for these params.
func (p PageParams) Skip() int {
	return p.CurrentPage * p.PageSize
}
