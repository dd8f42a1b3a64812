package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Rishikeshk9/astudio/internal/domain"
	"github.com/Rishikeshk9/astudio/internal/domain/models"
	"github.com/Rishikeshk9/astudio/internal/filter"
	"github.com/Rishikeshk9/astudio/internal/pagination"
	"github.com/Rishikeshk9/astudio/internal/store"
	"github.com/Rishikeshk9/astudio/internal/upstream"
	"github.com/Rishikeshk9/astudio/internal/view"
)

// ProductsQuery carries one browse request for the products table.
// UpstreamCategory is forwarded to the remote endpoint on the next fetch;
// the remaining filters are evaluated client-side over the loaded page.
type ProductsQuery struct {
	Page             int
	PageSize         int
	Search           string
	UpstreamCategory string
	Filters          filter.ProductFilters
}

// ProductsService owns the products collection container. Pagination uses
// the locally filtered count with the neighbors strategy, a historical quirk
// of the products table that is kept as a named strategy.
type ProductsService struct {
	store  *store.Container[models.ProductRecord]
	client *upstream.Client
	calc   pagination.Calculator
	log    zerolog.Logger

	mu       sync.Mutex
	category string
	lastTab  string
}

// NewProductsService wires the container's page-parameter subscription to
// the upstream fetch.
func NewProductsService(client *upstream.Client, pageSize int, log zerolog.Logger) *ProductsService {
	s := &ProductsService{
		store:   store.New[models.ProductRecord](pageSize),
		client:  client,
		calc:    pagination.Calculator{Strategy: pagination.Neighbors, Source: pagination.FilteredCount},
		log:     log.With().Str("collection", string(domain.CollectionProducts)).Logger(),
		lastTab: filter.TabAll,
	}
	s.store.OnPageParamsChange(s.refresh)
	return s
}

func (s *ProductsService) refresh(ctx context.Context, p domain.PageParams) {
	s.mu.Lock()
	category := s.category
	s.mu.Unlock()

	s.store.BeginFetch()
	page, err := s.client.FetchProducts(ctx, p.Skip(), p.PageSize, category)
	if err != nil {
		s.store.FailFetch(err)
		s.log.Error().Err(err).Int("skip", p.Skip()).Int("limit", p.PageSize).Msg("products fetch failed")
		return
	}
	s.store.CompleteFetch(page.Products, page.Total)
	s.log.Debug().Int("items", len(page.Products)).Int("total", page.Total).Msg("products page loaded")
}

// Browse applies the query to the container, refetches when the page
// parameters changed, filters the loaded page and returns the view model.
// Switching tabs re-anchors to the first page.
func (s *ProductsService) Browse(ctx context.Context, q ProductsQuery) view.Table {
	tab := q.Filters.Tab
	if tab == "" {
		tab = filter.TabAll
	}

	s.mu.Lock()
	s.category = q.UpstreamCategory
	tabChanged := tab != s.lastTab
	s.lastTab = tab
	s.mu.Unlock()

	page := q.Page
	if tabChanged {
		page = 0
	}
	s.store.SetPageParams(ctx, page, q.PageSize)
	s.store.SetSearchTerm(q.Search)
	s.store.EnsureStarted(ctx)

	snap := s.store.Snapshot()

	visible := q.Filters.Apply(snap.Items)
	visible = filter.Search(visible, snap.SearchTerm)

	rows := make([]view.Row, 0, len(visible))
	for _, p := range visible {
		rows = append(rows, view.ProductRow(p))
	}

	return view.Table{
		Breadcrumbs: view.Breadcrumbs("Products"),
		Columns:     view.ProductColumns(),
		Rows:        rows,
		Total:       snap.Total,
		Loading:     snap.Loading,
		Error:       snap.Error,
		PageSize:    snap.PageSize,
		CurrentPage: snap.CurrentPage,
		SearchTerm:  snap.SearchTerm,
		Pagination:  s.calc.Sequence(snap.Total, len(visible), snap.PageSize, snap.CurrentPage),
	}
}
