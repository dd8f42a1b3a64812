package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rishikeshk9/astudio/internal/domain"
	"github.com/Rishikeshk9/astudio/internal/domain/models"
	"github.com/Rishikeshk9/astudio/internal/filter"
	"github.com/Rishikeshk9/astudio/internal/pagination"
	"github.com/Rishikeshk9/astudio/internal/store"
	"github.com/Rishikeshk9/astudio/internal/upstream"
	"github.com/Rishikeshk9/astudio/internal/utils"
	"github.com/Rishikeshk9/astudio/internal/view"
)

// UsersQuery carries one browse request for the users table.
type UsersQuery struct {
	Page     int
	PageSize int
	Search   string
	Filters  filter.UserFilters
}

// UsersService owns the users collection container and its fetch effect.
// Pagination uses the server-reported total with the windowed strategy.
type UsersService struct {
	store  *store.Container[models.UserRecord]
	client *upstream.Client
	calc   pagination.Calculator
	log    zerolog.Logger
	now    func() time.Time
}

// NewUsersService wires the container's page-parameter subscription to the
// upstream fetch.
func NewUsersService(client *upstream.Client, pageSize int, log zerolog.Logger) *UsersService {
	s := &UsersService{
		store:  store.New[models.UserRecord](pageSize),
		client: client,
		calc:   pagination.Calculator{Strategy: pagination.Windowed, Source: pagination.ServerTotal},
		log:    log.With().Str("collection", string(domain.CollectionUsers)).Logger(),
		now:    utils.NowUTC,
	}
	s.store.OnPageParamsChange(s.refresh)
	return s
}

func (s *UsersService) refresh(ctx context.Context, p domain.PageParams) {
	s.store.BeginFetch()
	page, err := s.client.FetchUsers(ctx, p.Skip(), p.PageSize)
	if err != nil {
		s.store.FailFetch(err)
		s.log.Error().Err(err).Int("skip", p.Skip()).Int("limit", p.PageSize).Msg("users fetch failed")
		return
	}
	s.store.CompleteFetch(page.Users, page.Total)
	s.log.Debug().Int("items", len(page.Users)).Int("total", page.Total).Msg("users page loaded")
}

// Browse applies the query to the container, refetches when the page
// parameters changed, filters the loaded page and returns the view model.
func (s *UsersService) Browse(ctx context.Context, q UsersQuery) view.Table {
	s.store.SetPageParams(ctx, q.Page, q.PageSize)
	s.store.SetSearchTerm(q.Search)
	s.store.EnsureStarted(ctx)

	snap := s.store.Snapshot()

	visible := q.Filters.Apply(snap.Items, s.now())
	visible = filter.Search(visible, snap.SearchTerm)

	rows := make([]view.Row, 0, len(visible))
	for _, u := range visible {
		rows = append(rows, view.UserRow(u))
	}

	return view.Table{
		Breadcrumbs: view.Breadcrumbs("Users"),
		Columns:     view.UserColumns(),
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
