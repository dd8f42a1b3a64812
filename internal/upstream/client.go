// Package upstream fetches collection pages from the remote data service.
package upstream

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Rishikeshk9/astudio/internal/config"
	"github.com/Rishikeshk9/astudio/internal/domain"
	"github.com/Rishikeshk9/astudio/internal/domain/models"
)

// Client wraps the remote listing endpoints. Requests carry no retry policy;
// the configured timeout defaults to zero (none).
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// New builds a client for the configured upstream base URL.
func New(cfg config.UpstreamConfig, log zerolog.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		http.SetTimeout(cfg.Timeout)
	}
	return &Client{http: http, log: log}
}

// FetchUsers loads one page of the users collection.
func (c *Client) FetchUsers(ctx context.Context, skip, limit int) (models.UsersPage, error) {
	var page models.UsersPage
	err := c.get(ctx, "/users", map[string]string{
		"skip":  strconv.Itoa(skip),
		"limit": strconv.Itoa(limit),
	}, &page)
	return page, err
}

// FetchProducts loads one page of the products collection. A non-empty
// category is forwarded to the remote endpoint.
func (c *Client) FetchProducts(ctx context.Context, skip, limit int, category string) (models.ProductsPage, error) {
	params := map[string]string{
		"skip":  strconv.Itoa(skip),
		"limit": strconv.Itoa(limit),
	}
	if category != "" {
		params["category"] = category
	}
	var page models.ProductsPage
	err := c.get(ctx, "/products", params, &page)
	return page, err
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		Get(path)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("upstream request failed")
		return domain.FetchError{Message: err.Error(), Err: err}
	}
	if resp.IsError() {
		msg := fmt.Sprintf("upstream returned %s for %s", resp.Status(), path)
		c.log.Error().Int("status", resp.StatusCode()).Str("path", path).Msg("upstream request rejected")
		return domain.FetchError{Message: msg}
	}
	return nil
}
