package repository

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"epic-relay-api/internal/model"
	"epic-relay-api/internal/upstream"
)

const catalogService = "catalog"

// HTTPCatalogRepository implements CatalogRepository against the public cosmetics API.
type HTTPCatalogRepository struct {
	client  *upstream.Client
	baseURL string
}

// NewHTTPCatalogRepository creates a new catalog repository.
func NewHTTPCatalogRepository(client *upstream.Client, baseURL string) *HTTPCatalogRepository {
	return &HTTPCatalogRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchCosmeticByName returns the exact-name match, or nil when there is none.
// The catalog answers 404 for unknown names.
func (r *HTTPCatalogRepository) SearchCosmeticByName(ctx context.Context, name string) (*model.Cosmetic, error) {
	query := url.Values{"name": {name}}

	resp, err := r.client.Do(ctx, upstream.Request{
		Service: catalogService,
		Method:  http.MethodGet,
		URL:     r.baseURL + "/v2/cosmetics/br/search?" + query.Encode(),
	})
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, upstream.AsRemoteError(catalogService, resp)
	}

	var out model.CatalogSearchResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Data == nil || out.Data.ID == "" {
		return nil, nil
	}
	return out.Data, nil
}

// Ensure HTTPCatalogRepository implements CatalogRepository
var _ CatalogRepository = (*HTTPCatalogRepository)(nil)
