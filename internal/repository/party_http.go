package repository

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"epic-relay-api/internal/model"
	"epic-relay-api/internal/upstream"
)

const partyService = "party"

// HTTPPartyRepository implements PartyRepository against the party service REST API.
type HTTPPartyRepository struct {
	client  *upstream.Client
	baseURL string
}

// NewHTTPPartyRepository creates a new party repository.
func NewHTTPPartyRepository(client *upstream.Client, baseURL string) *HTTPPartyRepository {
	return &HTTPPartyRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetUserParties fetches the parties accountID currently belongs to.
func (r *HTTPPartyRepository) GetUserParties(ctx context.Context, token, accountID string) (*model.UserParties, error) {
	resp, err := r.client.Do(ctx, upstream.Request{
		Service: partyService,
		Method:  http.MethodGet,
		URL:     r.baseURL + "/party/api/v1/Fortnite/user/" + url.PathEscape(accountID),
		Header:  upstream.Bearer(token),
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, upstream.AsRemoteError(partyService, resp)
	}

	var out model.UserParties
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchMemberMeta applies a conditional metadata update to a party member.
// The party service acknowledges an accepted patch with 204 and nothing else.
func (r *HTTPPartyRepository) PatchMemberMeta(ctx context.Context, token, partyID, accountID string, patch model.MemberMetaPatch) error {
	resp, err := r.client.Do(ctx, upstream.Request{
		Service: partyService,
		Method:  http.MethodPatch,
		URL: r.baseURL + "/party/api/v1/Fortnite/parties/" + url.PathEscape(partyID) +
			"/members/" + url.PathEscape(accountID) + "/meta",
		Header: upstream.Bearer(token),
		JSON:   patch,
	})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return upstream.AsRemoteError(partyService, resp)
	}
	return nil
}

// Ensure HTTPPartyRepository implements PartyRepository
var _ PartyRepository = (*HTTPPartyRepository)(nil)
