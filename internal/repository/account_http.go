package repository

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"epic-relay-api/internal/model"
	"epic-relay-api/internal/upstream"
)

const accountService = "account"

// HTTPAccountRepository implements AccountRepository against the account service REST API.
type HTTPAccountRepository struct {
	client            *upstream.Client
	baseURL           string
	clientCredentials string
}

// NewHTTPAccountRepository creates a new account repository.
// clientCredentials is the base64 "client_id:secret" used for the device_auth grant.
func NewHTTPAccountRepository(client *upstream.Client, baseURL, clientCredentials string) *HTTPAccountRepository {
	return &HTTPAccountRepository{
		client:            client,
		baseURL:           strings.TrimRight(baseURL, "/"),
		clientCredentials: clientCredentials,
	}
}

// CreateExchangeCode trades an access token for a one-time exchange code.
func (r *HTTPAccountRepository) CreateExchangeCode(ctx context.Context, token string) (*model.ExchangeCode, error) {
	var out model.ExchangeCode
	err := r.call(ctx, upstream.Request{
		Method: http.MethodGet,
		URL:    r.baseURL + "/account/api/oauth/exchange",
		Header: upstream.Bearer(token),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDeviceAuth registers a new device authorization for accountID.
func (r *HTTPAccountRepository) CreateDeviceAuth(ctx context.Context, token, accountID string) (*model.DeviceAuth, error) {
	var out model.DeviceAuth
	err := r.call(ctx, upstream.Request{
		Method: http.MethodPost,
		URL:    r.baseURL + "/account/api/public/account/" + url.PathEscape(accountID) + "/deviceAuth",
		Header: upstream.Bearer(token),
		JSON:   struct{}{},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GrantDeviceAuth issues an access token from device credentials.
func (r *HTTPAccountRepository) GrantDeviceAuth(ctx context.Context, creds model.DeviceCredentials) (*model.AccessToken, error) {
	header := http.Header{}
	header.Set("Authorization", "basic "+r.clientCredentials)

	var out model.AccessToken
	err := r.call(ctx, upstream.Request{
		Method: http.MethodPost,
		URL:    r.baseURL + "/account/api/oauth/token",
		Header: header,
		Form: url.Values{
			"grant_type": {"device_auth"},
			"account_id": {creds.AccountID},
			"device_id":  {creds.DeviceID},
			"secret":     {creds.Secret},
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupDisplayName finds a public account by display name.
func (r *HTTPAccountRepository) LookupDisplayName(ctx context.Context, token, displayName string) (*model.Account, error) {
	var out model.Account
	err := r.call(ctx, upstream.Request{
		Method: http.MethodGet,
		URL:    r.baseURL + "/account/api/public/account/displayName/" + url.PathEscape(displayName),
		Header: upstream.Bearer(token),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// call performs req and decodes a 200 answer into out.
func (r *HTTPAccountRepository) call(ctx context.Context, req upstream.Request, out interface{}) error {
	req.Service = accountService

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return upstream.AsRemoteError(accountService, resp)
	}
	return resp.Decode(out)
}

// Ensure HTTPAccountRepository implements AccountRepository
var _ AccountRepository = (*HTTPAccountRepository)(nil)
