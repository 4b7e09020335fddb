package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"epic-relay-api/internal/model"
	"epic-relay-api/internal/repository"
	"epic-relay-api/pkg/response"
)

// ExchangePayload is the simplified exchange-code answer.
type ExchangePayload struct {
	Message      string `json:"message"`
	ExchangeCode string `json:"exchange_code"`
	ExpiresIn    string `json:"expires_in"`
	ClientID     string `json:"client_id"`
	LoginURL     string `json:"login_url"`
}

// DeviceAuthPayload is the simplified device-auth registration answer.
type DeviceAuthPayload struct {
	Message   string `json:"message"`
	DeviceID  string `json:"device_id"`
	AccountID string `json:"account_id"`
	Secret    string `json:"secret"`
	ExpiresIn string `json:"expires_in"`
}

// AccessTokenPayload is the simplified device-auth token answer.
type AccessTokenPayload struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
	ExpiresIn   string `json:"expires_in"`
}

// LookupPayload is the simplified display-name lookup answer.
type LookupPayload struct {
	Message     string `json:"message"`
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
}

// AccountService relays account service calls and reshapes their answers.
type AccountService struct {
	accounts repository.AccountRepository
	loginURL string
}

// NewAccountService creates a new account service. loginURL is the page an
// exchange code is redeemed on.
func NewAccountService(accounts repository.AccountRepository, loginURL string) *AccountService {
	return &AccountService{
		accounts: accounts,
		loginURL: loginURL,
	}
}

// Exchange generates an exchange code for the token's owner.
func (s *AccountService) Exchange(ctx context.Context, token string) (*ExchangePayload, error) {
	info, err := s.accounts.CreateExchangeCode(ctx, token)
	if err != nil {
		return nil, err
	}

	code := orDefault(info.Code, "N/A")
	return &ExchangePayload{
		Message:      response.Processed,
		ExchangeCode: code,
		ExpiresIn:    seconds(info.ExpiresInSeconds, "N/A"),
		ClientID:     orDefault(info.CreatingClientID, "N/A"),
		LoginURL:     s.loginURL + "?exchangeCode=" + url.QueryEscape(code),
	}, nil
}

// CreateDeviceAuth registers a device authorization for accountID.
func (s *AccountService) CreateDeviceAuth(ctx context.Context, token, accountID string) (*DeviceAuthPayload, error) {
	info, err := s.accounts.CreateDeviceAuth(ctx, token, accountID)
	if err != nil {
		return nil, err
	}

	return &DeviceAuthPayload{
		Message:   response.Processed,
		DeviceID:  orDefault(info.DeviceID, "Not Found"),
		AccountID: orDefault(info.AccountID, "Not Found"),
		Secret:    orDefault(info.Secret, "Not Found"),
		ExpiresIn: seconds(info.ExpiresInSeconds, "Not Available"),
	}, nil
}

// DeviceAuthToken trades device credentials for an access token.
func (s *AccountService) DeviceAuthToken(ctx context.Context, creds model.DeviceCredentials) (*AccessTokenPayload, error) {
	tok, err := s.accounts.GrantDeviceAuth(ctx, creds)
	if err != nil {
		return nil, err
	}

	return &AccessTokenPayload{
		Message:     response.Processed,
		AccessToken: tok.AccessToken,
		AccountID:   orDefault(tok.AccountID, creds.AccountID),
		ExpiresIn:   seconds(tok.ExpiresIn, "N/A"),
	}, nil
}

// Lookup finds an account by display name.
func (s *AccountService) Lookup(ctx context.Context, token, displayName string) (*LookupPayload, error) {
	acc, err := s.accounts.LookupDisplayName(ctx, token, displayName)
	if err != nil {
		return nil, err
	}

	return &LookupPayload{
		Message:     response.Processed,
		AccountID:   orDefault(acc.ID, "N/A"),
		DisplayName: orDefault(acc.DisplayName, "N/A"),
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func seconds(n int, def string) string {
	if n == 0 {
		return fmt.Sprintf("%s seconds", def)
	}
	return strconv.Itoa(n) + " seconds"
}
