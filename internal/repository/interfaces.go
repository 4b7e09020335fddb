package repository

import (
	"context"

	"epic-relay-api/internal/model"
)

// AccountRepository defines account service access methods.
type AccountRepository interface {
	// CreateExchangeCode trades an access token for a one-time exchange code.
	CreateExchangeCode(ctx context.Context, token string) (*model.ExchangeCode, error)

	// CreateDeviceAuth registers a new device authorization for accountID.
	CreateDeviceAuth(ctx context.Context, token, accountID string) (*model.DeviceAuth, error)

	// GrantDeviceAuth issues an access token from device credentials.
	GrantDeviceAuth(ctx context.Context, creds model.DeviceCredentials) (*model.AccessToken, error)

	// LookupDisplayName finds a public account by display name.
	LookupDisplayName(ctx context.Context, token, displayName string) (*model.Account, error)
}

// CatalogRepository defines public cosmetics catalog access methods.
type CatalogRepository interface {
	// SearchCosmeticByName returns the exact-name match, or nil when there is none.
	SearchCosmeticByName(ctx context.Context, name string) (*model.Cosmetic, error)
}

// PartyRepository defines party service access methods.
type PartyRepository interface {
	// GetUserParties fetches the parties accountID currently belongs to.
	GetUserParties(ctx context.Context, token, accountID string) (*model.UserParties, error)

	// PatchMemberMeta applies a conditional metadata update to a party member.
	PatchMemberMeta(ctx context.Context, token, partyID, accountID string, patch model.MemberMetaPatch) error
}
