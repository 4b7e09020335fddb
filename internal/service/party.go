package service

import (
	"context"
	"errors"
	"fmt"

	"epic-relay-api/internal/model"
	"epic-relay-api/internal/repository"
	"epic-relay-api/internal/upstream"
)

// PartyService reads and updates the caller's party state.
type PartyService struct {
	parties repository.PartyRepository
}

// NewPartyService creates a new party service.
func NewPartyService(parties repository.PartyRepository) *PartyService {
	return &PartyService{parties: parties}
}

// ReadMembership locates accountID inside its current party.
//
// A rejected credential comes back as the remote 401. Any other remote
// failure, or an empty current party list, is ErrNotOnline.
func (s *PartyService) ReadMembership(ctx context.Context, token, accountID string) (*model.PartyMembership, error) {
	parties, err := s.parties.GetUserParties(ctx, token, accountID)
	if err != nil {
		var remote *upstream.RemoteError
		if errors.As(err, &remote) && !remote.Unauthorized() {
			return nil, fmt.Errorf("%w: %w", ErrNotOnline, err)
		}
		return nil, err
	}
	if len(parties.Current) == 0 {
		return nil, ErrNotOnline
	}

	party := parties.Current[0]
	member := party.Member(accountID)
	if member == nil {
		return nil, ErrMemberNotFound
	}

	return &model.PartyMembership{
		PartyID:   party.ID,
		AccountID: accountID,
		Revision:  member.Revision,
	}, nil
}

// ApplyLoadout equips cosmeticID for the member described by m.
// The update is conditioned on m.Revision; a stale revision is rejected
// remotely and surfaced as *upstream.RemoteError.
func (s *PartyService) ApplyLoadout(ctx context.Context, token string, m *model.PartyMembership, cosmeticID string) error {
	patch, err := model.NewLoadoutPatch(model.NewCharacterLoadout(cosmeticID), m.Revision)
	if err != nil {
		return err
	}
	return s.parties.PatchMemberMeta(ctx, token, m.PartyID, m.AccountID, patch)
}
