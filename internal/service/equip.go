package service

import (
	"context"
	"errors"
	"log"

	"epic-relay-api/internal/model"
)

// EquipService changes the caller's equipped skin.
type EquipService struct {
	resolver     *CosmeticResolver
	parties      *PartyService
	strictLookup bool
}

// NewEquipService creates a new equip service. With strictLookup set, names
// the catalog does not know are rejected instead of forwarded verbatim.
func NewEquipService(resolver *CosmeticResolver, parties *PartyService, strictLookup bool) *EquipService {
	return &EquipService{
		resolver:     resolver,
		parties:      parties,
		strictLookup: strictLookup,
	}
}

// EquipSkin resolves skinName, reads the caller's party membership and
// submits the loadout at the revision just read. Nothing is retried.
func (s *EquipService) EquipSkin(ctx context.Context, token, accountID, skinName string) (*model.EquipResult, error) {
	cosmeticID, err := s.resolver.Resolve(ctx, skinName)
	if err != nil {
		if !errors.Is(err, ErrCosmeticNotFound) || s.strictLookup {
			return nil, err
		}
		log.Printf("[EquipService] No catalog match for %q, forwarding it as-is", skinName)
	}

	membership, err := s.parties.ReadMembership(ctx, token, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.parties.ApplyLoadout(ctx, token, membership, cosmeticID); err != nil {
		return nil, err
	}

	return &model.EquipResult{
		CosmeticID: cosmeticID,
		PartyID:    membership.PartyID,
		Revision:   membership.Revision,
	}, nil
}
