package model

import (
	"encoding/json"
	"fmt"
)

// LoadoutMetaKey is the member-meta key the party service stores the loadout under.
const LoadoutMetaKey = "Default:AthenaCosmeticLoadout_j"

// CosmeticStat is one statistic shown alongside a loadout.
type CosmeticStat struct {
	StatName  string `json:"statName"`
	StatValue int    `json:"statValue"`
}

// CosmeticLoadout is the member's equipped cosmetic set. Field order is part
// of the wire format.
type CosmeticLoadout struct {
	CharacterPrimaryAssetID string         `json:"characterPrimaryAssetId"`
	CharacterEKey           string         `json:"characterEKey"`
	BackpackDef             string         `json:"backpackDef"`
	BackpackEKey            string         `json:"backpackEKey"`
	PickaxeDef              string         `json:"pickaxeDef"`
	PickaxeEKey             string         `json:"pickaxeEKey"`
	ContrailDef             string         `json:"contrailDef"`
	ContrailEKey            string         `json:"contrailEKey"`
	Scratchpad              []interface{}  `json:"scratchpad"`
	CosmeticStats           []CosmeticStat `json:"cosmeticStats"`
}

type loadoutEnvelope struct {
	Loadout CosmeticLoadout `json:"AthenaCosmeticLoadout"`
}

// DefaultCosmeticStats returns the fixed statistics sent with every loadout.
func DefaultCosmeticStats() []CosmeticStat {
	return []CosmeticStat{
		{StatName: "TotalVictoryCrowns", StatValue: 0},
		{StatName: "TotalRoyalRoyales", StatValue: 0},
		{StatName: "HasCrown", StatValue: 0},
		{StatName: "HabaneroProgression", StatValue: 0},
	}
}

// NewCharacterLoadout equips cosmeticID as the character and clears the
// backpack, pickaxe and contrail slots.
func NewCharacterLoadout(cosmeticID string) CosmeticLoadout {
	return CosmeticLoadout{
		CharacterPrimaryAssetID: "AthenaCharacter:" + cosmeticID,
		Scratchpad:              []interface{}{},
		CosmeticStats:           DefaultCosmeticStats(),
	}
}

// EncodeLoadout serializes l as the JSON string stored under LoadoutMetaKey.
func EncodeLoadout(l CosmeticLoadout) (string, error) {
	if l.Scratchpad == nil {
		l.Scratchpad = []interface{}{}
	}
	data, err := json.Marshal(loadoutEnvelope{Loadout: l})
	if err != nil {
		return "", fmt.Errorf("failed to encode loadout: %w", err)
	}
	return string(data), nil
}

// DecodeLoadout parses a value previously produced by EncodeLoadout.
func DecodeLoadout(s string) (CosmeticLoadout, error) {
	var env loadoutEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return CosmeticLoadout{}, fmt.Errorf("failed to decode loadout: %w", err)
	}
	return env.Loadout, nil
}

// NewLoadoutPatch builds the conditional meta update that equips l at revision.
func NewLoadoutPatch(l CosmeticLoadout, revision int64) (MemberMetaPatch, error) {
	encoded, err := EncodeLoadout(l)
	if err != nil {
		return MemberMetaPatch{}, err
	}
	return MemberMetaPatch{
		Delete:   []string{},
		Revision: revision,
		Update:   map[string]string{LoadoutMetaKey: encoded},
	}, nil
}
