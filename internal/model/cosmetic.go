package model

// Cosmetic is a catalog entry from the public cosmetics API.
type Cosmetic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type struct {
		Value string `json:"value"`
	} `json:"type"`
}

// CatalogSearchResponse wraps a cosmetics API search answer.
type CatalogSearchResponse struct {
	Status int       `json:"status"`
	Data   *Cosmetic `json:"data"`
}

// EquipResult describes a successfully applied skin change.
type EquipResult struct {
	CosmeticID string
	PartyID    string
	Revision   int64
}
