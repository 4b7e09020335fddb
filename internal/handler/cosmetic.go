package handler

import (
	"net/http"

	"epic-relay-api/internal/middleware"
	"epic-relay-api/internal/service"
	"epic-relay-api/pkg/apierror"
	"epic-relay-api/pkg/response"
)

// CosmeticHandler handles cosmetic-related HTTP requests.
type CosmeticHandler struct {
	equipService *service.EquipService
}

// NewCosmeticHandler creates a new cosmetic handler.
func NewCosmeticHandler(equipService *service.EquipService) *CosmeticHandler {
	return &CosmeticHandler{
		equipService: equipService,
	}
}

// EquipResponse represents the response for a skin change.
type EquipResponse struct {
	Message    string `json:"message"`
	Detail     string `json:"detail"`
	CosmeticID string `json:"cosmetic_id"`
	PartyID    string `json:"party_id"`
}

// EquipSkin handles GET /equip-skin?skin_name=...
func (h *CosmeticHandler) EquipSkin(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetBearerToken(r.Context())

	accountID, ok := requireHeader(w, r, "account-id", "Account ID not provided in headers.")
	if !ok {
		return
	}
	skinName := r.URL.Query().Get("skin_name")
	if skinName == "" {
		response.Error(w, apierror.MissingParameter("skin_name query parameter is required."))
		return
	}

	res, err := h.equipService.EquipSkin(r.Context(), token, accountID, skinName)
	if err != nil {
		writeServiceError(w, err, "equip skin")
		return
	}

	response.OK(w, EquipResponse{
		Message:    response.Processed,
		Detail:     "Skin changed to " + res.CosmeticID,
		CosmeticID: res.CosmeticID,
		PartyID:    res.PartyID,
	})
}
