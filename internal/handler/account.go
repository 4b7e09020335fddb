package handler

import (
	"net/http"

	"epic-relay-api/internal/middleware"
	"epic-relay-api/internal/model"
	"epic-relay-api/internal/service"
	"epic-relay-api/pkg/response"
)

// AccountHandler handles the account relay routes.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Exchange handles GET /exchange-get
func (h *AccountHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetBearerToken(r.Context())

	out, err := h.accountService.Exchange(r.Context(), token)
	if err != nil {
		writeServiceError(w, err, "generate exchange token")
		return
	}

	response.OK(w, out)
}

// CreateDeviceAuth handles GET|POST /device-auth-get
func (h *AccountHandler) CreateDeviceAuth(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetBearerToken(r.Context())

	accountID, ok := requireHeader(w, r, "account-id", "Proper auth not found. Please enter account ID in headers.")
	if !ok {
		return
	}

	out, err := h.accountService.CreateDeviceAuth(r.Context(), token, accountID)
	if err != nil {
		writeServiceError(w, err, "fetch device auth info")
		return
	}

	response.OK(w, out)
}

// DeviceAuthToken handles GET /device-auth-token
func (h *AccountHandler) DeviceAuthToken(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireHeader(w, r, "account-id", "Account ID not provided in headers.")
	if !ok {
		return
	}
	deviceID, ok := requireHeader(w, r, "device-id", "Device ID not provided in headers.")
	if !ok {
		return
	}
	secret, ok := requireHeader(w, r, "secret", "Secret not provided in headers.")
	if !ok {
		return
	}

	out, err := h.accountService.DeviceAuthToken(r.Context(), model.DeviceCredentials{
		AccountID: accountID,
		DeviceID:  deviceID,
		Secret:    secret,
	})
	if err != nil {
		writeServiceError(w, err, "generate access token")
		return
	}

	response.OK(w, out)
}

// Lookup handles GET /user-lookup
func (h *AccountHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetBearerToken(r.Context())

	displayName, ok := requireHeader(w, r, "display-name", "Display name not provided in headers.")
	if !ok {
		return
	}

	out, err := h.accountService.Lookup(r.Context(), token, displayName)
	if err != nil {
		writeServiceError(w, err, "lookup user")
		return
	}

	response.OK(w, out)
}
