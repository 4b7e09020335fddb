package handler

import (
	"errors"
	"fmt"
	"net/http"

	"epic-relay-api/internal/service"
	"epic-relay-api/internal/upstream"
	"epic-relay-api/pkg/apierror"
	"epic-relay-api/pkg/response"
)

// writeServiceError maps a service failure onto the relay's error responses.
// action completes "Failed to ..." for remote rejections.
func writeServiceError(w http.ResponseWriter, err error, action string) {
	response.Error(w, toAPIError(err, action))
}

func toAPIError(err error, action string) *apierror.Error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var remote *upstream.RemoteError
	hasRemote := errors.As(err, &remote)

	switch {
	case errors.Is(err, service.ErrNotOnline):
		e := apierror.Forbidden("User is not online. Join a party in game and try again.")
		if hasRemote {
			e.WithUpstream(remote.StatusCode, remote.Body)
		}
		return e
	case errors.Is(err, service.ErrMemberNotFound):
		return apierror.NotFound("Member not found in party.")
	case errors.Is(err, service.ErrCosmeticNotFound):
		return apierror.NotFound("Skin not found in cosmetics catalog.")
	case hasRemote && remote.Unauthorized():
		return apierror.Unauthorized("").WithUpstream(remote.StatusCode, remote.Body)
	case hasRemote:
		msg := fmt.Sprintf("Failed to %s. Status code: %d", action, remote.StatusCode)
		return apierror.Remote(remote.StatusCode, msg, remote.Body)
	default:
		return apierror.InternalError(fmt.Sprintf("An error occurred: %v", err))
	}
}

// requireHeader returns the named header, or writes a 400 naming it.
func requireHeader(w http.ResponseWriter, r *http.Request, name, message string) (string, bool) {
	v := r.Header.Get(name)
	if v == "" {
		response.Error(w, apierror.MissingParameter(message))
		return "", false
	}
	return v, true
}
