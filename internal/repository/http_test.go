package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"epic-relay-api/internal/model"
	"epic-relay-api/internal/upstream"

	"github.com/stretchr/testify/require"
)

func newClient() *upstream.Client {
	return upstream.NewClient(time.Second)
}

func TestHTTPAccountRepository_CreateExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/account/api/oauth/exchange", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"code":"abc123","expiresInSeconds":300,"creatingClientId":"client-1"}`))
	}))
	defer srv.Close()

	repo := NewHTTPAccountRepository(newClient(), srv.URL+"/", "creds")
	code, err := repo.CreateExchangeCode(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "abc123", code.Code)
	require.Equal(t, 300, code.ExpiresInSeconds)
	require.Equal(t, "client-1", code.CreatingClientID)
}

func TestHTTPAccountRepository_CreateDeviceAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/account/api/public/account/acc-1/deviceAuth", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{}`, string(body))
		w.Write([]byte(`{"deviceId":"dev","accountId":"acc-1","secret":"s3cret"}`))
	}))
	defer srv.Close()

	repo := NewHTTPAccountRepository(newClient(), srv.URL, "creds")
	auth, err := repo.CreateDeviceAuth(context.Background(), "tok", "acc-1")
	require.NoError(t, err)
	require.Equal(t, "dev", auth.DeviceID)
	require.Equal(t, "s3cret", auth.Secret)
}

func TestHTTPAccountRepository_GrantDeviceAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/account/api/oauth/token", r.URL.Path)
		require.Equal(t, "basic creds", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "device_auth", r.PostForm.Get("grant_type"))
		require.Equal(t, "acc-1", r.PostForm.Get("account_id"))
		require.Equal(t, "dev", r.PostForm.Get("device_id"))
		require.Equal(t, "s3cret", r.PostForm.Get("secret"))
		w.Write([]byte(`{"access_token":"eg1~token","expires_in":7200,"account_id":"acc-1"}`))
	}))
	defer srv.Close()

	repo := NewHTTPAccountRepository(newClient(), srv.URL, "creds")
	tok, err := repo.GrantDeviceAuth(context.Background(), model.DeviceCredentials{
		AccountID: "acc-1", DeviceID: "dev", Secret: "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, "eg1~token", tok.AccessToken)
	require.Equal(t, 7200, tok.ExpiresIn)
}

func TestHTTPAccountRepository_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errorCode":"errors.com.epicgames.account.account_not_found"}`))
	}))
	defer srv.Close()

	repo := NewHTTPAccountRepository(newClient(), srv.URL, "creds")
	_, err := repo.LookupDisplayName(context.Background(), "tok", "Ninja")

	var remote *upstream.RemoteError
	require.True(t, errors.As(err, &remote))
	require.Equal(t, http.StatusNotFound, remote.StatusCode)
	require.Equal(t, "account", remote.Service)
}

func TestHTTPAccountRepository_LookupEscapesName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/account/api/public/account/displayName/Some One", r.URL.Path)
		w.Write([]byte(`{"id":"acc-9","displayName":"Some One"}`))
	}))
	defer srv.Close()

	repo := NewHTTPAccountRepository(newClient(), srv.URL, "creds")
	acc, err := repo.LookupDisplayName(context.Background(), "tok", "Some One")
	require.NoError(t, err)
	require.Equal(t, "acc-9", acc.ID)
}

func TestHTTPCatalogRepository_SearchCosmeticByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/cosmetics/br/search", r.URL.Path)
		switch r.URL.Query().Get("name") {
		case "Renegade Raider":
			w.Write([]byte(`{"status":200,"data":{"id":"CID_028_Athena_Commando_F","name":"Renegade Raider"}}`))
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":404,"error":"no matching cosmetic"}`))
		}
	}))
	defer srv.Close()

	repo := NewHTTPCatalogRepository(newClient(), srv.URL)

	c, err := repo.SearchCosmeticByName(context.Background(), "Renegade Raider")
	require.NoError(t, err)
	require.Equal(t, "CID_028_Athena_Commando_F", c.ID)

	c, err = repo.SearchCosmeticByName(context.Background(), "Nobody")
	require.NoError(t, err)
	require.Nil(t, c)

	_, err = repo.SearchCosmeticByName(context.Background(), "broken")
	var remote *upstream.RemoteError
	require.True(t, errors.As(err, &remote))
}

func TestHTTPPartyRepository_GetUserParties(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/party/api/v1/Fortnite/user/acc-1", r.URL.Path)
		w.Write([]byte(`{"current":[{"id":"party-1","revision":9,"members":[{"account_id":"acc-1","revision":4}]}],"pending":[]}`))
	}))
	defer srv.Close()

	repo := NewHTTPPartyRepository(newClient(), srv.URL)
	parties, err := repo.GetUserParties(context.Background(), "tok", "acc-1")
	require.NoError(t, err)
	require.Len(t, parties.Current, 1)
	require.Equal(t, "party-1", parties.Current[0].ID)
	require.Equal(t, int64(4), parties.Current[0].Members[0].Revision)
}

func TestHTTPPartyRepository_PatchMemberMeta(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusNoContent)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/party/api/v1/Fortnite/parties/party-1/members/acc-1/meta", r.URL.Path)

		var patch model.MemberMetaPatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.Equal(t, int64(4), patch.Revision)
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	repo := NewHTTPPartyRepository(newClient(), srv.URL)
	patch := model.MemberMetaPatch{Delete: []string{}, Revision: 4, Update: map[string]string{}}

	require.NoError(t, repo.PatchMemberMeta(context.Background(), "tok", "party-1", "acc-1", patch))

	// 200 is not an acknowledgement; only 204 is.
	status.Store(http.StatusOK)
	err := repo.PatchMemberMeta(context.Background(), "tok", "party-1", "acc-1", patch)
	var remote *upstream.RemoteError
	require.True(t, errors.As(err, &remote))
	require.Equal(t, http.StatusOK, remote.StatusCode)
}
