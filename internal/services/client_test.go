package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chatapp-client/internal/models"
	"chatapp-client/internal/services"
	"chatapp-client/internal/store"
)

func newClient(t *testing.T, handler http.Handler, token string) (*services.Client, *store.Context) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	st := store.NewContext(zap.NewNop().Sugar())
	client := services.NewClient(server.URL, func() string { return token }, st, zap.NewNop().Sugar())
	return client, st
}

func seedSelf(t *testing.T, st *store.Context, id int64) {
	t.Helper()
	require.NoError(t, st.Dispatch(
		store.AddUser{User: models.User{ID: id, Username: "self", Tag: "0001"}},
		store.SetAccount{Account: models.Account{
			User:          &models.SelfUser{User: models.User{ID: id, Username: "self", Tag: "0001"}},
			Authenticated: true,
		}},
	))
}

func TestLoginSendsRequestIDsAndReturnsToken(t *testing.T) {
	var seen *http.Request
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body.Email)

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "session-token"})
	}), "")

	token, err := client.Login(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)

	require.NotNil(t, seen)
	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "/auth/login", seen.URL.Path)
	assert.Equal(t, "application/json", seen.Header.Get("Content-Type"))
	assert.NotEmpty(t, seen.Header.Get("X-Request-ID"))
	assert.NotEmpty(t, seen.Header.Get("X-Device-ID"))
	// login happens before there is a session
	assert.Empty(t, seen.Header.Get("Authorization"))
}

func TestErrorResponseBecomesRequestError(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "wrong password"})
	}), "")

	_, err := client.Login(context.Background(), "alice@example.com", "hunter22")
	require.Error(t, err)

	var requestError *services.RequestError
	require.True(t, errors.As(err, &requestError))
	assert.Equal(t, http.StatusForbidden, requestError.Status)
	assert.Equal(t, "wrong password", requestError.Message)
	assert.Equal(t, "/auth/login", requestError.Path)
}

func TestErrorResponseWithoutBodyFallsBackToStatus(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), "")

	_, err := client.Login(context.Background(), "alice@example.com", "hunter22")
	require.Error(t, err)

	var requestError *services.RequestError
	require.True(t, errors.As(err, &requestError))
	assert.Equal(t, http.StatusInternalServerError, requestError.Status)
	assert.Equal(t, "500 Internal Server Error", requestError.Message)
}

func TestInvalidRequestNeverReachesTheWire(t *testing.T) {
	hits := 0
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}), "")

	_, err := client.Login(context.Background(), "not-an-email", "hunter22")
	require.Error(t, err)
	assert.Zero(t, hits)

	_, err = client.AddFriend(context.Background(), "ab", "0001")
	require.Error(t, err, "username below minimum length")
	assert.Zero(t, hits)
}

func TestAcceptFriendSendsTokenAndUpdatesStore(t *testing.T) {
	var authorization string
	client, st := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		assert.Equal(t, "/friends/2", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}), "session-token")

	seedSelf(t, st, 1)
	require.NoError(t, st.Dispatch(
		store.AddUser{User: models.User{ID: 2, Username: "bob", Tag: "0002"}},
		store.AddFriend{Friend: models.Friend{RecipientID: 2, UserID: 2, Status: models.FriendPending}},
	))

	require.NoError(t, client.AcceptFriend(context.Background(), 2))

	assert.Equal(t, "session-token", authorization)
	friend, ok := st.Friends.Get(2)
	require.True(t, ok)
	assert.Equal(t, models.FriendFriends, friend.Status)
}

func TestOpenInboxAppliesThreeStoreUpsert(t *testing.T) {
	client, st := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/2/open-channel", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"channel": {"id": "100", "type": 0, "recipientId": "2"},
			"recipient": {"id": "2", "username": "bob", "tag": "0002"},
			"lastSeen": 7
		}`))
	}), "session-token")
	seedSelf(t, st, 1)

	channel, err := client.OpenInbox(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(100), channel.ID)

	_, ok := st.Channels.Get(100)
	assert.True(t, ok)
	entry, ok := st.Inbox.Get(100)
	require.True(t, ok)
	assert.Equal(t, int64(2), entry.RecipientID)

	bob, ok := st.Users.Get(2)
	require.True(t, ok)
	require.NotNil(t, bob.InboxChannelID)
	assert.Equal(t, int64(100), *bob.InboxChannelID)
}

// The REST path and the USER_UPDATED event apply the same patch semantics:
// changing the profile must not wipe merged state on the self user's row.
func TestUpdateAccountKeepsMergedUserState(t *testing.T) {
	client, st := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/account", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": "1", "username": "neo", "tag": "0001"}`))
	}), "session-token")
	seedSelf(t, st, 1)

	online := models.StatusOnline
	inboxChannel := int64(100)
	require.NoError(t, st.Dispatch(
		store.UpdateUserPresence{Update: models.PresenceUpdate{UserID: 1, Status: &online}},
		store.SetUserInboxChannel{UserID: 1, ChannelID: &inboxChannel},
	))

	username := "neo"
	require.NoError(t, client.UpdateAccount(context.Background(), &username, nil, nil))

	self, ok := st.Users.Get(1)
	require.True(t, ok)
	assert.Equal(t, "neo", self.Username)
	require.NotNil(t, self.Presence, "profile update must not drop presence")
	assert.Equal(t, models.StatusOnline, self.Presence.Status)
	require.NotNil(t, self.InboxChannelID)
	assert.Equal(t, int64(100), *self.InboxChannelID)

	account := st.Account.Get()
	require.NotNil(t, account.User)
	assert.Equal(t, "neo", account.User.Username)
}

func TestUpdatePresenceMirrorsLocally(t *testing.T) {
	client, st := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), "session-token")
	seedSelf(t, st, 1)

	require.NoError(t, client.UpdatePresence(context.Background(), models.StatusAway, "lunch"))

	self, ok := st.Users.Get(1)
	require.True(t, ok)
	require.NotNil(t, self.Presence)
	assert.Equal(t, models.StatusAway, self.Presence.Status)
	assert.Equal(t, "lunch", self.Presence.Custom)
}

func TestLeaveServerCascadesLocally(t *testing.T) {
	client, st := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}), "session-token")
	seedSelf(t, st, 1)
	require.NoError(t, st.Dispatch(
		store.AddServer{Server: models.Server{ID: 10, Name: "alpha", CreatedAt: 1}},
		store.AddChannel{Channel: models.Channel{ID: 11, Type: models.ChannelServerText, ServerID: 10}},
	))

	require.NoError(t, client.LeaveServer(context.Background(), 10))

	_, ok := st.Servers.Get(10)
	assert.False(t, ok)
	_, ok = st.Channels.Get(11)
	assert.False(t, ok)
}

func signedToken(t *testing.T, claims services.TokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expired := signedToken(t, services.TokenClaims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))},
	})
	valid := signedToken(t, services.TokenClaims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	})
	noExpiry := signedToken(t, services.TokenClaims{UserID: 1})

	assert.True(t, services.TokenExpired(expired, now))
	assert.False(t, services.TokenExpired(valid, now))
	assert.False(t, services.TokenExpired(noExpiry, now))
	assert.False(t, services.TokenExpired("garbage", now))
}

func TestParseTokenReadsClaimsWithoutVerifying(t *testing.T) {
	token := signedToken(t, services.TokenClaims{UserID: 42})

	claims, err := services.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}
