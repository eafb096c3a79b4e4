package events

import (
	"encoding/json"
	"time"

	"chatapp-client/internal/models"
	"chatapp-client/internal/snowflake"
	"chatapp-client/internal/store"
)

type serverMemberPayload struct {
	ServerID int64       `json:"serverId,string"`
	User     models.User `json:"user"`
}

// authenticatedPayload is the session seed. The server always sends user,
// serverMembers and presences; the remaining arrays are optional bulk loads
// included on a fresh session.
type authenticatedPayload struct {
	User           models.SelfUser         `json:"user"`
	Servers        []models.Server         `json:"servers"`
	Channels       []models.Channel        `json:"channels"`
	ServerMembers  []serverMemberPayload   `json:"serverMembers"`
	ServerRoles    []models.ServerRole     `json:"serverRoles"`
	Friends        []models.RawFriend      `json:"friends"`
	Inbox          []models.InboxEntry     `json:"inbox"`
	ServerSettings []models.ServerSettings `json:"serverSettings"`
	Presences      []models.PresenceUpdate `json:"presences"`
}

type authenticateErrorPayload struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (r *registrar) registerConnection(em Emitter) {
	em.On(EventReconnectAttempt, func(json.RawMessage) {
		r.dispatch(store.UpdateAccount{Patch: models.AccountPatch{
			SocketConnected:     ptr(false),
			SocketAuthenticated: ptr(false),
		}})
	})

	em.On(EventAuthenticateError, func(payload json.RawMessage) {
		var body authenticateErrorPayload
		if !r.decode(EventAuthenticateError, payload, &body) {
			return
		}
		r.dispatch(
			store.SetAuthenticationError{Error: &models.AuthError{Message: body.Message, Data: body.Data}},
			store.UpdateAccount{Patch: models.AccountPatch{
				Authenticated:       ptr(false),
				SocketConnected:     ptr(false),
				SocketAuthenticated: ptr(false),
			}},
		)
	})

	em.On(EventUserAuthenticated, func(payload json.RawMessage) {
		var body authenticatedPayload
		if !r.decode(EventUserAuthenticated, payload, &body) {
			return
		}
		r.dispatch(authenticatedActions(body, time.Now().UnixMilli())...)
	})
}

// authenticatedActions builds the multi-store session seed as one batch:
// self user first, then the account, then every bulk table, then member
// users, then presences. The whole list is applied inside a single Dispatch,
// so no consumer can observe the self user without its presences.
func authenticatedActions(body authenticatedPayload, now int64) []store.Action {
	settings := make(map[int64]models.ServerSettings, len(body.ServerSettings))
	for _, entry := range body.ServerSettings {
		settings[entry.ServerID] = entry
	}

	selfUser := body.User
	actions := []store.Action{
		store.AddUser{User: selfUser.User},
		store.SetAccount{Account: models.Account{
			User:                &selfUser,
			ServerSettings:      settings,
			Authenticated:       true,
			SocketConnected:     true,
			SocketAuthenticated: true,
			LastAuthenticatedAt: now,
		}},
	}

	if len(body.Servers) > 0 {
		actions = append(actions, store.AddServers{Servers: body.Servers})
	}
	if len(body.Channels) > 0 {
		actions = append(actions, store.AddChannels{Channels: body.Channels})
	}
	if len(body.ServerRoles) > 0 {
		actions = append(actions, store.AddServerRoles{Roles: body.ServerRoles})
	}

	members := make([]models.User, 0, len(body.ServerMembers))
	for _, member := range body.ServerMembers {
		members = append(members, member.User)
	}
	if len(members) > 0 {
		actions = append(actions, store.AddUsers{Users: members})
	}

	for _, friend := range body.Friends {
		actions = append(actions, friendActions(friend, friend.Status)...)
	}

	for _, entry := range body.Inbox {
		if entry.CreatedAt == 0 {
			entry.CreatedAt = snowflake.ExtractTimestamp(entry.ChannelID)
		}
		actions = append(actions,
			store.AddInboxEntry{Entry: entry},
			store.SetUserInboxChannel{UserID: entry.RecipientID, ChannelID: ptr(entry.ChannelID)},
		)
	}

	for _, presence := range body.Presences {
		actions = append(actions, store.UpdateUserPresence{Update: presence})
	}

	return actions
}
