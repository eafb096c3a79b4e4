// Package events translates named transport events into store dispatches.
// Each registrar covers one domain, decodes the JSON payload and issues a
// single batched Dispatch, so a multi-store event can never be observed
// half-applied. Registrars never retry and never validate beyond what the
// store mutations already guarantee: a payload referencing an unknown id
// degrades to a no-op patch, not an error.
package events

import (
	"encoding/json"

	"go.uber.org/zap"

	"chatapp-client/internal/store"
)

// Wire event names.
const (
	EventReconnectAttempt  = "reconnect_attempt"
	EventAuthenticateError = "AUTHENTICATE_ERROR"
	EventUserAuthenticated = "USER_AUTHENTICATED"

	EventUserUpdated              = "USER_UPDATED"
	EventUserPresenceUpdate       = "USER_PRESENCE_UPDATE"
	EventUserServerSettingsUpdate = "USER_SERVER_SETTINGS_UPDATE"
	EventUserConnectionAdded      = "USER_CONNECTION_ADDED"
	EventUserConnectionRemoved    = "USER_CONNECTION_REMOVED"
	EventUserBlocked              = "USER_BLOCKED"
	EventUserUnblocked            = "USER_UNBLOCKED"

	EventFriendRequestSent     = "FRIEND_REQUEST_SENT"
	EventFriendRequestPending  = "FRIEND_REQUEST_PENDING"
	EventFriendRequestAccepted = "FRIEND_REQUEST_ACCEPTED"
	EventFriendRemoved         = "FRIEND_REMOVED"

	EventInboxOpened = "INBOX_OPENED"
	EventInboxClosed = "INBOX_CLOSED"

	EventServerOrderUpdated   = "SERVER_ORDER_UPDATED"
	EventServerJoined         = "SERVER_JOINED"
	EventServerLeft           = "SERVER_LEFT"
	EventServerUpdated        = "SERVER_UPDATED"
	EventServerRoleCreated    = "SERVER_ROLE_CREATED"
	EventServerRoleUpdated    = "SERVER_ROLE_UPDATED"
	EventServerRoleDeleted    = "SERVER_ROLE_DELETED"
	EventServerChannelCreated = "SERVER_CHANNEL_CREATED"
	EventServerChannelUpdated = "SERVER_CHANNEL_UPDATED"
	EventServerChannelDeleted = "SERVER_CHANNEL_DELETED"
)

// Emitter is the slice of the transport the registrars depend on. Handlers
// for one connection are invoked in delivery order.
type Emitter interface {
	On(event string, fn func(payload json.RawMessage))
}

// Hooks are side effects owned by features outside the store. They run after
// the triggering dispatch and are not store mutations themselves.
type Hooks struct {
	// SelfWentOnline fires when the authenticated user's presence goes from
	// unknown to any non-offline status. Consumed by the activity-status
	// feature.
	SelfWentOnline func()
}

type registrar struct {
	store *store.Context
	hooks Hooks
	sugar *zap.SugaredLogger
}

// RegisterAll wires every domain registrar against the emitter.
func RegisterAll(em Emitter, st *store.Context, hooks Hooks, sugar *zap.SugaredLogger) {
	r := &registrar{store: st, hooks: hooks, sugar: sugar}
	r.registerConnection(em)
	r.registerUser(em)
	r.registerFriend(em)
	r.registerInbox(em)
	r.registerServer(em)
}

func (r *registrar) decode(event string, payload json.RawMessage, out any) bool {
	if err := json.Unmarshal(payload, out); err != nil {
		r.sugar.Warnw("dropping malformed event payload", "event", event, "error", err)
		return false
	}
	return true
}

func (r *registrar) dispatch(actions ...store.Action) {
	if err := r.store.Dispatch(actions...); err != nil {
		r.sugar.Errorw("dispatch failed", "error", err)
	}
}

func ptr[T any](value T) *T {
	return &value
}
