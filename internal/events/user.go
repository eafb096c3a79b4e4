package events

import (
	"encoding/json"
	"time"

	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

type userUpdatedPayload struct {
	ID int64 `json:"id,string"`
	models.UserPatch
}

type serverSettingsUpdatePayload struct {
	ServerID int64                      `json:"serverId,string"`
	Updated  models.ServerSettingsPatch `json:"updated"`
}

func (r *registrar) registerUser(em Emitter) {
	em.On(EventUserUpdated, func(payload json.RawMessage) {
		var body userUpdatedPayload
		if !r.decode(EventUserUpdated, payload, &body) {
			return
		}

		actions := []store.Action{store.UpdateUser{ID: body.ID, Patch: body.UserPatch}}
		if selfID, ok := r.store.Account.SelfID(); ok && selfID == body.ID {
			// the self user exists twice, as a users row and on the
			// account; patch both in one batch or they drift apart
			actions = append(actions, store.UpdateAccount{Patch: models.AccountPatch{
				Username: body.Username,
				Tag:      body.Tag,
				HexColor: body.HexColor,
				Avatar:   body.Avatar,
			}})
		}
		r.dispatch(actions...)
	})

	em.On(EventUserPresenceUpdate, func(payload json.RawMessage) {
		var update models.PresenceUpdate
		if !r.decode(EventUserPresenceUpdate, payload, &update) {
			return
		}

		wentOnline := r.selfWentOnline(update)
		r.dispatch(store.UpdateUserPresence{Update: update})
		if wentOnline && r.hooks.SelfWentOnline != nil {
			r.hooks.SelfWentOnline()
		}
	})

	em.On(EventUserServerSettingsUpdate, func(payload json.RawMessage) {
		var body serverSettingsUpdatePayload
		if !r.decode(EventUserServerSettingsUpdate, payload, &body) {
			return
		}
		r.dispatch(store.UpdateServerSettings{ServerID: body.ServerID, Patch: body.Updated})
	})

	em.On(EventUserConnectionAdded, func(payload json.RawMessage) {
		var body struct {
			Connection models.Connection `json:"connection"`
		}
		if !r.decode(EventUserConnectionAdded, payload, &body) {
			return
		}
		r.dispatch(store.AddConnection{Connection: body.Connection})
	})

	em.On(EventUserConnectionRemoved, func(payload json.RawMessage) {
		var body struct {
			ConnectionID int64 `json:"connectionId,string"`
		}
		if !r.decode(EventUserConnectionRemoved, payload, &body) {
			return
		}
		r.dispatch(store.RemoveConnection{ConnectionID: body.ConnectionID})
	})

	em.On(EventUserBlocked, func(payload json.RawMessage) {
		var body struct {
			User models.User `json:"user"`
		}
		if !r.decode(EventUserBlocked, payload, &body) {
			return
		}
		selfID, _ := r.store.Account.SelfID()
		r.dispatch(BlockUserActions(body.User, selfID, time.Now().UnixMilli())...)
	})

	em.On(EventUserUnblocked, func(payload json.RawMessage) {
		var body struct {
			UserID int64 `json:"userId,string"`
		}
		if !r.decode(EventUserUnblocked, payload, &body) {
			return
		}
		r.dispatch(UnblockUserActions(body.UserID)...)
	})
}

// selfWentOnline reports whether this update takes the authenticated user
// from unknown presence to a non-offline status. Checked before the
// dispatch; the hook itself runs after it.
func (r *registrar) selfWentOnline(update models.PresenceUpdate) bool {
	selfID, ok := r.store.Account.SelfID()
	if !ok || update.UserID != selfID {
		return false
	}
	if update.Status == nil || *update.Status == models.StatusOffline {
		return false
	}
	user, ok := r.store.Users.Get(update.UserID)
	return ok && user.Presence == nil
}

// BlockUserActions upserts the blocked user and synthesizes the one blocked
// relationship record. Shared with the block service call.
func BlockUserActions(user models.User, selfID int64, now int64) []store.Action {
	return []store.Action{
		store.AddUser{User: user},
		store.AddFriend{Friend: models.Friend{
			RecipientID: user.ID,
			UserID:      selfID,
			Status:      models.FriendBlocked,
			CreatedAt:   now,
		}},
	}
}

// UnblockUserActions removes the blocked relationship and nothing else.
func UnblockUserActions(userID int64) []store.Action {
	return []store.Action{store.DeleteFriend{RecipientID: userID}}
}
