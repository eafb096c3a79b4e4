package events

import (
	"encoding/json"

	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

func (r *registrar) registerFriend(em Emitter) {
	// sent and pending share a handler shape, only the stored status differs
	onRequest := func(event string, status models.FriendStatus) func(json.RawMessage) {
		return func(payload json.RawMessage) {
			var raw models.RawFriend
			if !r.decode(event, payload, &raw) {
				return
			}
			r.dispatch(friendActions(raw, status)...)
		}
	}
	em.On(EventFriendRequestSent, onRequest(EventFriendRequestSent, models.FriendSent))
	em.On(EventFriendRequestPending, onRequest(EventFriendRequestPending, models.FriendPending))

	em.On(EventFriendRequestAccepted, func(payload json.RawMessage) {
		var body struct {
			FriendID int64 `json:"friendId,string"`
		}
		if !r.decode(EventFriendRequestAccepted, payload, &body) {
			return
		}
		r.dispatch(store.UpdateFriend{
			RecipientID: body.FriendID,
			Patch:       models.FriendPatch{Status: ptr(models.FriendFriends)},
		})
	})

	em.On(EventFriendRemoved, func(payload json.RawMessage) {
		var body struct {
			FriendID int64 `json:"friendId,string"`
		}
		if !r.decode(EventFriendRemoved, payload, &body) {
			return
		}
		r.dispatch(store.DeleteFriend{RecipientID: body.FriendID})
	})
}

// friendActions upserts the embedded recipient user together with the
// relationship record. Shared with the friend service calls and the session
// seed.
func friendActions(raw models.RawFriend, status models.FriendStatus) []store.Action {
	return []store.Action{
		store.AddUser{User: raw.Recipient},
		store.AddFriend{Friend: models.Friend{
			RecipientID: raw.Recipient.ID,
			UserID:      raw.UserID,
			Status:      status,
			CreatedAt:   raw.CreatedAt,
		}},
	}
}

// FriendRequestActions is the exported form used by the friend endpoints.
func FriendRequestActions(raw models.RawFriend, status models.FriendStatus) []store.Action {
	return friendActions(raw, status)
}
