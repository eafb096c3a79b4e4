package events

import (
	"encoding/json"

	"chatapp-client/internal/models"
	"chatapp-client/internal/snowflake"
	"chatapp-client/internal/store"
)

type inboxOpenedPayload struct {
	Channel   models.Channel `json:"channel"`
	Recipient models.User    `json:"recipient"`
	LastSeen  *int64         `json:"lastSeen"`
}

func (r *registrar) registerInbox(em Emitter) {
	em.On(EventInboxOpened, func(payload json.RawMessage) {
		var body inboxOpenedPayload
		if !r.decode(EventInboxOpened, payload, &body) {
			return
		}
		r.dispatch(InboxOpenedActions(body.Channel, body.Recipient, body.LastSeen)...)
	})

	em.On(EventInboxClosed, func(payload json.RawMessage) {
		var body struct {
			ChannelID int64 `json:"channelId,string"`
		}
		if !r.decode(EventInboxClosed, payload, &body) {
			return
		}
		r.dispatch(InboxClosedActions(body.ChannelID)...)
	})
}

// InboxOpenedActions is the three-store upsert for an opened DM: recipient
// user, channel, inbox entry, plus the user's inbox pointer. Applied as one
// batch.
func InboxOpenedActions(channel models.Channel, recipient models.User, lastSeen *int64) []store.Action {
	return []store.Action{
		store.AddUser{User: recipient},
		store.AddChannel{Channel: channel},
		store.AddInboxEntry{Entry: models.InboxEntry{
			ChannelID:   channel.ID,
			RecipientID: recipient.ID,
			CreatedAt:   snowflake.ExtractTimestamp(channel.ID),
			LastSeen:    lastSeen,
		}},
		store.SetUserInboxChannel{UserID: recipient.ID, ChannelID: ptr(channel.ID)},
	}
}

// InboxClosedActions is the reverse cascade. The inbox entry goes first, and
// the channel delete clears the recipient's inbox pointer as its store-level
// cascade, so no lookup of the recipient is needed here.
func InboxClosedActions(channelID int64) []store.Action {
	return []store.Action{
		store.DeleteInboxEntry{ChannelID: channelID},
		store.DeleteChannel{ID: channelID},
	}
}
