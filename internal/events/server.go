package events

import (
	"encoding/json"

	"chatapp-client/internal/models"
	"chatapp-client/internal/store"
)

type serverJoinedPayload struct {
	Server   models.Server       `json:"server"`
	Channels []models.Channel    `json:"channels"`
	Roles    []models.ServerRole `json:"roles"`
}

type serverUpdatedPayload struct {
	ID int64 `json:"id,string"`
	models.ServerPatch
}

type serverRoleUpdatedPayload struct {
	ID int64 `json:"id,string"`
	models.ServerRolePatch
}

type serverChannelUpdatedPayload struct {
	ID int64 `json:"id,string"`
	models.ChannelPatch
}

func (r *registrar) registerServer(em Emitter) {
	em.On(EventServerOrderUpdated, func(payload json.RawMessage) {
		var body struct {
			ServerIDs models.IDList `json:"serverIds"`
		}
		if !r.decode(EventServerOrderUpdated, payload, &body) {
			return
		}
		r.dispatch(store.SetServerOrder{ServerIDs: body.ServerIDs})
	})

	em.On(EventServerJoined, func(payload json.RawMessage) {
		var body serverJoinedPayload
		if !r.decode(EventServerJoined, payload, &body) {
			return
		}
		actions := []store.Action{store.AddServer{Server: body.Server}}
		if len(body.Channels) > 0 {
			actions = append(actions, store.AddChannels{Channels: body.Channels})
		}
		if len(body.Roles) > 0 {
			actions = append(actions, store.AddServerRoles{Roles: body.Roles})
		}
		r.dispatch(actions...)
	})

	em.On(EventServerLeft, func(payload json.RawMessage) {
		var body struct {
			ServerID int64 `json:"serverId,string"`
		}
		if !r.decode(EventServerLeft, payload, &body) {
			return
		}
		r.dispatch(store.DeleteServer{ID: body.ServerID})
	})

	em.On(EventServerUpdated, func(payload json.RawMessage) {
		var body serverUpdatedPayload
		if !r.decode(EventServerUpdated, payload, &body) {
			return
		}
		r.dispatch(store.UpdateServer{ID: body.ID, Patch: body.ServerPatch})
	})

	em.On(EventServerRoleCreated, func(payload json.RawMessage) {
		var role models.ServerRole
		if !r.decode(EventServerRoleCreated, payload, &role) {
			return
		}
		r.dispatch(store.AddServerRole{Role: role})
	})

	em.On(EventServerRoleUpdated, func(payload json.RawMessage) {
		var body serverRoleUpdatedPayload
		if !r.decode(EventServerRoleUpdated, payload, &body) {
			return
		}
		r.dispatch(store.UpdateServerRole{ID: body.ID, Patch: body.ServerRolePatch})
	})

	em.On(EventServerRoleDeleted, func(payload json.RawMessage) {
		var body struct {
			RoleID int64 `json:"roleId,string"`
		}
		if !r.decode(EventServerRoleDeleted, payload, &body) {
			return
		}
		r.dispatch(store.DeleteServerRole{ID: body.RoleID})
	})

	em.On(EventServerChannelCreated, func(payload json.RawMessage) {
		var channel models.Channel
		if !r.decode(EventServerChannelCreated, payload, &channel) {
			return
		}
		r.dispatch(store.AddChannel{Channel: channel})
	})

	em.On(EventServerChannelUpdated, func(payload json.RawMessage) {
		var body serverChannelUpdatedPayload
		if !r.decode(EventServerChannelUpdated, payload, &body) {
			return
		}
		r.dispatch(store.UpdateChannel{ID: body.ID, Patch: body.ChannelPatch})
	})

	em.On(EventServerChannelDeleted, func(payload json.RawMessage) {
		var body struct {
			ChannelID int64 `json:"channelId,string"`
		}
		if !r.decode(EventServerChannelDeleted, payload, &body) {
			return
		}
		r.dispatch(store.DeleteChannel{ID: body.ChannelID})
	})
}
