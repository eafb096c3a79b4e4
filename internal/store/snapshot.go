package store

import (
	"sort"

	"chatapp-client/internal/models"
)

// Snapshot is a consistent copy of the whole store, taken under one lock.
// Used by the debug endpoint and by tests that need to sample state as a
// whole.
type Snapshot struct {
	Account  models.Account      `json:"account"`
	Users    []models.User       `json:"users"`
	Servers  []models.Server     `json:"servers"`
	Channels []models.Channel    `json:"channels"`
	Friends  []models.Friend     `json:"friends"`
	Inbox    []models.InboxEntry `json:"inbox"`
	Roles    []models.ServerRole `json:"serverRoles"`
}

func (c *Context) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := Snapshot{
		Account:  c.Account.account,
		Servers:  c.Servers.computeOrdered(),
		Users:    make([]models.User, 0, len(c.Users.items)),
		Channels: make([]models.Channel, 0, len(c.Channels.items)),
		Friends:  make([]models.Friend, 0, len(c.Friends.items)),
		Inbox:    make([]models.InboxEntry, 0, len(c.Inbox.items)),
		Roles:    make([]models.ServerRole, 0, len(c.Roles.items)),
	}

	for _, user := range c.Users.items {
		snapshot.Users = append(snapshot.Users, user)
	}
	sort.Slice(snapshot.Users, func(i, j int) bool { return snapshot.Users[i].ID < snapshot.Users[j].ID })

	for _, channel := range c.Channels.items {
		snapshot.Channels = append(snapshot.Channels, channel)
	}
	sort.Slice(snapshot.Channels, func(i, j int) bool { return snapshot.Channels[i].ID < snapshot.Channels[j].ID })

	for _, friend := range c.Friends.items {
		snapshot.Friends = append(snapshot.Friends, friend)
	}
	sort.Slice(snapshot.Friends, func(i, j int) bool {
		return snapshot.Friends[i].RecipientID < snapshot.Friends[j].RecipientID
	})

	for _, entry := range c.Inbox.items {
		snapshot.Inbox = append(snapshot.Inbox, entry)
	}
	sort.Slice(snapshot.Inbox, func(i, j int) bool { return snapshot.Inbox[i].ChannelID < snapshot.Inbox[j].ChannelID })

	for _, role := range c.Roles.items {
		snapshot.Roles = append(snapshot.Roles, role)
	}
	sort.Slice(snapshot.Roles, func(i, j int) bool { return snapshot.Roles[i].ID < snapshot.Roles[j].ID })

	return snapshot
}
