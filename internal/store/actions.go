package store

import "chatapp-client/internal/models"

// Action is one mutation against the store context. The set of actions is
// closed: every type below has a matching case in the reducer, and both
// socket event handlers and service calls go through the same set, so the
// two paths cannot diverge in shape.
type Action interface {
	ActionName() string
}

// users

type AddUser struct {
	User models.User
}

type AddUsers struct {
	Users []models.User
}

type UpdateUser struct {
	ID    int64
	Patch models.UserPatch
}

type DeleteUser struct {
	ID int64
}

type UpdateUserPresence struct {
	Update models.PresenceUpdate
}

// SetUserInboxChannel points a user at its open DM channel. A nil ChannelID
// clears the pointer.
type SetUserInboxChannel struct {
	UserID    int64
	ChannelID *int64
}

func (AddUser) ActionName() string             { return "ADD_USER" }
func (AddUsers) ActionName() string            { return "ADD_USERS" }
func (UpdateUser) ActionName() string          { return "UPDATE_USER" }
func (DeleteUser) ActionName() string          { return "DELETE_USER" }
func (UpdateUserPresence) ActionName() string  { return "UPDATE_USER_PRESENCE" }
func (SetUserInboxChannel) ActionName() string { return "SET_USER_INBOX_CHANNEL" }

// servers

type AddServer struct {
	Server models.Server
}

type AddServers struct {
	Servers []models.Server
}

type UpdateServer struct {
	ID    int64
	Patch models.ServerPatch
}

// DeleteServer also removes the server's channels, roles and settings.
type DeleteServer struct {
	ID int64
}

func (AddServer) ActionName() string    { return "ADD_SERVER" }
func (AddServers) ActionName() string   { return "ADD_SERVERS" }
func (UpdateServer) ActionName() string { return "UPDATE_SERVER" }
func (DeleteServer) ActionName() string { return "DELETE_SERVER" }

// channels

type AddChannel struct {
	Channel models.Channel
}

type AddChannels struct {
	Channels []models.Channel
}

type UpdateChannel struct {
	ID    int64
	Patch models.ChannelPatch
}

// DeleteChannel clears InboxChannelID on any user still pointing at the
// deleted channel.
type DeleteChannel struct {
	ID int64
}

func (AddChannel) ActionName() string    { return "ADD_CHANNEL" }
func (AddChannels) ActionName() string   { return "ADD_CHANNELS" }
func (UpdateChannel) ActionName() string { return "UPDATE_CHANNEL" }
func (DeleteChannel) ActionName() string { return "DELETE_CHANNEL" }

// friends

type AddFriend struct {
	Friend models.Friend
}

type AddFriends struct {
	Friends []models.Friend
}

type UpdateFriend struct {
	RecipientID int64
	Patch       models.FriendPatch
}

type DeleteFriend struct {
	RecipientID int64
}

func (AddFriend) ActionName() string    { return "ADD_FRIEND" }
func (AddFriends) ActionName() string   { return "ADD_FRIENDS" }
func (UpdateFriend) ActionName() string { return "UPDATE_FRIEND" }
func (DeleteFriend) ActionName() string { return "DELETE_FRIEND" }

// inbox

type AddInboxEntry struct {
	Entry models.InboxEntry
}

type AddInboxEntries struct {
	Entries []models.InboxEntry
}

type UpdateInboxEntry struct {
	ChannelID int64
	Patch     models.InboxPatch
}

type DeleteInboxEntry struct {
	ChannelID int64
}

func (AddInboxEntry) ActionName() string    { return "ADD_INBOX_ENTRY" }
func (AddInboxEntries) ActionName() string  { return "ADD_INBOX_ENTRIES" }
func (UpdateInboxEntry) ActionName() string { return "UPDATE_INBOX_ENTRY" }
func (DeleteInboxEntry) ActionName() string { return "DELETE_INBOX_ENTRY" }

// server roles

type AddServerRole struct {
	Role models.ServerRole
}

type AddServerRoles struct {
	Roles []models.ServerRole
}

type UpdateServerRole struct {
	ID    int64
	Patch models.ServerRolePatch
}

type DeleteServerRole struct {
	ID int64
}

func (AddServerRole) ActionName() string    { return "ADD_SERVER_ROLE" }
func (AddServerRoles) ActionName() string   { return "ADD_SERVER_ROLES" }
func (UpdateServerRole) ActionName() string { return "UPDATE_SERVER_ROLE" }
func (DeleteServerRole) ActionName() string { return "DELETE_SERVER_ROLE" }

// account

// SetAccount fully replaces the account singleton. Used at session bootstrap
// and logout reset.
type SetAccount struct {
	Account models.Account
}

type UpdateAccount struct {
	Patch models.AccountPatch
}

// SetAuthenticationError records or clears (nil) the transport auth error.
type SetAuthenticationError struct {
	Error *models.AuthError
}

type SetServerOrder struct {
	ServerIDs []int64
}

type SetServerSettings struct {
	Settings models.ServerSettings
}

type SetAllServerSettings struct {
	Settings []models.ServerSettings
}

type UpdateServerSettings struct {
	ServerID int64
	Patch    models.ServerSettingsPatch
}

type AddConnection struct {
	Connection models.Connection
}

type RemoveConnection struct {
	ConnectionID int64
}

func (SetAccount) ActionName() string             { return "SET_ACCOUNT" }
func (UpdateAccount) ActionName() string          { return "UPDATE_ACCOUNT" }
func (SetAuthenticationError) ActionName() string { return "SET_AUTHENTICATION_ERROR" }
func (SetServerOrder) ActionName() string         { return "SET_SERVER_ORDER" }
func (SetServerSettings) ActionName() string      { return "SET_SERVER_SETTINGS" }
func (SetAllServerSettings) ActionName() string   { return "SET_ALL_SERVER_SETTINGS" }
func (UpdateServerSettings) ActionName() string   { return "UPDATE_SERVER_SETTINGS" }
func (AddConnection) ActionName() string          { return "ADD_CONNECTION" }
func (RemoveConnection) ActionName() string       { return "REMOVE_CONNECTION" }
