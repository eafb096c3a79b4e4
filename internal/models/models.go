package models

// UserStatus is the wire value of a user's presence status.
type UserStatus int

const (
	StatusOffline UserStatus = iota
	StatusOnline
	StatusLookingToPlay
	StatusAway
	StatusBusy
)

type Activity struct {
	Name      string `json:"name"`
	Action    string `json:"action,omitempty"`
	StartedAt int64  `json:"startedAt,omitempty"`
}

// Presence is live status data for a user. A user without a Presence has an
// unknown status, which is not the same thing as being offline.
type Presence struct {
	Status   UserStatus `json:"status"`
	Custom   string     `json:"custom,omitempty"`
	Activity *Activity  `json:"activity,omitempty"`
}

// PresenceUpdate carries only the presence fields included in a
// USER_PRESENCE_UPDATE payload. Nil fields must be left untouched on merge.
type PresenceUpdate struct {
	UserID   int64       `json:"userId,string"`
	Status   *UserStatus `json:"status,omitempty"`
	Custom   *string     `json:"custom,omitempty"`
	Activity *Activity   `json:"activity,omitempty"`
}

type User struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Tag      string `json:"tag"`
	HexColor string `json:"hexColor,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Badges   int    `json:"badges,omitempty"`
	Bot      bool   `json:"bot,omitempty"`

	Presence *Presence `json:"presence,omitempty"`

	// InboxChannelID points at the open DM channel with this user, if any.
	// Cleared whenever that channel is deleted.
	InboxChannelID *int64 `json:"inboxChannelId,string,omitempty"`
}

type ChannelType int

const (
	ChannelDM ChannelType = iota
	ChannelServerText
	ChannelCategory
)

type Channel struct {
	ID           int64       `json:"id,string"`
	Type         ChannelType `json:"type"`
	Name         string      `json:"name,omitempty"`
	ServerID     int64       `json:"serverId,string,omitempty"`
	RecipientID  *int64      `json:"recipientId,string,omitempty"`
	LastSeen     *int64      `json:"lastSeen,omitempty"`
	CallJoinedAt *int64      `json:"callJoinedAt,omitempty"`
}

type Server struct {
	ID               int64  `json:"id,string"`
	Name             string `json:"name"`
	CreatedByID      int64  `json:"createdById,string"`
	DefaultChannelID int64  `json:"defaultChannelId,string,omitempty"`
	HexColor         string `json:"hexColor,omitempty"`
	CreatedAt        int64  `json:"createdAt,omitempty"`
}

type FriendStatus int

const (
	FriendSent FriendStatus = iota
	FriendPending
	FriendFriends
	FriendBlocked
)

// Friend is keyed by RecipientID, the id of the other user in the
// relationship. UserID is the owning (self) side.
type Friend struct {
	RecipientID int64        `json:"recipientId,string"`
	UserID      int64        `json:"userId,string"`
	Status      FriendStatus `json:"status"`
	CreatedAt   int64        `json:"createdAt"`
}

// InboxEntry is keyed by ChannelID and lives and dies together with its
// DM channel.
type InboxEntry struct {
	ChannelID   int64  `json:"channelId,string"`
	RecipientID int64  `json:"recipientId,string"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
	LastSeen    *int64 `json:"lastSeen,omitempty"`
}

type ServerRole struct {
	ID          int64  `json:"id,string"`
	ServerID    int64  `json:"serverId,string"`
	Name        string `json:"name"`
	HexColor    string `json:"hexColor,omitempty"`
	Permissions int    `json:"permissions"`
	Order       int    `json:"order"`
	HideRole    bool   `json:"hideRole,omitempty"`
}

type ConfigFile struct {
	ApiUrl       string
	SocketUrl    string
	DebugAddress string
	CacheFile    string
	LogToFile    bool
	LogLevel     string
}
