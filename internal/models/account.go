package models

// Connection is a linked third-party account. Connections are kept as an
// ordered array on the self user, not as an id-keyed table.
type Connection struct {
	ID          int64  `json:"id,string"`
	Provider    string `json:"provider"`
	Name        string `json:"name"`
	ConnectedAt int64  `json:"connectedAt,omitempty"`
}

type ServerFolder struct {
	ID        int64  `json:"id,string"`
	Name      string `json:"name"`
	HexColor  string `json:"hexColor,omitempty"`
	ServerIDs IDList `json:"serverIds"`
}

// SelfUser is the authenticated user's private superset of User.
type SelfUser struct {
	User

	Email            string         `json:"email,omitempty"`
	Connections      []Connection   `json:"connections,omitempty"`
	ServerFolders    []ServerFolder `json:"serverFolders,omitempty"`
	OrderedServerIDs IDList         `json:"orderedServerIds,omitempty"`
}

// ServerSettings is the per-server notification/mute configuration for the
// authenticated user, keyed by ServerID.
type ServerSettings struct {
	ServerID              int64 `json:"serverId,string"`
	NotificationSoundMode int   `json:"notificationSoundMode"`
	NotificationPingMode  int   `json:"notificationPingMode"`
	Muted                 bool  `json:"muted,omitempty"`
}

type AuthError struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Account is the self-identity singleton. Account.User and the matching row
// in the users table are two views of one identity and have to be patched
// together.
type Account struct {
	User *SelfUser `json:"user,omitempty"`

	ServerSettings map[int64]ServerSettings `json:"serverSettings,omitempty"`

	Authenticated       bool       `json:"authenticated"`
	SocketConnected     bool       `json:"socketConnected"`
	SocketAuthenticated bool       `json:"socketAuthenticated"`
	LastAuthenticatedAt int64      `json:"lastAuthenticatedAt,omitempty"`
	AuthenticationError *AuthError `json:"authenticationError,omitempty"`
}
