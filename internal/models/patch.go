package models

// Patch structs carry partial updates. Only non-nil fields are applied, so a
// patch decoded from a sparse JSON payload merges instead of overwriting.

type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Tag      *string `json:"tag,omitempty"`
	HexColor *string `json:"hexColor,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Badges   *int    `json:"badges,omitempty"`
}

func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Tag != nil {
		u.Tag = *p.Tag
	}
	if p.HexColor != nil {
		u.HexColor = *p.HexColor
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Badges != nil {
		u.Badges = *p.Badges
	}
}

type ServerPatch struct {
	Name             *string `json:"name,omitempty"`
	DefaultChannelID *int64  `json:"defaultChannelId,string,omitempty"`
	HexColor         *string `json:"hexColor,omitempty"`
}

func (p ServerPatch) Apply(s *Server) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.DefaultChannelID != nil {
		s.DefaultChannelID = *p.DefaultChannelID
	}
	if p.HexColor != nil {
		s.HexColor = *p.HexColor
	}
}

type ChannelPatch struct {
	Name         *string `json:"name,omitempty"`
	LastSeen     *int64  `json:"lastSeen,omitempty"`
	CallJoinedAt *int64  `json:"callJoinedAt,omitempty"`
}

func (p ChannelPatch) Apply(c *Channel) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.LastSeen != nil {
		c.LastSeen = p.LastSeen
	}
	if p.CallJoinedAt != nil {
		c.CallJoinedAt = p.CallJoinedAt
	}
}

type FriendPatch struct {
	Status    *FriendStatus `json:"status,omitempty"`
	CreatedAt *int64        `json:"createdAt,omitempty"`
}

func (p FriendPatch) Apply(f *Friend) {
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.CreatedAt != nil {
		f.CreatedAt = *p.CreatedAt
	}
}

type InboxPatch struct {
	LastSeen *int64 `json:"lastSeen,omitempty"`
}

func (p InboxPatch) Apply(e *InboxEntry) {
	if p.LastSeen != nil {
		e.LastSeen = p.LastSeen
	}
}

type ServerRolePatch struct {
	Name        *string `json:"name,omitempty"`
	HexColor    *string `json:"hexColor,omitempty"`
	Permissions *int    `json:"permissions,omitempty"`
	Order       *int    `json:"order,omitempty"`
	HideRole    *bool   `json:"hideRole,omitempty"`
}

func (p ServerRolePatch) Apply(r *ServerRole) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.HexColor != nil {
		r.HexColor = *p.HexColor
	}
	if p.Permissions != nil {
		r.Permissions = *p.Permissions
	}
	if p.Order != nil {
		r.Order = *p.Order
	}
	if p.HideRole != nil {
		r.HideRole = *p.HideRole
	}
}

type ServerSettingsPatch struct {
	NotificationSoundMode *int  `json:"notificationSoundMode,omitempty"`
	NotificationPingMode  *int  `json:"notificationPingMode,omitempty"`
	Muted                 *bool `json:"muted,omitempty"`
}

func (p ServerSettingsPatch) Apply(s *ServerSettings) {
	if p.NotificationSoundMode != nil {
		s.NotificationSoundMode = *p.NotificationSoundMode
	}
	if p.NotificationPingMode != nil {
		s.NotificationPingMode = *p.NotificationPingMode
	}
	if p.Muted != nil {
		s.Muted = *p.Muted
	}
}

type AccountPatch struct {
	Email               *string `json:"email,omitempty"`
	Username            *string `json:"username,omitempty"`
	Tag                 *string `json:"tag,omitempty"`
	HexColor            *string `json:"hexColor,omitempty"`
	Avatar              *string `json:"avatar,omitempty"`
	Authenticated       *bool   `json:"authenticated,omitempty"`
	SocketConnected     *bool   `json:"socketConnected,omitempty"`
	SocketAuthenticated *bool   `json:"socketAuthenticated,omitempty"`
	LastAuthenticatedAt *int64  `json:"lastAuthenticatedAt,omitempty"`
}

func (p AccountPatch) Apply(a *Account) {
	if p.Authenticated != nil {
		a.Authenticated = *p.Authenticated
	}
	if p.SocketConnected != nil {
		a.SocketConnected = *p.SocketConnected
	}
	if p.SocketAuthenticated != nil {
		a.SocketAuthenticated = *p.SocketAuthenticated
	}
	if p.LastAuthenticatedAt != nil {
		a.LastAuthenticatedAt = *p.LastAuthenticatedAt
	}
	if a.User == nil {
		return
	}
	if p.Email != nil {
		a.User.Email = *p.Email
	}
	if p.Username != nil {
		a.User.Username = *p.Username
	}
	if p.Tag != nil {
		a.User.Tag = *p.Tag
	}
	if p.HexColor != nil {
		a.User.HexColor = *p.HexColor
	}
	if p.Avatar != nil {
		a.User.Avatar = *p.Avatar
	}
}
