package store

import "chatapp-client/internal/models"

// Account is the self-identity singleton store. Unlike the entity tables it
// holds one denormalized value: the private self user (which also exists as
// a plain row in Users) plus per-server settings and connection flags.
type Account struct {
	ctx     *Context
	account models.Account
	version uint64
}

func newAccount(ctx *Context) *Account {
	return &Account{
		ctx: ctx,
		account: models.Account{
			ServerSettings: make(map[int64]models.ServerSettings),
		},
	}
}

// Get returns a copy of the account value. The user, the settings map and
// the connection slice are replaced (never mutated) on write, so a returned
// value keeps the state it was read with.
func (s *Account) Get() models.Account {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return s.account
}

// SelfID returns the authenticated user's id, false before authentication.
func (s *Account) SelfID() (int64, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	if s.account.User == nil {
		return 0, false
	}
	return s.account.User.ID, true
}

func (s *Account) ServerSettings(serverID int64) (models.ServerSettings, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	settings, ok := s.account.ServerSettings[serverID]
	return settings, ok
}

// set fully replaces the singleton. Used at session bootstrap and for the
// logout reset.
func (s *Account) set(account models.Account) {
	if account.ServerSettings == nil {
		account.ServerSettings = make(map[int64]models.ServerSettings)
	}
	if account.User != nil {
		user := *account.User
		account.User = &user
	}
	s.account = account
	s.version++
}

func (s *Account) update(patch models.AccountPatch) {
	s.cloneUser()
	patch.Apply(&s.account)
	s.version++
}

// cloneUser swaps the self user for a copy before a write, so account values
// handed out by Get keep the state they were read with.
func (s *Account) cloneUser() {
	if s.account.User == nil {
		return
	}
	user := *s.account.User
	s.account.User = &user
}

// cloneSettings swaps the settings map for a copy before a write. Same
// copy-on-write rule as cloneUser: readers holding the old map must never
// see it change, and the debug snapshot iterates it outside the store lock.
func (s *Account) cloneSettings() {
	settings := make(map[int64]models.ServerSettings, len(s.account.ServerSettings))
	for id, entry := range s.account.ServerSettings {
		settings[id] = entry
	}
	s.account.ServerSettings = settings
}

func (s *Account) setAuthenticationError(authError *models.AuthError) {
	s.account.AuthenticationError = authError
	s.version++
}

func (s *Account) setServerOrder(serverIDs []int64) {
	if s.account.User == nil {
		return
	}
	s.cloneUser()
	s.account.User.OrderedServerIDs = append(models.IDList(nil), serverIDs...)
	s.version++
}

func (s *Account) setServerSettings(settings models.ServerSettings) {
	s.cloneSettings()
	s.account.ServerSettings[settings.ServerID] = settings
	s.version++
}

func (s *Account) setAllServerSettings(settings []models.ServerSettings) {
	s.account.ServerSettings = make(map[int64]models.ServerSettings, len(settings))
	for _, entry := range settings {
		s.account.ServerSettings[entry.ServerID] = entry
	}
	s.version++
}

func (s *Account) updateServerSettings(serverID int64, patch models.ServerSettingsPatch) {
	settings, ok := s.account.ServerSettings[serverID]
	if !ok {
		return
	}
	patch.Apply(&settings)
	s.cloneSettings()
	s.account.ServerSettings[serverID] = settings
	s.version++
}

func (s *Account) deleteServerSettings(serverID int64) {
	if _, ok := s.account.ServerSettings[serverID]; !ok {
		return
	}
	s.cloneSettings()
	delete(s.account.ServerSettings, serverID)
	s.version++
}

// addConnection appends to the connections array. Connections are the one
// array-based entity family, their order is part of the state.
func (s *Account) addConnection(connection models.Connection) {
	if s.account.User == nil {
		return
	}
	s.cloneUser()
	connections := append([]models.Connection(nil), s.account.User.Connections...)
	s.account.User.Connections = append(connections, connection)
	s.version++
}

func (s *Account) removeConnection(connectionID int64) {
	if s.account.User == nil {
		return
	}
	s.cloneUser()
	connections := make([]models.Connection, 0, len(s.account.User.Connections))
	for _, connection := range s.account.User.Connections {
		if connection.ID != connectionID {
			connections = append(connections, connection)
		}
	}
	s.account.User.Connections = connections
	s.version++
}
