package store

import (
	"sort"

	"chatapp-client/internal/models"
)

// Users is the normalized user table. Presence is the one field family with
// merge semantics: partial presence updates never clear fields they do not
// mention, and presence can never create a user.
type Users struct {
	ctx     *Context
	items   map[int64]models.User
	version uint64

	listMemo    []models.User
	listVersion uint64
	listValid   bool
}

func newUsers(ctx *Context) *Users {
	return &Users{
		ctx:   ctx,
		items: make(map[int64]models.User),
	}
}

// Get returns the user for id. The second return is false when the user is
// not in the table.
func (s *Users) Get(id int64) (models.User, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	user, ok := s.items[id]
	return user, ok
}

// List returns every user ordered by id. The returned slice is shared with
// the memo and must not be modified.
func (s *Users) List() []models.User {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	if !s.listValid || s.listVersion != s.version {
		users := make([]models.User, 0, len(s.items))
		for _, user := range s.items {
			users = append(users, user)
		}
		sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
		s.listMemo = users
		s.listVersion = s.version
		s.listValid = true
	}
	return s.listMemo
}

func (s *Users) Len() int {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return len(s.items)
}

// add is an upsert with full-replace semantics: fields missing from the new
// value are dropped, not merged. Applying the same value twice is a no-op.
func (s *Users) add(user models.User) {
	if user.Presence != nil {
		presence := *user.Presence
		user.Presence = &presence
	}
	s.items[user.ID] = user
	s.version++
}

// update shallow-merges the patch. Patching a user that does not exist is a
// no-op: a patch event can legitimately arrive after the delete for the same
// id.
func (s *Users) update(id int64, patch models.UserPatch) {
	user, ok := s.items[id]
	if !ok {
		return
	}
	patch.Apply(&user)
	s.items[id] = user
	s.version++
}

func (s *Users) delete(id int64) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	s.version++
}

// mergePresence merges only the fields the update carries. The previous
// presence value is copied, never mutated in place, so earlier reads stay
// stable.
func (s *Users) mergePresence(update models.PresenceUpdate) {
	user, ok := s.items[update.UserID]
	if !ok {
		return
	}

	next := models.Presence{}
	if user.Presence != nil {
		next = *user.Presence
	}
	if update.Status != nil {
		next.Status = *update.Status
	}
	if update.Custom != nil {
		next.Custom = *update.Custom
	}
	if update.Activity != nil {
		activity := *update.Activity
		next.Activity = &activity
	}

	user.Presence = &next
	s.items[update.UserID] = user
	s.version++
}

func (s *Users) setInboxChannel(userID int64, channelID *int64) {
	user, ok := s.items[userID]
	if !ok {
		return
	}
	if channelID != nil {
		id := *channelID
		user.InboxChannelID = &id
	} else {
		user.InboxChannelID = nil
	}
	s.items[userID] = user
	s.version++
}

// clearInboxChannel drops the inbox pointer on every user still referencing
// channelID. Called from the channel delete cascade.
func (s *Users) clearInboxChannel(channelID int64) {
	for id, user := range s.items {
		if user.InboxChannelID != nil && *user.InboxChannelID == channelID {
			user.InboxChannelID = nil
			s.items[id] = user
			s.version++
		}
	}
}
