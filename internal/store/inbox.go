package store

import (
	"sort"

	"chatapp-client/internal/models"
)

// Inbox holds one entry per open DM channel, keyed by channel id. Entries
// are created and removed together with their channel by the inbox event
// handlers.
type Inbox struct {
	ctx     *Context
	items   map[int64]models.InboxEntry
	version uint64
}

func newInbox(ctx *Context) *Inbox {
	return &Inbox{
		ctx:   ctx,
		items: make(map[int64]models.InboxEntry),
	}
}

func (s *Inbox) Get(channelID int64) (models.InboxEntry, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	entry, ok := s.items[channelID]
	return entry, ok
}

func (s *Inbox) Len() int {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return len(s.items)
}

// List returns entries newest first.
func (s *Inbox) List() []models.InboxEntry {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	entries := make([]models.InboxEntry, 0, len(s.items))
	for _, entry := range s.items {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt > entries[j].CreatedAt
		}
		return entries[i].ChannelID > entries[j].ChannelID
	})
	return entries
}

func (s *Inbox) add(entry models.InboxEntry) {
	s.items[entry.ChannelID] = entry
	s.version++
}

func (s *Inbox) update(channelID int64, patch models.InboxPatch) {
	entry, ok := s.items[channelID]
	if !ok {
		return
	}
	patch.Apply(&entry)
	s.items[channelID] = entry
	s.version++
}

func (s *Inbox) delete(channelID int64) {
	if _, ok := s.items[channelID]; !ok {
		return
	}
	delete(s.items, channelID)
	s.version++
}
