package store

import (
	"sort"

	"chatapp-client/internal/models"
)

type Channels struct {
	ctx     *Context
	items   map[int64]models.Channel
	version uint64
}

func newChannels(ctx *Context) *Channels {
	return &Channels{
		ctx:   ctx,
		items: make(map[int64]models.Channel),
	}
}

func (s *Channels) Get(id int64) (models.Channel, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	channel, ok := s.items[id]
	return channel, ok
}

func (s *Channels) Len() int {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return len(s.items)
}

// ByServer returns the server's channels ordered by id.
func (s *Channels) ByServer(serverID int64) []models.Channel {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return s.byServerLocked(serverID)
}

func (s *Channels) byServerLocked(serverID int64) []models.Channel {
	var channels []models.Channel
	for _, channel := range s.items {
		if channel.ServerID == serverID {
			channels = append(channels, channel)
		}
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i].ID < channels[j].ID })
	return channels
}

func (s *Channels) add(channel models.Channel) {
	s.items[channel.ID] = channel
	s.version++
}

func (s *Channels) update(id int64, patch models.ChannelPatch) {
	channel, ok := s.items[id]
	if !ok {
		return
	}
	patch.Apply(&channel)
	s.items[id] = channel
	s.version++
}

func (s *Channels) delete(id int64) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	s.version++
	return true
}
