package store

import (
	"sort"

	"chatapp-client/internal/models"
)

// Friends is keyed by the other user's id (RecipientID), so one relationship
// per user pair.
type Friends struct {
	ctx     *Context
	items   map[int64]models.Friend
	version uint64
}

func newFriends(ctx *Context) *Friends {
	return &Friends{
		ctx:   ctx,
		items: make(map[int64]models.Friend),
	}
}

func (s *Friends) Get(recipientID int64) (models.Friend, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	friend, ok := s.items[recipientID]
	return friend, ok
}

func (s *Friends) Len() int {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return len(s.items)
}

// List returns every relationship ordered by recipient id.
func (s *Friends) List() []models.Friend {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	friends := make([]models.Friend, 0, len(s.items))
	for _, friend := range s.items {
		friends = append(friends, friend)
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].RecipientID < friends[j].RecipientID })
	return friends
}

func (s *Friends) ByStatus(status models.FriendStatus) []models.Friend {
	var friends []models.Friend
	for _, friend := range s.List() {
		if friend.Status == status {
			friends = append(friends, friend)
		}
	}
	return friends
}

func (s *Friends) add(friend models.Friend) {
	s.items[friend.RecipientID] = friend
	s.version++
}

func (s *Friends) update(recipientID int64, patch models.FriendPatch) {
	friend, ok := s.items[recipientID]
	if !ok {
		return
	}
	patch.Apply(&friend)
	s.items[recipientID] = friend
	s.version++
}

func (s *Friends) delete(recipientID int64) {
	if _, ok := s.items[recipientID]; !ok {
		return
	}
	delete(s.items, recipientID)
	s.version++
}
