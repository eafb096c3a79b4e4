package store

import (
	"sort"

	"chatapp-client/internal/models"
	"chatapp-client/internal/snowflake"
)

type Servers struct {
	ctx     *Context
	items   map[int64]models.Server
	version uint64

	orderedMemo     []models.Server
	orderedVersion  uint64
	orderedAccountV uint64
	orderedValid    bool
}

func newServers(ctx *Context) *Servers {
	return &Servers{
		ctx:   ctx,
		items: make(map[int64]models.Server),
	}
}

func (s *Servers) Get(id int64) (models.Server, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	server, ok := s.items[id]
	return server, ok
}

func (s *Servers) Len() int {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return len(s.items)
}

// Ordered returns the server list in display order. The memo is recomputed
// only when the servers table or the account (which owns the ordered-id
// list) changed since the last call. The returned slice must not be
// modified.
func (s *Servers) Ordered() []models.Server {
	s.ctx.mu.Lock()
	defer s.ctx.mu.Unlock()

	accountVersion := s.ctx.Account.version
	if !s.orderedValid || s.orderedVersion != s.version || s.orderedAccountV != accountVersion {
		s.orderedMemo = s.computeOrdered()
		s.orderedVersion = s.version
		s.orderedAccountV = accountVersion
		s.orderedValid = true
	}
	return s.orderedMemo
}

// computeOrdered sorts by creation time ascending, then stable-sorts by
// position in the account's ordered-id list. The order list may reference
// servers that are no longer present; those ids are simply skipped. Two
// servers absent from the order list keep their relative order, and when
// exactly one of the pair is listed, the unlisted one sorts first. That
// asymmetry is a pinned compatibility contract, not an accident to fix
// (see TestOrderedUnlistedSortsBeforeListed).
func (s *Servers) computeOrdered() []models.Server {
	servers := make([]models.Server, 0, len(s.items))
	for _, server := range s.items {
		servers = append(servers, server)
	}

	sort.Slice(servers, func(i, j int) bool {
		left, right := createdAt(servers[i]), createdAt(servers[j])
		if left != right {
			return left < right
		}
		return servers[i].ID < servers[j].ID
	})

	positions := make(map[int64]int)
	if user := s.ctx.Account.account.User; user != nil {
		for index, id := range user.OrderedServerIDs {
			positions[id] = index
		}
	}

	sort.SliceStable(servers, func(i, j int) bool {
		left, leftListed := positions[servers[i].ID]
		right, rightListed := positions[servers[j].ID]
		switch {
		case leftListed && rightListed:
			return left < right
		case !leftListed && rightListed:
			return true
		default:
			return false
		}
	})

	return servers
}

// createdAt prefers the explicit timestamp and falls back to the snowflake
// timestamp embedded in the id.
func createdAt(server models.Server) int64 {
	if server.CreatedAt != 0 {
		return server.CreatedAt
	}
	return snowflake.ExtractTimestamp(server.ID)
}

func (s *Servers) add(server models.Server) {
	s.items[server.ID] = server
	s.version++
}

func (s *Servers) update(id int64, patch models.ServerPatch) {
	server, ok := s.items[id]
	if !ok {
		return
	}
	patch.Apply(&server)
	s.items[id] = server
	s.version++
}

func (s *Servers) delete(id int64) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	s.version++
	return true
}
