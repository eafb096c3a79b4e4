package store

import (
	"sort"

	"chatapp-client/internal/models"
)

type ServerRoles struct {
	ctx     *Context
	items   map[int64]models.ServerRole
	version uint64
}

func newServerRoles(ctx *Context) *ServerRoles {
	return &ServerRoles{
		ctx:   ctx,
		items: make(map[int64]models.ServerRole),
	}
}

func (s *ServerRoles) Get(id int64) (models.ServerRole, bool) {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	role, ok := s.items[id]
	return role, ok
}

func (s *ServerRoles) Len() int {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	return len(s.items)
}

// ByServer returns the server's roles sorted by their Order field, then id.
func (s *ServerRoles) ByServer(serverID int64) []models.ServerRole {
	s.ctx.mu.RLock()
	defer s.ctx.mu.RUnlock()

	var roles []models.ServerRole
	for _, role := range s.items {
		if role.ServerID == serverID {
			roles = append(roles, role)
		}
	}
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].Order != roles[j].Order {
			return roles[i].Order < roles[j].Order
		}
		return roles[i].ID < roles[j].ID
	})
	return roles
}

func (s *ServerRoles) add(role models.ServerRole) {
	s.items[role.ID] = role
	s.version++
}

func (s *ServerRoles) update(id int64, patch models.ServerRolePatch) {
	role, ok := s.items[id]
	if !ok {
		return
	}
	patch.Apply(&role)
	s.items[id] = role
	s.version++
}

func (s *ServerRoles) delete(id int64) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	s.version++
}

func (s *ServerRoles) deleteByServer(serverID int64) {
	for id, role := range s.items {
		if role.ServerID == serverID {
			delete(s.items, id)
			s.version++
		}
	}
}
