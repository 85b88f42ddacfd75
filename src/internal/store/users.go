package store

import (
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"

	"go.uber.org/zap"
)

func (s *Store) GetUser(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		s.log.Debug("GetUser: not found", zap.String("user", id))
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(u), nil
}

// PutUser inserts or fully replaces a user record by id.
func (s *Store) PutUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.users[u.ID]
	s.users[u.ID] = cloneUser(u)
	s.log.Debug("PutUser: stored", zap.String("user", u.ID), zap.Bool("replaced", existed))
}

func (s *Store) ListUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	return out
}

func cloneUser(u model.User) model.User {
	u.Skills = cloneStrings(u.Skills)
	u.Roles = cloneStrings(u.Roles)
	return u
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
