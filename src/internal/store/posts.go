package store

import (
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"

	"go.uber.org/zap"
)

func (s *Store) GetPost(id string) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		s.log.Debug("GetPost: not found", zap.String("post", id))
		return model.Post{}, model.ErrNotFound
	}
	return clonePost(p), nil
}

// AppendPost inserts a new post at the head of the feed. Most-recent-first
// is the canonical order; readers must not re-sort.
func (s *Store) AppendPost(p model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = clonePost(p)
	s.postOrder = append([]string{p.ID}, s.postOrder...)
	s.log.Debug("AppendPost: stored", zap.String("post", p.ID), zap.String("owner", p.OwnerID))
}

// UpdatePost replaces an existing post in place, keeping its feed
// position. Only the profile-update cascade uses this path.
func (s *Store) UpdatePost(p model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; !ok {
		s.log.Debug("UpdatePost: not found", zap.String("post", p.ID))
		return model.ErrNotFound
	}
	s.posts[p.ID] = clonePost(p)
	s.log.Debug("UpdatePost: stored", zap.String("post", p.ID))
	return nil
}

func (s *Store) ListPosts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		out = append(out, clonePost(s.posts[id]))
	}
	return out
}

func clonePost(p model.Post) model.Post {
	p.TechTags = cloneStrings(p.TechTags)
	p.RolesNeeded = cloneStrings(p.RolesNeeded)
	p.DesiredRoles = cloneStrings(p.DesiredRoles)
	if p.CurrentMembers != nil {
		members := make([]model.TeamMember, len(p.CurrentMembers))
		copy(members, p.CurrentMembers)
		p.CurrentMembers = members
	}
	return p
}
