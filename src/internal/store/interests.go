package store

import (
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"

	"go.uber.org/zap"
)

func (s *Store) AppendInterest(i model.Interest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interests[i.ID] = cloneInterest(i)
	s.interestOrder = append(s.interestOrder, i.ID)
	s.log.Debug("AppendInterest: stored",
		zap.String("interest", i.ID),
		zap.String("user", i.UserID),
		zap.String("post", i.PostID))
}

func (s *Store) GetInterest(id string) (model.Interest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.interests[id]
	if !ok {
		s.log.Debug("GetInterest: not found", zap.String("interest", id))
		return model.Interest{}, model.ErrNotFound
	}
	return cloneInterest(i), nil
}

// UpdateInterestStatus transitions an interest's status in place. An
// unknown id is a tolerated no-op; the return value reports whether the
// write applied.
func (s *Store) UpdateInterestStatus(id string, status model.InterestStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.interests[id]
	if !ok {
		s.log.Debug("UpdateInterestStatus: not found", zap.String("interest", id))
		return false
	}
	i.Status = status
	s.interests[id] = i
	s.log.Debug("UpdateInterestStatus: stored", zap.String("interest", id), zap.String("status", string(status)))
	return true
}

func (s *Store) ListInterests() []model.Interest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Interest, 0, len(s.interestOrder))
	for _, id := range s.interestOrder {
		out = append(out, cloneInterest(s.interests[id]))
	}
	return out
}

func (s *Store) ListInterestsForPost(postID string) []model.Interest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Interest
	for _, id := range s.interestOrder {
		if i := s.interests[id]; i.PostID == postID {
			out = append(out, cloneInterest(i))
		}
	}
	return out
}

func (s *Store) ListInterestsForUser(userID string) []model.Interest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Interest
	for _, id := range s.interestOrder {
		if i := s.interests[id]; i.UserID == userID {
			out = append(out, cloneInterest(i))
		}
	}
	return out
}

func cloneInterest(i model.Interest) model.Interest {
	i.Roles = cloneStrings(i.Roles)
	return i
}
