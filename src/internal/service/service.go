package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DeepanshuSagore/HackFinder/src/internal/api/apiErrors"
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"
	"github.com/DeepanshuSagore/HackFinder/src/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the fixed identity acting for the lifetime of the process.
// Name and Avatar are refreshed when the identity's own profile is edited.
type Session struct {
	ID     string
	Name   string
	Email  string
	Avatar string
}

// Service is the only path through which external actions change entity
// state. Every mutation is validated here, runs to completion as a single
// atomic store write, and reports failures as apiErrors values.
type Service struct {
	repo  store.Repository
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	mu      sync.RWMutex
	session Session
}

func NewService(repo store.Repository, logger *zap.Logger, session Session) *Service {
	return &Service{
		repo:    repo,
		log:     logger,
		session: session,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.New().String() },
	}
}

// ExpressInterest records the current user's interest in a post. The
// preconditions run in a fixed order and the first failure wins.
func (s *Service) ExpressInterest(ctx context.Context, postID, message string, selectedRoles []string) (model.Interest, error) {
	sess := s.Session()

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return model.Interest{}, apiErrors.APIError{Code: apiErrors.EmptyMessage, Message: "Please write a message before expressing interest."}
	}

	post, err := s.repo.GetPost(postID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Interest{}, apiErrors.APIError{Code: apiErrors.NotFound, Message: "This post is no longer available."}
		}
		return model.Interest{}, err
	}

	if post.OwnerID == sess.ID {
		return model.Interest{}, apiErrors.APIError{Code: apiErrors.OwnPost, Message: "You cannot express interest in your own post."}
	}

	isTeamPost := post.Type == model.PostTypeTeam
	if isTeamPost && len(post.RolesNeeded) > 0 && !anyRoleOpen(selectedRoles, post.RolesNeeded) {
		return model.Interest{}, apiErrors.APIError{Code: apiErrors.RoleRequired, Message: "Select at least one role you can help with before expressing interest."}
	}

	for _, existing := range s.repo.ListInterestsForUser(sess.ID) {
		if existing.PostID == postID {
			return model.Interest{}, apiErrors.APIError{Code: apiErrors.AlreadyInterested, Message: "You have already expressed interest in this post."}
		}
	}

	roles := []string{}
	if isTeamPost {
		roles = append(roles, selectedRoles...)
	}

	interest := model.Interest{
		ID:        s.newID(),
		UserID:    sess.ID,
		PostID:    postID,
		Message:   trimmed,
		Roles:     roles,
		Status:    model.StatusPending,
		CreatedAt: s.today(),
	}
	s.repo.AppendInterest(interest)
	s.log.Info("ExpressInterest: success",
		zap.String("interest", interest.ID),
		zap.String("post", postID),
		zap.Int("roles", len(roles)))
	return interest, nil
}

// RespondToInterest transitions an interest to accepted or declined. An
// unknown interest id is a tolerated no-op; there is no ownership check
// at this layer, callers expose the action to post owners only.
func (s *Service) RespondToInterest(ctx context.Context, interestID string, status model.InterestStatus) error {
	if status != model.StatusAccepted && status != model.StatusDeclined {
		return apiErrors.APIError{Code: apiErrors.InvalidStatus, Message: "status must be accepted or declined"}
	}
	if applied := s.repo.UpdateInterestStatus(interestID, status); !applied {
		s.log.Warn("RespondToInterest: unknown interest, no-op", zap.String("interest", interestID))
		return nil
	}
	s.log.Info("RespondToInterest: success", zap.String("interest", interestID), zap.String("status", string(status)))
	return nil
}

// CreatePost publishes a new post owned by the current user and prepends
// it to the feed. Callers pre-validate required text fields; the check
// here is defensive and does not change behavior for well-formed input.
func (s *Service) CreatePost(ctx context.Context, draft model.PostDraft) (model.Post, error) {
	if (draft.PostType != model.PostTypeTeam && draft.PostType != model.PostTypeIndividual) ||
		strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Description) == "" {
		return model.Post{}, apiErrors.APIError{Code: apiErrors.ValidationFailed, Message: "post_type, title and description are required"}
	}

	owner := s.identity()
	tags := splitList(draft.TechTags)

	var post model.Post
	if draft.PostType == model.PostTypeTeam {
		roles := splitList(draft.RolesNeeded)
		post = model.NewTeamPost(s.newID(), draft.Title, draft.Description, owner, tags, roles, s.today())
	} else {
		roles := splitList(draft.DesiredRoles)
		post = model.NewIndividualPost(s.newID(), draft.Title, draft.Description, owner, tags, roles, s.today())
		post.Availability = "Open to discussions"
	}

	post.WorkPreference = draft.WorkPreference
	post.TimeCommitment = draft.TimeCommitment
	if post.TimeCommitment == "" {
		post.TimeCommitment = "Flexible"
	}
	post.Duration = "3 months"
	post.MatchScore = 0.8
	post.MatchExplanation = "New post - perfect for exploring opportunities"

	s.repo.AppendPost(post)
	s.log.Info("CreatePost: success",
		zap.String("post", post.ID),
		zap.String("type", string(post.Type)),
		zap.Int("tags", len(post.TechTags)))
	return post, nil
}

// UpdateProfile merges the update onto the target's stored profile, or
// onto a synthesized default when the session user has never saved one.
// A missing or unresolvable target id is a no-op returning a zero user.
func (s *Service) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.User, error) {
	sess := s.Session()

	if update.UserID == "" {
		s.log.Warn("UpdateProfile: missing target id, no-op")
		return model.User{}, nil
	}

	prev, err := s.repo.GetUser(update.UserID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		if update.UserID != sess.ID {
			s.log.Warn("UpdateProfile: unknown target id, no-op", zap.String("user", update.UserID))
			return model.User{}, nil
		}
		prev = synthesizeProfile(sess)
	}

	prevName := prev.Name
	merged := mergeProfile(prev, update, sess.Avatar)
	s.repo.PutUser(merged)

	if update.UserID == sess.ID {
		s.mu.Lock()
		s.session.Name = merged.Name
		s.session.Avatar = merged.Avatar
		s.mu.Unlock()
	}

	s.cascadeProfile(update.UserID, prevName, merged)
	s.log.Info("UpdateProfile: success", zap.String("user", update.UserID))
	return merged, nil
}

// cascadeProfile refreshes denormalized copies of the user's display
// fields: owner snapshots on owned posts, and team-member entries.
// Member records carry no user id, so they match on the previous display
// name.
func (s *Service) cascadeProfile(userID, prevName string, u model.User) {
	for _, p := range s.repo.ListPosts() {
		changed := false
		if p.OwnerID == userID {
			p.OwnerName = u.Name
			p.OwnerAvatar = u.Avatar
			changed = true
		}
		for idx, m := range p.CurrentMembers {
			if m.Name == prevName {
				p.CurrentMembers[idx].Name = u.Name
				p.CurrentMembers[idx].Avatar = u.Avatar
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := s.repo.UpdatePost(p); err != nil {
			s.log.Warn("UpdateProfile: cascade write skipped", zap.String("post", p.ID), zap.Error(err))
		}
	}
}

func mergeProfile(prev model.User, update model.ProfileUpdate, sessionAvatar string) model.User {
	merged := prev
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Bio != nil {
		merged.Bio = *update.Bio
	}
	if update.Experience != nil {
		merged.Experience = *update.Experience
	}
	if update.Location != nil {
		merged.Location = *update.Location
	}
	if update.GitHub != nil {
		merged.GitHub = *update.GitHub
	}
	if update.LinkedIn != nil {
		merged.LinkedIn = *update.LinkedIn
	}
	if update.Verified != nil {
		merged.Verified = *update.Verified
	}
	if update.Skills != nil {
		merged.Skills = update.Skills
	}
	if update.Roles != nil {
		merged.Roles = update.Roles
	}
	if update.Avatar != "" {
		merged.Avatar = update.Avatar
	} else if merged.Avatar == "" {
		merged.Avatar = sessionAvatar
	}
	return merged
}

// Session returns a snapshot of the current session identity.
func (s *Service) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Service) identity() model.User {
	sess := s.Session()
	return model.User{ID: sess.ID, Name: sess.Name, Email: sess.Email, Avatar: sess.Avatar}
}

func (s *Service) today() time.Time {
	t := s.now().UTC()
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func synthesizeProfile(sess Session) model.User {
	return model.User{
		ID:     sess.ID,
		Name:   sess.Name,
		Email:  sess.Email,
		Avatar: sess.Avatar,
		Skills: []string{},
		Roles:  []string{},
	}
}

func anyRoleOpen(selected, open []string) bool {
	for _, role := range selected {
		for _, o := range open {
			if role == o {
				return true
			}
		}
	}
	return false
}

// splitList parses a comma-separated field: trim each token, drop empty
// ones, keep order, no dedupe.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
