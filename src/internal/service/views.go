package service

import (
	"context"
	"errors"

	"github.com/DeepanshuSagore/HackFinder/src/internal/api/apiErrors"
	"github.com/DeepanshuSagore/HackFinder/src/internal/derive"
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"
)

// Dashboard is the current user's view of their own activity: posts,
// interests in both directions, suggestions and aggregate counts. Every
// entry carries the joined display data the caller needs.
type Dashboard struct {
	MyPosts           []model.Post              `json:"my_posts"`
	ReceivedInterests []ReceivedInterest        `json:"received_interests"`
	MyInterests       []derive.InterestWithPost `json:"my_interests"`
	SuggestedPosts    []model.Post              `json:"suggested_posts"`
	Summary           derive.Summary            `json:"summary"`
}

// ReceivedInterest joins an incoming interest with the sender's display
// name and the targeted post's title.
type ReceivedInterest struct {
	model.Interest
	SenderName string `json:"sender_name"`
	PostTitle  string `json:"post_title"`
}

// Feed returns the filtered browse feed in canonical most-recent-first
// order.
func (s *Service) Feed(ctx context.Context, f derive.Filters) []model.Post {
	return derive.FilterPosts(s.repo.ListPosts(), f)
}

func (s *Service) Dashboard(ctx context.Context) Dashboard {
	sess := s.Session()
	posts := s.repo.ListPosts()
	interests := s.repo.ListInterests()

	myPosts := derive.MyPosts(posts, sess.ID)
	myPostIDs := make(map[string]bool, len(myPosts))
	titles := make(map[string]string, len(myPosts))
	for _, p := range myPosts {
		myPostIDs[p.ID] = true
		titles[p.ID] = p.Title
	}

	received := derive.ReceivedInterests(interests, myPostIDs)
	usersByID := s.usersByID()
	joined := make([]ReceivedInterest, 0, len(received))
	for _, i := range received {
		r := ReceivedInterest{Interest: i, SenderName: "Unknown User", PostTitle: titles[i.PostID]}
		if u, ok := usersByID[i.UserID]; ok {
			r.SenderName = u.Name
		}
		joined = append(joined, r)
	}

	sent := derive.MyInterests(interests, posts, sess.ID)

	return Dashboard{
		MyPosts:           myPosts,
		ReceivedInterests: joined,
		MyInterests:       sent,
		SuggestedPosts:    derive.SuggestedPosts(posts, sess.ID),
		Summary:           derive.Summarize(myPosts, received, sent),
	}
}

// Timeline merges the current user's activity into a dated, bucketed
// sequence, optionally narrowed to one event kind.
func (s *Service) Timeline(ctx context.Context, filter derive.TimelineFilter) []derive.Event {
	if filter == "" {
		filter = derive.TimelineAll
	}
	sess := s.Session()
	posts := s.repo.ListPosts()
	interests := s.repo.ListInterests()

	myPosts := derive.MyPosts(posts, sess.ID)
	myPostIDs := make(map[string]bool, len(myPosts))
	for _, p := range myPosts {
		myPostIDs[p.ID] = true
	}
	received := derive.ReceivedInterests(interests, myPostIDs)
	sent := derive.MyInterests(interests, posts, sess.ID)

	return derive.Timeline(myPosts, received, sent, s.usersByID(), filter, s.now())
}

// UserByID resolves any referenced user. The session identity resolves
// even before its extended profile is first saved.
func (s *Service) UserByID(ctx context.Context, id string) (model.User, error) {
	u, err := s.repo.GetUser(id)
	if err == nil {
		return u, nil
	}
	if errors.Is(err, model.ErrNotFound) {
		if sess := s.Session(); sess.ID == id {
			return synthesizeProfile(sess), nil
		}
		return model.User{}, apiErrors.APIError{Code: apiErrors.NotFound, Message: "user not found"}
	}
	return model.User{}, err
}

// CurrentUser returns the session user's profile, synthesizing the
// default empty profile when none has been stored yet. The synthesized
// value is never persisted here.
func (s *Service) CurrentUser(ctx context.Context) model.User {
	sess := s.Session()
	if u, err := s.repo.GetUser(sess.ID); err == nil {
		return u
	}
	return synthesizeProfile(sess)
}

func (s *Service) usersByID() map[string]model.User {
	users := s.repo.ListUsers()
	out := make(map[string]model.User, len(users)+1)
	for _, u := range users {
		out[u.ID] = u
	}
	sess := s.Session()
	if _, ok := out[sess.ID]; !ok {
		out[sess.ID] = synthesizeProfile(sess)
	}
	return out
}
