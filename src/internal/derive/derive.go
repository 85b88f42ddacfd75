// Package derive computes read-only views from current entity state.
// Every function is pure: it takes snapshots, returns fresh values and is
// safe to recompute after any state change.
package derive

import (
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"
)

// Filters narrows the browse feed. Empty fields are unconstrained; each
// non-empty field is a single exact-match value.
type Filters struct {
	Type   string `json:"type"`
	Skills string `json:"skills"`
	Roles  string `json:"roles"`
	Work   string `json:"work"`
}

func (f Filters) IsZero() bool {
	return f == Filters{}
}

// FilterPosts keeps posts satisfying every non-empty filter, preserving
// the input (most-recent-first) order.
func FilterPosts(posts []model.Post, f Filters) []model.Post {
	if f.IsZero() {
		return posts
	}
	var out []model.Post
	for _, p := range posts {
		if f.Type != "" && string(p.Type) != f.Type {
			continue
		}
		if f.Skills != "" && !contains(p.TechTags, f.Skills) {
			continue
		}
		if f.Roles != "" && !contains(p.OpenRoles(), f.Roles) {
			continue
		}
		if f.Work != "" && p.WorkPreference != f.Work {
			continue
		}
		out = append(out, p)
	}
	return out
}

func MyPosts(posts []model.Post, userID string) []model.Post {
	var out []model.Post
	for _, p := range posts {
		if p.OwnerID == userID {
			out = append(out, p)
		}
	}
	return out
}

// ReceivedInterests keeps interests targeting any of the given posts,
// preserving insertion order.
func ReceivedInterests(interests []model.Interest, myPostIDs map[string]bool) []model.Interest {
	var out []model.Interest
	for _, i := range interests {
		if myPostIDs[i.PostID] {
			out = append(out, i)
		}
	}
	return out
}

// InterestWithPost joins an interest with its resolved post. Post is nil
// when the referenced post does not resolve; the join tolerates it even
// though posts are never removed.
type InterestWithPost struct {
	model.Interest
	Post *model.Post `json:"post"`
}

func MyInterests(interests []model.Interest, posts []model.Post, userID string) []InterestWithPost {
	byID := make(map[string]model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	var out []InterestWithPost
	for _, i := range interests {
		if i.UserID != userID {
			continue
		}
		joined := InterestWithPost{Interest: i}
		if p, ok := byID[i.PostID]; ok {
			joined.Post = &p
		}
		out = append(out, joined)
	}
	return out
}

// suggestedLimit is a fixed heuristic, not a ranking model.
const suggestedLimit = 3

// SuggestedPosts returns the first posts in feed order not owned by the
// user, capped at suggestedLimit.
func SuggestedPosts(posts []model.Post, userID string) []model.Post {
	var out []model.Post
	for _, p := range posts {
		if p.OwnerID == userID {
			continue
		}
		out = append(out, p)
		if len(out) == suggestedLimit {
			break
		}
	}
	return out
}

// Summary is the dashboard aggregate over the current user's partitions.
type Summary struct {
	PostCount       int `json:"post_count"`
	ReceivedCount   int `json:"received_count"`
	PendingReceived int `json:"pending_received"`
	SentCount       int `json:"sent_count"`
	AcceptedSent    int `json:"accepted_sent"`
}

func Summarize(myPosts []model.Post, received []model.Interest, sent []InterestWithPost) Summary {
	s := Summary{
		PostCount:     len(myPosts),
		ReceivedCount: len(received),
		SentCount:     len(sent),
	}
	for _, i := range received {
		if i.Status == model.StatusPending {
			s.PendingReceived++
		}
	}
	for _, i := range sent {
		if i.Status == model.StatusAccepted {
			s.AcceptedSent++
		}
	}
	return s
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
