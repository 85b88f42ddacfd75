package derive

import (
	"sort"
	"time"

	"github.com/DeepanshuSagore/HackFinder/src/internal/model"
)

type EventKind string

const (
	EventPostCreated      EventKind = "post_created"
	EventInterestReceived EventKind = "interest_received"
	EventInterestSent     EventKind = "interest_sent"
)

type Bucket string

const (
	BucketThisWeek Bucket = "this_week"
	BucketLastWeek Bucket = "last_week"
	BucketEarlier  Bucket = "earlier"
)

type TimelineFilter string

const (
	TimelineAll      TimelineFilter = "all"
	TimelinePosts    TimelineFilter = "posts"
	TimelineReceived TimelineFilter = "received"
	TimelineSent     TimelineFilter = "sent"
)

// Event carries everything a renderer needs without further lookups.
type Event struct {
	Kind         EventKind            `json:"kind"`
	Bucket       Bucket               `json:"bucket"`
	Date         time.Time            `json:"date"`
	PostID       string               `json:"post_id"`
	PostTitle    string               `json:"post_title"`
	Counterparty string               `json:"counterparty,omitempty"`
	Status       model.InterestStatus `json:"status,omitempty"`
	Tags         []string             `json:"tags,omitempty"`
	Message      string               `json:"message,omitempty"`
}

// Timeline merges the user's post creations, received interests and sent
// interests into one sequence sorted descending by date. Ties keep
// insertion order: posts before received before sent. The kind filter is
// applied before bucketing; buckets are relative to now at day
// granularity (0-7 days this_week, 8-14 last_week, older earlier).
func Timeline(myPosts []model.Post, received []model.Interest, sent []InterestWithPost, usersByID map[string]model.User, filter TimelineFilter, now time.Time) []Event {
	postsByID := make(map[string]model.Post, len(myPosts))
	for _, p := range myPosts {
		postsByID[p.ID] = p
	}

	var events []Event
	if filter == TimelineAll || filter == TimelinePosts {
		for _, p := range myPosts {
			events = append(events, Event{
				Kind:      EventPostCreated,
				Date:      p.CreatedAt,
				PostID:    p.ID,
				PostTitle: p.Title,
				Tags:      p.TechTags,
			})
		}
	}
	if filter == TimelineAll || filter == TimelineReceived {
		for _, i := range received {
			e := Event{
				Kind:         EventInterestReceived,
				Date:         i.CreatedAt,
				PostID:       i.PostID,
				Status:       i.Status,
				Message:      i.Message,
				Counterparty: "Unknown User",
			}
			if u, ok := usersByID[i.UserID]; ok {
				e.Counterparty = u.Name
			}
			if p, ok := postsByID[i.PostID]; ok {
				e.PostTitle = p.Title
				e.Tags = p.TechTags
			}
			events = append(events, e)
		}
	}
	if filter == TimelineAll || filter == TimelineSent {
		for _, i := range sent {
			e := Event{
				Kind:    EventInterestSent,
				Date:    i.CreatedAt,
				PostID:  i.PostID,
				Status:  i.Status,
				Message: i.Message,
			}
			if i.Post != nil {
				e.PostTitle = i.Post.Title
				e.Counterparty = i.Post.OwnerName
				e.Tags = i.Post.TechTags
			}
			events = append(events, e)
		}
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Date.After(events[b].Date)
	})

	for idx := range events {
		events[idx].Bucket = bucketFor(events[idx].Date, now)
	}
	return events
}

func bucketFor(date, now time.Time) Bucket {
	days := int(day(now).Sub(day(date)).Hours() / 24)
	switch {
	case days <= 7:
		return BucketThisWeek
	case days <= 14:
		return BucketLastWeek
	default:
		return BucketEarlier
	}
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
