package store

import (
	"sync"

	"github.com/DeepanshuSagore/HackFinder/src/internal/model"

	"go.uber.org/zap"
)

// Repository is the entity-store surface the service mutates through.
// Nothing outside this package can reach the underlying collections, so
// every write necessarily passes the validation layer.
type Repository interface {
	GetUser(id string) (model.User, error)
	PutUser(u model.User)
	ListUsers() []model.User

	GetPost(id string) (model.Post, error)
	AppendPost(p model.Post)
	UpdatePost(p model.Post) error
	ListPosts() []model.Post

	AppendInterest(i model.Interest)
	GetInterest(id string) (model.Interest, error)
	UpdateInterestStatus(id string, status model.InterestStatus) bool
	ListInterests() []model.Interest
	ListInterestsForPost(postID string) []model.Interest
	ListInterestsForUser(userID string) []model.Interest
}

// Store holds the session's canonical collections. Lookups are id-keyed;
// postOrder keeps the feed most-recent-first (new posts are prepended),
// interestOrder keeps insertion order. No operation removes an entity.
type Store struct {
	mu  sync.RWMutex
	log *zap.Logger

	users         map[string]model.User
	posts         map[string]model.Post
	postOrder     []string
	interests     map[string]model.Interest
	interestOrder []string
}

func New(logger *zap.Logger) *Store {
	return &Store{
		log:       logger,
		users:     make(map[string]model.User),
		posts:     make(map[string]model.Post),
		interests: make(map[string]model.Interest),
	}
}
