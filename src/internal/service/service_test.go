package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DeepanshuSagore/HackFinder/src/internal/api/apiErrors"
	"github.com/DeepanshuSagore/HackFinder/src/internal/model"
	"github.com/DeepanshuSagore/HackFinder/src/internal/seed"
	"github.com/DeepanshuSagore/HackFinder/src/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, time.February, 1, 10, 30, 0, 0, time.UTC)

// createTestService wires a real in-memory store with the demo fixtures,
// a fixed clock and deterministic ids. The session user is Aditi ("1"),
// who owns post "1" and has sent interest "2".
func createTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	logger := zap.NewNop()
	st := store.New(logger)
	seed.Load(st, logger)

	n := 0
	svc := &Service{
		repo: st,
		log:  logger,
		session: Session{
			ID:     "1",
			Name:   "Aditi Sharma",
			Email:  "aditi@hackfinder.in",
			Avatar: "/assets/female-user.png",
		},
		now: func() time.Time { return testNow },
		newID: func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		},
	}
	return svc, st
}

func assertCode(t *testing.T, err error, code apiErrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var apiErr apiErrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
}

func TestExpressInterest_Success(t *testing.T) {
	svc, st := createTestService(t)

	interest, err := svc.ExpressInterest(context.Background(), "3", "  I can lead the ML side.  ", []string{"ML Engineer"})

	require.NoError(t, err)
	assert.Equal(t, "gen-1", interest.ID)
	assert.Equal(t, "1", interest.UserID)
	assert.Equal(t, "3", interest.PostID)
	assert.Equal(t, "I can lead the ML side.", interest.Message)
	assert.Equal(t, []string{"ML Engineer"}, interest.Roles)
	assert.Equal(t, model.StatusPending, interest.Status)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), interest.CreatedAt)

	stored, err := st.GetInterest("gen-1")
	require.NoError(t, err)
	assert.Equal(t, interest, stored)
}

func TestExpressInterest_EmptyMessage(t *testing.T) {
	svc, _ := createTestService(t)

	for _, postID := range []string{"3", "4"} {
		_, err := svc.ExpressInterest(context.Background(), postID, "   \t  ", []string{"ML Engineer"})
		assertCode(t, err, apiErrors.EmptyMessage)
	}
}

func TestExpressInterest_UnknownPost(t *testing.T) {
	svc, _ := createTestService(t)

	_, err := svc.ExpressInterest(context.Background(), "missing", "hello there", nil)
	assertCode(t, err, apiErrors.NotFound)
}

func TestExpressInterest_OwnPost(t *testing.T) {
	svc, _ := createTestService(t)

	_, err := svc.ExpressInterest(context.Background(), "1", "interested in my own post", nil)
	assertCode(t, err, apiErrors.OwnPost)
}

func TestExpressInterest_RoleRequired(t *testing.T) {
	svc, _ := createTestService(t)

	_, err := svc.ExpressInterest(context.Background(), "3", "count me in", nil)
	assertCode(t, err, apiErrors.RoleRequired)
}

func TestExpressInterest_RoleNotOpen(t *testing.T) {
	svc, _ := createTestService(t)

	_, err := svc.ExpressInterest(context.Background(), "3", "count me in", []string{"UI/UX Designer"})
	assertCode(t, err, apiErrors.RoleRequired)
}

func TestExpressInterest_Duplicate(t *testing.T) {
	svc, _ := createTestService(t)

	_, err := svc.ExpressInterest(context.Background(), "4", "first message", nil)
	require.NoError(t, err)

	_, err = svc.ExpressInterest(context.Background(), "4", "a completely different message", nil)
	assertCode(t, err, apiErrors.AlreadyInterested)
}

func TestExpressInterest_DuplicateWithSeededInterest(t *testing.T) {
	svc, _ := createTestService(t)

	// Interest "2" (user 1 -> post 2) is seeded.
	_, err := svc.ExpressInterest(context.Background(), "2", "trying again", nil)
	assertCode(t, err, apiErrors.AlreadyInterested)
}

func TestExpressInterest_IndividualPostDropsRoles(t *testing.T) {
	svc, st := createTestService(t)

	interest, err := svc.ExpressInterest(context.Background(), "4", "let's build", []string{"Blockchain Developer"})
	require.NoError(t, err)
	assert.Empty(t, interest.Roles)

	stored, err := st.GetInterest(interest.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Roles)
}

func TestRespondToInterest_LastWriteWins(t *testing.T) {
	svc, st := createTestService(t)

	require.NoError(t, svc.RespondToInterest(context.Background(), "1", model.StatusAccepted))
	require.NoError(t, svc.RespondToInterest(context.Background(), "1", model.StatusDeclined))

	stored, err := st.GetInterest("1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusDeclined, stored.Status)
}

func TestRespondToInterest_UnknownIDIsNoOp(t *testing.T) {
	svc, st := createTestService(t)

	err := svc.RespondToInterest(context.Background(), "missing", model.StatusAccepted)
	assert.NoError(t, err)
	assert.Len(t, st.ListInterests(), 2)
}

func TestRespondToInterest_InvalidStatus(t *testing.T) {
	svc, _ := createTestService(t)

	err := svc.RespondToInterest(context.Background(), "1", model.StatusPending)
	assertCode(t, err, apiErrors.InvalidStatus)

	err = svc.RespondToInterest(context.Background(), "1", model.InterestStatus("merged"))
	assertCode(t, err, apiErrors.InvalidStatus)
}

func TestCreatePost_TeamParsing(t *testing.T) {
	svc, st := createTestService(t)

	post, err := svc.CreatePost(context.Background(), model.PostDraft{
		PostType:    model.PostTypeTeam,
		Title:       "Realtime Collab Editor",
		Description: "CRDT-based editor, need help",
		TechTags:    " Go, , React ,WebSockets",
		RolesNeeded: "Frontend Developer, Backend Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "React", "WebSockets"}, post.TechTags)
	assert.Equal(t, []string{"Frontend Developer", "Backend Engineer"}, post.RolesNeeded)
	assert.Equal(t, 1, post.TeamSize)
	assert.Equal(t, 3, post.TeamCapacity)
	assert.Empty(t, post.DesiredRoles)
	assert.Equal(t, "1", post.OwnerID)
	assert.Equal(t, "Aditi Sharma", post.OwnerName)

	// New posts go to the head of the feed.
	feed := st.ListPosts()
	require.NotEmpty(t, feed)
	assert.Equal(t, post.ID, feed[0].ID)
}

func TestCreatePost_IndividualDefaults(t *testing.T) {
	svc, _ := createTestService(t)

	post, err := svc.CreatePost(context.Background(), model.PostDraft{
		PostType:     model.PostTypeIndividual,
		Title:        "Designer looking for a team",
		Description:  "Happy to own the design track",
		TechTags:     "Figma",
		DesiredRoles: "UI/UX Designer",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"UI/UX Designer"}, post.DesiredRoles)
	assert.Zero(t, post.TeamSize)
	assert.Zero(t, post.TeamCapacity)
	assert.Empty(t, post.RolesNeeded)
	assert.Equal(t, "Open to discussions", post.Availability)
	assert.Equal(t, "Flexible", post.TimeCommitment)
	assert.Equal(t, "3 months", post.Duration)
	assert.InDelta(t, 0.8, post.MatchScore, 0.0001)
}

func TestCreatePost_MissingRequiredFields(t *testing.T) {
	svc, _ := createTestService(t)

	_, err := svc.CreatePost(context.Background(), model.PostDraft{
		PostType:    model.PostTypeTeam,
		Title:       "   ",
		Description: "desc",
	})
	assertCode(t, err, apiErrors.ValidationFailed)

	_, err = svc.CreatePost(context.Background(), model.PostDraft{
		PostType:    model.PostType("something_else"),
		Title:       "t",
		Description: "d",
	})
	assertCode(t, err, apiErrors.ValidationFailed)
}

func TestUpdateProfile_RenameCascades(t *testing.T) {
	svc, st := createTestService(t)

	name := "Aditi S."
	updated, err := svc.UpdateProfile(context.Background(), model.ProfileUpdate{UserID: "1", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Aditi S.", updated.Name)

	// User record.
	u, err := st.GetUser("1")
	require.NoError(t, err)
	assert.Equal(t, "Aditi S.", u.Name)

	// Session identity.
	assert.Equal(t, "Aditi S.", svc.Session().Name)

	// Owned post snapshot and the matching team-member entry.
	p1, err := st.GetPost("1")
	require.NoError(t, err)
	assert.Equal(t, "Aditi S.", p1.OwnerName)
	assert.Equal(t, "Aditi S.", p1.CurrentMembers[0].Name)
	assert.Equal(t, "Rohan Desai", p1.CurrentMembers[1].Name)

	// Posts owned by other users stay untouched.
	p3, err := st.GetPost("3")
	require.NoError(t, err)
	assert.Equal(t, "Karan Gupta", p3.OwnerName)
}

func TestUpdateProfile_SkillsOmittedVersusCleared(t *testing.T) {
	svc, st := createTestService(t)

	bio := "new bio"
	_, err := svc.UpdateProfile(context.Background(), model.ProfileUpdate{UserID: "1", Bio: &bio})
	require.NoError(t, err)

	u, err := st.GetUser("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "Node.js", "Python", "TensorFlow", "PostgreSQL"}, u.Skills)

	_, err = svc.UpdateProfile(context.Background(), model.ProfileUpdate{UserID: "1", Skills: []string{}})
	require.NoError(t, err)

	u, err = st.GetUser("1")
	require.NoError(t, err)
	assert.Empty(t, u.Skills)
}

func TestUpdateProfile_UnknownTargetIsNoOp(t *testing.T) {
	svc, st := createTestService(t)

	name := "Ghost"
	updated, err := svc.UpdateProfile(context.Background(), model.ProfileUpdate{UserID: "99", Name: &name})
	assert.NoError(t, err)
	assert.Empty(t, updated.ID)
	assert.Len(t, st.ListUsers(), 4)
}

func TestUpdateProfile_SynthesizesSessionProfile(t *testing.T) {
	logger := zap.NewNop()
	st := store.New(logger)
	svc := NewService(st, logger, Session{ID: "9", Name: "Fresh User", Email: "fresh@hackfinder.in", Avatar: "/assets/male-user.png"})

	bio := "first edit"
	updated, err := svc.UpdateProfile(context.Background(), model.ProfileUpdate{UserID: "9", Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Fresh User", updated.Name)
	assert.Equal(t, "first edit", updated.Bio)
	assert.Equal(t, "/assets/male-user.png", updated.Avatar)

	u, err := st.GetUser("9")
	require.NoError(t, err)
	assert.Equal(t, updated, u)
}

func TestCurrentUser_SynthesizedIsNotPersisted(t *testing.T) {
	logger := zap.NewNop()
	st := store.New(logger)
	svc := NewService(st, logger, Session{ID: "9", Name: "Fresh User", Email: "fresh@hackfinder.in", Avatar: "/assets/male-user.png"})

	u := svc.CurrentUser(context.Background())
	assert.Equal(t, "Fresh User", u.Name)
	assert.Empty(t, u.Bio)
	assert.Empty(t, u.Skills)
	assert.False(t, u.Verified)

	_, err := st.GetUser("9")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
