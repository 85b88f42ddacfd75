package model

import "time"

type PostType string

const (
	PostTypeTeam       PostType = "team_seeking_members"
	PostTypeIndividual PostType = "individual_seeking_team"
)

type InterestStatus string

const (
	StatusPending  InterestStatus = "pending"
	StatusAccepted InterestStatus = "accepted"
	StatusDeclined InterestStatus = "declined"
)

// User is the full profile record. A user that has never edited their
// profile is represented by a synthesized default (identity fields only,
// Verified=false) which is not stored until an explicit edit.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Avatar     string   `json:"avatar"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Roles      []string `json:"roles"`
	Experience string   `json:"experience"`
	Location   string   `json:"location"`
	GitHub     string   `json:"github"`
	LinkedIn   string   `json:"linkedin"`
	Verified   bool     `json:"verified"`
}

type TeamMember struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// Post is a tagged union on Type: RolesNeeded/TeamSize/TeamCapacity/
// CurrentMembers belong to team_seeking_members, DesiredRoles/Availability
// to individual_seeking_team. NewTeamPost and NewIndividualPost are the
// only constructors, so a post never carries both role lists.
type Post struct {
	ID          string    `json:"id"`
	Type        PostType  `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	OwnerAvatar string    `json:"owner_avatar"`
	TechTags    []string  `json:"tech_tags"`
	CreatedAt   time.Time `json:"created_at"`

	RolesNeeded    []string     `json:"roles_needed,omitempty"`
	TeamSize       int          `json:"team_size,omitempty"`
	TeamCapacity   int          `json:"team_capacity,omitempty"`
	CurrentMembers []TeamMember `json:"current_members,omitempty"`

	DesiredRoles []string `json:"desired_roles,omitempty"`
	Availability string   `json:"availability,omitempty"`

	// Legacy fields kept for older post records.
	WorkPreference   string  `json:"work_preference,omitempty"`
	TimeCommitment   string  `json:"time_commitment,omitempty"`
	Duration         string  `json:"duration,omitempty"`
	MatchScore       float64 `json:"match_score,omitempty"`
	MatchExplanation string  `json:"match_explanation,omitempty"`
}

func NewTeamPost(id, title, description string, owner User, techTags, rolesNeeded []string, createdAt time.Time) Post {
	return Post{
		ID:           id,
		Type:         PostTypeTeam,
		Title:        title,
		Description:  description,
		OwnerID:      owner.ID,
		OwnerName:    owner.Name,
		OwnerAvatar:  owner.Avatar,
		TechTags:     techTags,
		CreatedAt:    createdAt,
		RolesNeeded:  rolesNeeded,
		TeamSize:     1,
		TeamCapacity: 1 + len(rolesNeeded),
	}
}

func NewIndividualPost(id, title, description string, owner User, techTags, desiredRoles []string, createdAt time.Time) Post {
	return Post{
		ID:           id,
		Type:         PostTypeIndividual,
		Title:        title,
		Description:  description,
		OwnerID:      owner.ID,
		OwnerName:    owner.Name,
		OwnerAvatar:  owner.Avatar,
		TechTags:     techTags,
		CreatedAt:    createdAt,
		DesiredRoles: desiredRoles,
	}
}

// OpenRoles returns the role list of whichever variant the post is.
func (p Post) OpenRoles() []string {
	if p.Type == PostTypeTeam {
		return p.RolesNeeded
	}
	return p.DesiredRoles
}

type Interest struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	PostID    string         `json:"post_id"`
	Message   string         `json:"message"`
	Roles     []string       `json:"roles"`
	Status    InterestStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// PostDraft is the creation form payload. TechTags and the role input are
// comma-separated strings, parsed by the service.
type PostDraft struct {
	PostType       PostType `json:"post_type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	TechTags       string   `json:"tech_tags"`
	RolesNeeded    string   `json:"roles_needed"`
	DesiredRoles   string   `json:"desired_roles"`
	WorkPreference string   `json:"work_preference"`
	TimeCommitment string   `json:"time_commitment"`
}

// ProfileUpdate merges onto an existing profile. A nil slice means "keep
// previous", an explicit empty slice clears. Nil pointers keep the
// previous value. An empty Avatar falls back to the previous avatar, then
// the session identity's avatar.
type ProfileUpdate struct {
	UserID     string   `json:"user_id"`
	Name       *string  `json:"name,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	Avatar     string   `json:"avatar,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	Experience *string  `json:"experience,omitempty"`
	Location   *string  `json:"location,omitempty"`
	GitHub     *string  `json:"github,omitempty"`
	LinkedIn   *string  `json:"linkedin,omitempty"`
	Verified   *bool    `json:"verified,omitempty"`
}

type AppError string

func (e AppError) Error() string { return string(e) }

const (
	ErrNotFound = AppError("NOT_FOUND")
)
