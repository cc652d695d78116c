package domain

import "time"

// Role classifies a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleInternal Role = "internal"
	RoleExternal Role = "external"
)

// MaxUsernameLength mirrors the users.username column width.
const MaxUsernameLength = 39

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInternal, RoleExternal:
		return true
	}
	return false
}

// Reactions holds the per-kind reaction counters of a user.
type Reactions struct {
	PlusOne  int `json:"plus_one" bson:"plus_one"`
	MinusOne int `json:"minus_one" bson:"minus_one"`
	Laugh    int `json:"laugh" bson:"laugh"`
	Confused int `json:"confused" bson:"confused"`
	Heart    int `json:"heart" bson:"heart"`
	Hooray   int `json:"hooray" bson:"hooray"`
	Rocket   int `json:"rocket" bson:"rocket"`
	Eyes     int `json:"eyes" bson:"eyes"`
}

// Valid reports whether every counter is non-negative.
func (r Reactions) Valid() bool {
	for _, n := range []int{r.PlusOne, r.MinusOne, r.Laugh, r.Confused, r.Heart, r.Hooray, r.Rocket, r.Eyes} {
		if n < 0 {
			return false
		}
	}
	return true
}

// User is the only aggregate of the service.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Role           Role       `json:"role"`
	Reactions      Reactions  `json:"reactions"`
	LastReactionAt *time.Time `json:"last_reaction_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewUser builds a user ready to be persisted. An empty role falls back to
// RoleExternal.
func NewUser(id, username string, role Role, reactions Reactions, lastReactionAt *time.Time, now time.Time) *User {
	if role == "" {
		role = RoleExternal
	}
	now = now.UTC()
	return &User{
		ID:             id,
		Username:       username,
		Role:           role,
		Reactions:      reactions,
		LastReactionAt: utcPtr(lastReactionAt),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ApplyChanges replaces each field whose new value is non-nil and stamps
// UpdatedAt. A nil argument leaves the stored value untouched; zero values
// are applied like any other.
func (u *User) ApplyChanges(role *Role, reactions *Reactions, lastReactionAt *time.Time, now time.Time) {
	if role != nil {
		u.Role = *role
	}
	if reactions != nil {
		u.Reactions = *reactions
	}
	if lastReactionAt != nil {
		u.LastReactionAt = utcPtr(lastReactionAt)
	}
	u.UpdatedAt = now.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
