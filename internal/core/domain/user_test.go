package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRole_Valid(t *testing.T) {
	cases := map[Role]bool{
		RoleAdmin:    true,
		RoleInternal: true,
		RoleExternal: true,
		"":           false,
		"Admin":      false,
		"guest":      false,
	}
	for role, want := range cases {
		if got := role.Valid(); got != want {
			t.Errorf("Role(%q).Valid() = %v, want %v", role, got, want)
		}
	}
}

func TestReactions_Valid(t *testing.T) {
	if !(Reactions{}).Valid() {
		t.Error("zero reactions must be valid")
	}
	if !(Reactions{PlusOne: 3, Eyes: 1}).Valid() {
		t.Error("positive counters must be valid")
	}
	if (Reactions{Rocket: -1}).Valid() {
		t.Error("negative counter must be invalid")
	}
}

func TestNewUser_Defaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CST", -6*3600))
	u := NewUser("id-1", "bob_esponja", "", Reactions{}, nil, now)

	if u.Role != RoleExternal {
		t.Errorf("expected default role %q, got %q", RoleExternal, u.Role)
	}
	if u.LastReactionAt != nil {
		t.Errorf("expected nil last_reaction_at, got %v", u.LastReactionAt)
	}
	if !u.CreatedAt.Equal(now) || !u.UpdatedAt.Equal(now) {
		t.Errorf("timestamps not set from now: %v / %v", u.CreatedAt, u.UpdatedAt)
	}
	if u.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC timestamps, got %v", u.CreatedAt.Location())
	}
}

func TestUser_ApplyChanges_OnlyPresentFields(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	last := created.Add(time.Hour)
	u := NewUser("id-1", "calamardo", RoleInternal, Reactions{Heart: 2}, &last, created)

	admin := RoleAdmin
	later := created.Add(48 * time.Hour)
	u.ApplyChanges(&admin, nil, nil, later)

	if u.Role != RoleAdmin {
		t.Errorf("role not replaced: %q", u.Role)
	}
	if u.Reactions.Heart != 2 {
		t.Errorf("reactions must stay untouched, got %+v", u.Reactions)
	}
	if u.LastReactionAt == nil || !u.LastReactionAt.Equal(last) {
		t.Errorf("last_reaction_at must stay untouched, got %v", u.LastReactionAt)
	}
	if !u.UpdatedAt.Equal(later) {
		t.Errorf("updated_at not refreshed: %v", u.UpdatedAt)
	}
	if !u.CreatedAt.Equal(created) {
		t.Errorf("created_at must not change: %v", u.CreatedAt)
	}
}

func TestUser_ApplyChanges_ZeroReactionsAreApplied(t *testing.T) {
	now := time.Now()
	u := NewUser("id-1", "patricio", RoleExternal, Reactions{PlusOne: 9, Laugh: 4}, nil, now)

	u.ApplyChanges(nil, &Reactions{}, nil, now)

	if u.Reactions != (Reactions{}) {
		t.Errorf("explicit zero reactions must replace the set, got %+v", u.Reactions)
	}
}

func TestUsernameAlreadyExistsError(t *testing.T) {
	err := fmt.Errorf("create user: %w", &UsernameAlreadyExistsError{Username: "bob_esponja"})

	if !IsUsernameTaken(err) {
		t.Fatal("expected wrapped error to be detected")
	}
	var target *UsernameAlreadyExistsError
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed")
	}
	if got := target.Error(); got != "The username 'bob_esponja' is already in use." {
		t.Errorf("unexpected message %q", got)
	}
	if IsUsernameTaken(ErrUserDoesNotExist) {
		t.Error("ErrUserDoesNotExist must not be reported as a username conflict")
	}
}

func TestErrUserDoesNotExist(t *testing.T) {
	if got := ErrUserDoesNotExist.Error(); got != "user does not exist" {
		t.Errorf("unexpected message %q", got)
	}
	if !errors.Is(fmt.Errorf("update user: %w", ErrUserDoesNotExist), ErrUserDoesNotExist) {
		t.Error("expected wrapped sentinel to match")
	}
}
