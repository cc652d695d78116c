package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foundever/reactions/internal/core/domain"
	"github.com/foundever/reactions/internal/core/ports"
	"github.com/foundever/reactions/internal/pkg/metrics"
)

// UsernameClaimer abstracts the short-lived username reservation (Redis)
// taken around a create so two concurrent requests for the same username
// cannot both pass the existence check. Claim returns a token unique to the
// reservation; Release only drops the reservation still held under it.
type UsernameClaimer interface {
	Claim(ctx context.Context, username string) (token string, ok bool, err error)
	Release(ctx context.Context, username, token string) error
}

type noopClaimer struct{}

func (noopClaimer) Claim(context.Context, string) (string, bool, error) { return "", true, nil }
func (noopClaimer) Release(context.Context, string, string) error       { return nil }

// UserService implements ports.UserService.
type UserService struct {
	repo   ports.UserRepository
	claims UsernameClaimer
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewUserService wires the process layer. claims may be nil, in which case
// only the store's unique index guards concurrent creates.
func NewUserService(repo ports.UserRepository, claims UsernameClaimer, logger zerolog.Logger) *UserService {
	if claims == nil {
		claims = noopClaimer{}
	}
	return &UserService{
		repo:   repo,
		claims: claims,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// CreateUser persists a new user, rejecting usernames that are already taken.
func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (user *domain.User, err error) {
	defer s.observe(metrics.OpCreate, time.Now(), &err)

	token, claimed, claimErr := s.claims.Claim(ctx, in.Username)
	switch {
	case claimErr != nil:
		s.logger.Warn().Err(claimErr).Str("username", in.Username).Msg("username claim failed, relying on unique index")
	case !claimed:
		metrics.UserOperationRejectionsTotal.WithLabelValues(metrics.OpCreate, "username_claimed").Inc()
		return nil, &domain.UsernameAlreadyExistsError{Username: in.Username}
	default:
		defer func() {
			if relErr := s.claims.Release(context.WithoutCancel(ctx), in.Username, token); relErr != nil {
				s.logger.Warn().Err(relErr).Str("username", in.Username).Msg("failed to release username claim")
			}
		}()
	}

	exists, err := s.usernameExists(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if exists {
		metrics.UserOperationRejectionsTotal.WithLabelValues(metrics.OpCreate, "username_taken").Inc()
		return nil, &domain.UsernameAlreadyExistsError{Username: in.Username}
	}

	var role domain.Role
	if in.Role != nil {
		role = *in.Role
	}
	var reactions domain.Reactions
	if in.Reactions != nil {
		reactions = *in.Reactions
	}

	user = domain.NewUser(s.newID(), in.Username, role, reactions, in.LastReactionAt, s.now())
	if err := s.repo.Create(ctx, user); err != nil {
		if domain.IsUsernameTaken(err) {
			metrics.UserOperationRejectionsTotal.WithLabelValues(metrics.OpCreate, "username_taken").Inc()
			return nil, err
		}
		s.logger.Error().Err(err).Str("username", in.Username).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

// UpdateUser applies the supplied fields to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, in ports.UpdateUserInput) (user *domain.User, err error) {
	defer s.observe(metrics.OpUpdate, time.Now(), &err)

	exists, err := s.usernameExists(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if !exists {
		metrics.UserOperationRejectionsTotal.WithLabelValues(metrics.OpUpdate, "user_not_found").Inc()
		return nil, domain.ErrUserDoesNotExist
	}

	user, err = s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	user.ApplyChanges(in.Role, in.Reactions, in.LastReactionAt, s.now())

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user updated")
	return user, nil
}

// DeleteUser hard-deletes the user with the given username.
func (s *UserService) DeleteUser(ctx context.Context, username string) (err error) {
	defer s.observe(metrics.OpDelete, time.Now(), &err)

	exists, err := s.usernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !exists {
		metrics.UserOperationRejectionsTotal.WithLabelValues(metrics.OpDelete, "user_not_found").Inc()
		return domain.ErrUserDoesNotExist
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.repo.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", username).Msg("user deleted")
	return nil
}

// ListUsers returns every user, or only the one whose username equals the
// filter when it is non-empty.
func (s *UserService) ListUsers(ctx context.Context, username string) (views []ports.UserView, err error) {
	defer s.observe(metrics.OpList, time.Now(), &err)

	users, err := s.repo.List(ctx, ports.ListUsersFilter{Username: username})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	views = make([]ports.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return views, nil
}

func (s *UserService) usernameExists(ctx context.Context, username string) (bool, error) {
	return s.repo.UsernameExists(ctx, username)
}

// observe records the outcome and latency of one operation. errp is read
// after the operation returns.
func (s *UserService) observe(op string, start time.Time, errp *error) {
	metrics.UserOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	result := metrics.ResultOK
	if err := *errp; err != nil {
		result = metrics.ResultError
		if errors.Is(err, domain.ErrUserDoesNotExist) || domain.IsUsernameTaken(err) {
			result = metrics.ResultRejected
		}
	}
	metrics.UserOperationsTotal.WithLabelValues(op, result).Inc()
}

func toUserView(u *domain.User) ports.UserView {
	v := ports.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Reactions: u.Reactions,
		CreatedAt: formatTimestamp(u.CreatedAt),
		UpdatedAt: formatTimestamp(u.UpdatedAt),
	}
	if u.LastReactionAt != nil {
		ts := formatTimestamp(*u.LastReactionAt)
		v.LastReactionAt = &ts
	}
	return v
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
