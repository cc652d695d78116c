package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/foundever/reactions/internal/core/domain"
	"github.com/foundever/reactions/internal/core/ports"
)

// userRecord is the row shape of the users table.
type userRecord struct {
	ID             string           `gorm:"primaryKey;type:varchar(36)"`
	Username       string           `gorm:"type:varchar(39);not null;uniqueIndex:ux_users_username"`
	Role           string           `gorm:"type:user_role;not null"`
	Reactions      domain.Reactions `gorm:"type:json;serializer:json;not null"`
	LastReactionAt *time.Time
	CreatedAt      time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (userRecord) TableName() string { return "users" }

func toRecord(u *domain.User) userRecord {
	return userRecord{
		ID:             u.ID,
		Username:       u.Username,
		Role:           string(u.Role),
		Reactions:      u.Reactions,
		LastReactionAt: u.LastReactionAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (r *userRecord) toDomain() *domain.User {
	u := &domain.User{
		ID:        r.ID,
		Username:  r.Username,
		Role:      domain.Role(r.Role),
		Reactions: r.Reactions,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
	if r.LastReactionAt != nil {
		ts := r.LastReactionAt.UTC()
		u.LastReactionAt = &ts
	}
	return u
}

// UserRepository implements ports.UserRepository on PostgreSQL through GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{db: store.DB()}
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserDoesNotExist
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	q := r.db.WithContext(ctx).Model(&userRecord{})
	if filter.Username != "" {
		q = q.Where("username = ?", filter.Username)
	}

	var recs []userRecord
	if err := q.Order("created_at, id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, 0, len(recs))
	for i := range recs {
		users = append(users, recs[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	rec := toRecord(user)
	if err := create(ctx, r.db, &rec); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.UsernameAlreadyExistsError{Username: user.Username}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	*user = *rec.toDomain()
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	rec := toRecord(user)
	if err := update(ctx, r.db, &rec); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserDoesNotExist
		}
		return fmt.Errorf("update user: %w", err)
	}
	*user = *rec.toDomain()
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, user *domain.User) error {
	rec := userRecord{ID: user.ID}
	if err := remove(ctx, r.db, &rec); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserDoesNotExist
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
