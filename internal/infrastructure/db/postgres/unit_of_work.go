package postgres

import (
	"context"

	"gorm.io/gorm"
)

// The helpers below run one single-row write inside its own transaction and
// then reload the row, so the caller's value reflects exactly what the store
// committed (defaults, precision). gorm's Transaction commits when fn returns
// nil and rolls back on error or panic, so the session is released on every
// path.

// create inserts instance and refreshes it from the store.
func create[T any](ctx context.Context, db *gorm.DB, instance *T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(instance).Error; err != nil {
			return err
		}
		return tx.First(instance).Error
	})
}

// update writes every column of instance, matched by primary key, and
// refreshes it. A missing row yields gorm.ErrRecordNotFound.
func update[T any](ctx context.Context, db *gorm.DB, instance *T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(instance).Select("*").Updates(instance)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(instance).Error
	})
}

// remove deletes instance by primary key. A missing row yields
// gorm.ErrRecordNotFound.
func remove[T any](ctx context.Context, db *gorm.DB, instance *T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(instance)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
