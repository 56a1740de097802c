// Package repository provides database access for all backend entities.
// Each entity has an explicit interface listing its query methods and a
// GORM-backed implementation writing the predicates out literally.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Scope runs a function inside a single database transaction. The
// transaction handle travels in the context so repositories pick it up
// transparently; commit on nil return, rollback otherwise.
//
// Mutating service methods wrap their check-then-write sequence in one
// scope. The advisory uniqueness pre-checks still race with concurrent
// writers; the unique indexes on the tables are the actual backstop and
// surface through IsDuplicateKey.
type Scope interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// GormScope implements Scope over gorm's transaction support.
type GormScope struct {
	db *gorm.DB
}

func NewGormScope(db *gorm.DB) *GormScope {
	return &GormScope{db: db}
}

func (s *GormScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// InScope runs fn within scope and returns its result alongside the
// transaction outcome.
func InScope[T any](ctx context.Context, scope Scope, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := scope.Execute(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	return result, err
}

// conn returns the transaction bound to ctx if a Scope is active,
// otherwise the base handle.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// IsDuplicateKey reports whether err is the store's unique-constraint
// conflict signal. Requires TranslateError on the gorm config.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
