package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type txKey struct{}

func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

// InTransaction reports whether ctx carries an open transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := txFromContext(ctx)
	return ok
}

// Transaction wraps a GORM transaction with commit/rollback semantics.
type Transaction struct {
	tx       *gorm.DB
	finished bool
}

// NewTransaction starts a new database transaction.
func NewTransaction(ctx context.Context, db Database) (*Transaction, error) {
	tx := db.Session(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &Transaction{tx: tx}, nil
}

// Context returns ctx carrying the transaction, so Database.Session joins it.
func (t *Transaction) Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, t.tx)
}

// Commit commits the transaction.
func (t *Transaction) Commit() error {
	if t.finished {
		return nil
	}
	if err := t.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	t.finished = true
	return nil
}

// Rollback rolls back the transaction if not already finished.
func (t *Transaction) Rollback() error {
	if t.finished {
		return nil
	}
	if err := t.tx.Rollback().Error; err != nil {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	t.finished = true
	return nil
}

// WithTransaction runs fn with a context carrying a transaction, committing
// on success or rolling back on error. If ctx already carries a transaction
// fn joins it and the outermost call decides the outcome.
func WithTransaction(ctx context.Context, db Database, fn func(ctx context.Context) error) error {
	_, err := WithTransactionResult(ctx, db, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// WithTransactionResult is WithTransaction for functions that return a value.
func WithTransactionResult[T any](ctx context.Context, db Database, fn func(ctx context.Context) (T, error)) (T, error) {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	var result T

	txn, err := NewTransaction(ctx, db)
	if err != nil {
		return result, err
	}

	defer func() {
		if !txn.finished {
			_ = txn.Rollback()
		}
	}()

	result, err = fn(txn.Context(ctx))
	if err != nil {
		return result, err
	}

	if err := txn.Commit(); err != nil {
		return result, err
	}

	return result, nil
}
