package database

import (
	"context"
	"errors"
	"testing"
)

func openWithItems(t *testing.T) Database {
	t.Helper()
	ctx := context.Background()

	db, err := NewDatabase(ctx, "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Session(ctx).Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT)").Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func countItems(t *testing.T, db Database) int64 {
	t.Helper()
	var count int64
	if err := db.Session(context.Background()).Raw("SELECT COUNT(*) FROM test_items").Scan(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestTransaction_Commit(t *testing.T) {
	ctx := context.Background()
	db := openWithItems(t)

	txn, err := NewTransaction(ctx, db)
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}

	txCtx := txn.Context(ctx)
	if !InTransaction(txCtx) {
		t.Fatal("expected context to carry the transaction")
	}
	if err := db.Session(txCtx).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := txn.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := countItems(t, db); got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}

	if err := txn.Commit(); err != nil {
		t.Errorf("second Commit should not error: %v", err)
	}
	if err := txn.Rollback(); err != nil {
		t.Errorf("Rollback after Commit should not error: %v", err)
	}
}

func TestTransaction_Rollback(t *testing.T) {
	ctx := context.Background()
	db := openWithItems(t)

	txn, err := NewTransaction(ctx, db)
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}

	if err := db.Session(txn.Context(ctx)).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := txn.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if got := countItems(t, db); got != 0 {
		t.Errorf("expected count 0 after rollback, got %d", got)
	}

	if err := txn.Rollback(); err != nil {
		t.Errorf("second Rollback should not error: %v", err)
	}
}

func TestWithTransaction_Success(t *testing.T) {
	db := openWithItems(t)

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		return db.Session(ctx).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error
	})
	if err != nil {
		t.Fatalf("WithTransaction: %v", err)
	}
	if got := countItems(t, db); got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}
}

func TestWithTransaction_Error(t *testing.T) {
	db := openWithItems(t)

	testErr := errors.New("test error")
	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		if err := db.Session(ctx).Exec("INSERT INTO test_items (name) VALUES (?)", "item1").Error; err != nil {
			return err
		}
		return testErr
	})
	if !errors.Is(err, testErr) {
		t.Errorf("expected test error, got: %v", err)
	}
	if got := countItems(t, db); got != 0 {
		t.Errorf("expected count 0 after error, got %d", got)
	}
}

func TestWithTransaction_NestedJoinsOuter(t *testing.T) {
	db := openWithItems(t)

	testErr := errors.New("outer failure")
	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		inner := WithTransaction(ctx, db, func(ctx context.Context) error {
			return db.Session(ctx).Exec("INSERT INTO test_items (name) VALUES (?)", "inner").Error
		})
		if inner != nil {
			return inner
		}
		return testErr
	})
	if !errors.Is(err, testErr) {
		t.Fatalf("expected outer error, got: %v", err)
	}
	if got := countItems(t, db); got != 0 {
		t.Errorf("inner write should roll back with the outer transaction, got %d rows", got)
	}
}

func TestWithTransactionResult(t *testing.T) {
	db := openWithItems(t)

	result, err := WithTransactionResult(context.Background(), db, func(ctx context.Context) (int, error) {
		var val int
		if err := db.Session(ctx).Raw("SELECT 42").Scan(&val).Error; err != nil {
			return 0, err
		}
		return val, nil
	})
	if err != nil {
		t.Fatalf("WithTransactionResult: %v", err)
	}
	if result != 42 {
		t.Errorf("expected result 42, got %d", result)
	}

	testErr := errors.New("test error")
	_, err = WithTransactionResult(context.Background(), db, func(context.Context) (int, error) {
		return 0, testErr
	})
	if !errors.Is(err, testErr) {
		t.Errorf("expected test error, got: %v", err)
	}
}
