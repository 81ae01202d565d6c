package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConnWithoutTransactionReturnsDB(t *testing.T) {
	db := &sql.DB{}
	if got := Conn(context.Background(), db); got != db {
		t.Fatalf("expected db executor without a transaction")
	}
}

func TestConnReturnsCarriedTransaction(t *testing.T) {
	tx := &sql.Tx{}
	ctx := context.WithValue(context.Background(), txKey{}, tx)
	if got := Conn(ctx, &sql.DB{}); got != tx {
		t.Fatalf("expected transaction executor")
	}
}

func TestRunInTxJoinsOuterTransaction(t *testing.T) {
	tm := NewTxManager(nil)
	ctx := context.WithValue(context.Background(), txKey{}, &sql.Tx{})

	called := false
	err := tm.RunInTx(ctx, func(inner context.Context) error {
		called = true
		if inner != ctx {
			t.Fatalf("nested call should reuse the outer context")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("expected fn to run in outer tx, err=%v called=%v", err, called)
	}
}

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) || IsUniqueViolation(fk) {
		t.Fatalf("unique violation misclassified")
	}
	if !IsForeignKeyViolation(fk) || IsForeignKeyViolation(unique) {
		t.Fatalf("foreign key violation misclassified")
	}
	if IsUniqueViolation(errors.New("plain")) {
		t.Fatalf("plain error is not a pg error")
	}
}

func TestSchemaDeclaresPartialReviewIndex(t *testing.T) {
	if !strings.Contains(schema, "ON reviews (user_id, product_id) WHERE is_active") {
		t.Fatalf("schema must enforce one active review per user and product")
	}
}
