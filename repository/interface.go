package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Readonly for wrapping sqlx functionalities
type Readonly interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Transaction for wrapping sqlx functionalities
type Transaction interface {
	Readonly

	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

var _ Transaction = &sqlx.DB{}
var _ Transaction = &sqlx.Tx{}

// Provider for creating Readonly and Transaction
type Provider interface {
	// Transact runs fn in a transaction. When ctx already carries a transaction,
	// fn runs in a nested one: its writes are rolled back alone if it fails.
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	Readonly(ctx context.Context) context.Context
}

type providerImpl struct {
	db *sqlx.DB
}

// NewProvider ...
func NewProvider(db *sqlx.DB) Provider {
	return &providerImpl{
		db: db,
	}
}

// Transact ...
func (p *providerImpl) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if outer, ok := ctx.Value(ctxTxKey).(ctxTxValue); ok {
		return p.transactNested(ctx, outer, fn)
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	ctx = context.WithValue(ctx, ctxTxKey, ctxTxValue{
		tx: tx,
	})
	ctx = context.WithValue(ctx, ctxReadonlyKey, ctxReadonlyValue{
		db: tx,
	})

	err = fn(ctx)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (p *providerImpl) transactNested(
	ctx context.Context, outer ctxTxValue, fn func(ctx context.Context) error,
) (err error) {
	inner := ctxTxValue{
		tx:    outer.tx,
		depth: outer.depth + 1,
	}
	savepoint := fmt.Sprintf("sp_%d", inner.depth)

	if _, err := inner.tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_, _ = inner.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint)
			panic(r)
		} else if err != nil {
			_, _ = inner.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint)
		}
	}()

	err = fn(context.WithValue(ctx, ctxTxKey, inner))
	if err != nil {
		return err
	}

	_, err = inner.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint)
	return err
}

// Readonly ...
func (p *providerImpl) Readonly(ctx context.Context) context.Context {
	if _, ok := ctx.Value(ctxTxKey).(ctxTxValue); ok {
		return ctx
	}
	return context.WithValue(ctx, ctxReadonlyKey, ctxReadonlyValue{
		db: p.db,
	})
}
