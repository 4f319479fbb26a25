package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Companies() store.Companies             { return &companiesRepo{db: t.tx} }
func (t *txStore) Actors() store.Actors                   { return &actorsRepo{db: t.tx} }
func (t *txStore) Employees() store.Employees             { return &employeesRepo{db: t.tx} }
func (t *txStore) Tasks() store.Tasks                     { return &tasksRepo{db: t.tx} }
func (t *txStore) Assignments() store.Assignments         { return &assignmentsRepo{db: t.tx} }
func (t *txStore) Invitations() store.Invitations         { return &invitationsRepo{db: t.tx} }
func (t *txStore) RoleAssignments() store.RoleAssignments { return &roleAssignmentsRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
