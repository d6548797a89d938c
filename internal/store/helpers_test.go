// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestSQLite returns a migrated in-memory SQLite database.
func newTestSQLite(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnect(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// newTestStorages returns repositories over a fresh database and the id of
// a user created in it.
func newTestStorages(t *testing.T) (*Storages, int64) {
	t.Helper()

	s := newStoragesFromDB(newTestSQLite(t), 10, logger.Nop())
	user, err := s.UserRepository.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	return s, user.UserID
}

// newTestPostgresMock returns a DB wrapper configured like a pgx
// connection but backed by sqlmock.
func newTestPostgresMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func countRows(t *testing.T, db *sql.DB, table string, userID int64) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE user_id = ?", userID).Scan(&n))
	return n
}
