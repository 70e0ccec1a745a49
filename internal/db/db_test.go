package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDriver lets sqlx.Open and PingContext succeed without a database.
type mockDriver struct{ fail bool }

func (m *mockDriver) Open(name string) (driver.Conn, error) {
	if m.fail {
		return nil, errors.New("connection refused")
	}
	return &mockConn{}, nil
}

type mockConn struct{}

func (c *mockConn) Prepare(query string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *mockConn) Close() error                              { return nil }
func (c *mockConn) Begin() (driver.Tx, error)                 { return nil, errors.New("not supported") }

func init() {
	sql.Register("mock_driver_success", &mockDriver{})
	sql.Register("mock_driver_refused", &mockDriver{fail: true})
}

func TestNewDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, err := newDatabaseWithDriver(ctx, "mock_driver_success", "postgres://localhost/rebookz")
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})

	t.Run("Unknown driver", func(t *testing.T) {
		db, err := newDatabaseWithDriver(ctx, "invalid_driver_name", "")
		assert.Nil(t, db)
		assert.ErrorContains(t, err, "failed to connect to DB")
	})

	t.Run("Ping fails", func(t *testing.T) {
		db, err := newDatabaseWithDriver(ctx, "mock_driver_refused", "")
		assert.Nil(t, db)
		assert.ErrorContains(t, err, "failed to ping DB")
	})
}
