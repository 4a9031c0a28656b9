package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tirona-thrift/internal/config"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db.internal",
		DBUser:     "tirona",
		DBPassword: "flaka",
		DBName:     "storefront",
		DBPort:     "5432",
	}

	assert.Equal(t,
		"host=db.internal user=tirona password=flaka dbname=storefront port=5432 sslmode=disable application_name=tirona-thrift",
		buildDSN(cfg),
	)
}

// pingDriver hands out connections whose Ping returns err.
type pingDriver struct {
	err error
}

func (d *pingDriver) Open(string) (driver.Conn, error) {
	return &pingConn{err: d.err}, nil
}

type pingConn struct {
	err error
}

func (c *pingConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *pingConn) Close() error                        { return nil }
func (c *pingConn) Begin() (driver.Tx, error)           { return nil, errors.New("not supported") }
func (c *pingConn) Ping(context.Context) error          { return c.err }

func init() {
	sql.Register("tirona_ping_ok", &pingDriver{})
	sql.Register("tirona_ping_down", &pingDriver{err: errors.New("connection refused")})
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr string
	}{
		{name: "healthy", driver: "tirona_ping_ok"},
		{name: "ping fails", driver: "tirona_ping_down", wantErr: "failed to ping DB"},
		{name: "unknown driver", driver: "no_such_driver", wantErr: "failed to connect to DB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := open(context.Background(), tt.driver, "ignored")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, db)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer db.Close()
			assert.Equal(t, maxOpenConns, db.Stats().MaxOpenConnections)
		})
	}
}

func TestOpen_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := open(ctx, "tirona_ping_ok", "ignored")
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestNewDatabase_Unreachable(t *testing.T) {
	cfg := &config.Config{DBHost: "127.0.0.1", DBPort: "1", DBName: "storefront"}

	db, err := NewDatabase(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to ping DB")
}

// InitDB exits the process, so it runs in a child test binary.
func TestInitDB_ExitsWhenUnreachable(t *testing.T) {
	if os.Getenv("TIRONA_INITDB_CHILD") == "1" {
		InitDB(&config.Config{DBHost: "127.0.0.1", DBPort: "1", DBName: "storefront"})
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestInitDB_ExitsWhenUnreachable")
	cmd.Env = append(os.Environ(), "TIRONA_INITDB_CHILD=1")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.False(t, exitErr.Success())
}
