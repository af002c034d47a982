package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	sqlite "modernc.org/sqlite"

	"github.com/lanefields/credit-extractor/gen/ent"
)

// sqliteDriver registers modernc.org/sqlite under the "sqlite3" name Ent
// expects, with foreign keys enabled per connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

// OpenInMemory returns an Ent client over an in-memory SQLite database with
// the schema created. Used by the one-shot CLI so a local extraction run
// needs no Postgres.
func OpenInMemory(ctx context.Context, logger *slog.Logger) (*ent.Client, error) {
	drv, err := entsql.Open(dialect.SQLite, "file:ent?mode=memory&cache=shared")
	if err != nil {
		return nil, err
	}
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	logger.Debug("in-memory sqlite schema created")
	return client, nil
}
