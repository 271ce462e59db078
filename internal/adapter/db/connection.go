package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"agenda/internal/config"
)

const defaultPragmas = "_pragma=busy_timeout(5000)"

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	return Open(conf.DbPath)
}

// Open connects to the SQLite file at path (":memory:" is accepted). The pool
// is capped at a single connection: SQLite serializes writers anyway, and a
// single connection keeps in-memory databases shared and makes a running
// transaction exclusive.
func Open(path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("db path is required")
	}

	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&" + defaultPragmas
	} else {
		dsn += "?" + defaultPragmas
	}

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}
