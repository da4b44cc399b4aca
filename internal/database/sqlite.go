package database

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqliteDriverName is the go-sqlite3 driver with a Unicode-aware lower().
// SQLite's built-in lower() folds ASCII only.
const sqliteDriverName = "sqlite3_newsroom"

var registerSQLiteOnce sync.Once

func registerSQLiteDriver() {
	registerSQLiteOnce.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", strings.ToLower, true)
			},
		})
	})
}

func sqliteDialector(path string) gorm.Dialector {
	registerSQLiteDriver()
	return sqlite.New(sqlite.Config{
		DriverName: sqliteDriverName,
		DSN:        SQLiteDSN(path),
	})
}
