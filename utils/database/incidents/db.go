package incidents

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the incident database and ensures the table exists.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS incidents (
	          incident_id INTEGER PRIMARY KEY AUTOINCREMENT,
	          guild_id TEXT NOT NULL,
	          user_id TEXT NOT NULL,
	          user_username TEXT NOT NULL DEFAULT '',
	          action TEXT NOT NULL,
	          rule TEXT NOT NULL,
	          reason TEXT NOT NULL,
	          timestamp INTEGER NOT NULL
	      );`
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create incidents table: %w", err)
	}

	return db, nil
}
