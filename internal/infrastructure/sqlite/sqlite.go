// Package sqlite implements the domain repositories on a single-file
// SQLite database via the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
)

// schema is created on open if absent. Email uniqueness lives here as a
// unique index so a concurrent duplicate registration loses at insert time
// instead of racing a prior existence check.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	caption TEXT NOT NULL,
	image TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS comments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	post_id INTEGER NOT NULL,
	text TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id),
	FOREIGN KEY(post_id) REFERENCES posts(id)
);
CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);
`

// Open opens (or creates) the database at path and ensures the schema exists.
// Callers own the returned handle and must Close it on shutdown.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewRepositories wires all sqlite-backed repositories over one handle.
func NewRepositories(db *sql.DB) *repository.Repositories {
	return &repository.Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
	}
}
