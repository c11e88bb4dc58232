package entity

import "time"

// Comment belongs to exactly one post. Immutable once created.
type Comment struct {
	ID        int64
	UserID    int64
	PostID    int64
	Text      string
	CreatedAt time.Time
}
