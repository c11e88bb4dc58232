package entity

import "time"

// Post is an image post. Image is a URL supplied by the client; the server
// never stores binary content. Posts are immutable once created.
type Post struct {
	ID        int64
	UserID    int64
	Caption   string
	Image     string
	CreatedAt time.Time
}
