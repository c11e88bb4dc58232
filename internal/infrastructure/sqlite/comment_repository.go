package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (user_id, post_id, text, created_at)
		VALUES (?, ?, ?, ?)
	`, c.UserID, c.PostID, c.Text, c.CreatedAt.Unix())
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (r *CommentRepository) ListByPostIDs(ctx context.Context, postIDs []int64) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0)
	if len(postIDs) == 0 {
		return comments, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(postIDs)), ",")
	args := make([]any, len(postIDs))
	for i, id := range postIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, post_id, text, created_at
		FROM comments
		WHERE post_id IN (`+placeholders+`)
		ORDER BY id
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c := &entity.Comment{}
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Text, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt = time.Unix(createdAt, 0).UTC()
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
