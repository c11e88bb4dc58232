package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (user_id, post_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.UserID, c.PostID, c.Text)

	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CommentRepository) ListByPostIDs(ctx context.Context, postIDs []int64) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0)
	if len(postIDs) == 0 {
		return comments, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, post_id, text, created_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY id
	`, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c := &entity.Comment{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
