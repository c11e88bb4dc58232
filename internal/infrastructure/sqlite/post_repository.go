package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (user_id, caption, image, created_at)
		VALUES (?, ?, ?, ?)
	`, p.UserID, p.Caption, p.Image, p.CreatedAt.Unix())
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	var createdAt int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, caption, image, created_at
		FROM posts
		WHERE id = ?
	`, id).Scan(&p.ID, &p.UserID, &p.Caption, &p.Image, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, caption, image, created_at
		FROM posts
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0)
	for rows.Next() {
		p := &entity.Post{}
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.UserID, &p.Caption, &p.Image, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = time.Unix(createdAt, 0).UTC()
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
