package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	repo "github.com/snapfeed/snapfeed-api/internal/domain/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
)

// FeedService handles posts, comments, and the combined feed listing.
type FeedService struct {
	Users    repo.UserRepository
	Posts    repo.PostRepository
	Comments repo.CommentRepository
	Logger   *logrus.Logger
}

func NewFeedService(repos *repo.Repositories, logger *logrus.Logger) *FeedService {
	return &FeedService{
		Users:    repos.Users,
		Posts:    repos.Posts,
		Comments: repos.Comments,
		Logger:   logger,
	}
}

// CreatePost persists a post attributed to userID. The user must exist;
// a verified token alone does not prove the subject row is still there.
func (s *FeedService) CreatePost(ctx context.Context, userID int64, caption, image string) (*entity.Post, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p := &entity.Post{UserID: userID, Caption: caption, Image: image}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "user_id": userID}).Info("post created")
	}
	return p, nil
}

// AddComment persists a comment against an existing post.
func (s *FeedService) AddComment(ctx context.Context, userID, postID int64, text string) (*entity.Comment, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	c := &entity.Comment{UserID: userID, PostID: postID, Text: text}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// FeedPost is a post with its comments embedded, as served by GET /posts.
type FeedPost struct {
	ID       int64         `json:"id"`
	UserID   int64         `json:"user_id"`
	Caption  string        `json:"caption"`
	Image    string        `json:"image"`
	Comments []FeedComment `json:"comments"`
}

type FeedComment struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// ListFeed returns every post with its comments. Two queries total: one for
// the posts, one batched fetch for all their comments.
func (s *FeedService) ListFeed(ctx context.Context) ([]FeedPost, error) {
	posts, err := s.Posts.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	comments, err := s.Comments.ListByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byPost := make(map[int64][]FeedComment, len(posts))
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], FeedComment{ID: c.ID, UserID: c.UserID, Text: c.Text})
	}

	feed := make([]FeedPost, 0, len(posts))
	for _, p := range posts {
		fc := byPost[p.ID]
		if fc == nil {
			fc = []FeedComment{} // serialize as [], not null
		}
		feed = append(feed, FeedPost{
			ID:       p.ID,
			UserID:   p.UserID,
			Caption:  p.Caption,
			Image:    p.Image,
			Comments: fc,
		})
	}
	return feed, nil
}
